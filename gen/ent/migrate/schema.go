// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "variant", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "doc_status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "document_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_slip_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{SlipFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[5], ExtractJobColumns[3]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10]},
			},
		},
	}
	// SlipFilesColumns holds the columns for the "slip_files" table.
	SlipFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// SlipFilesTable holds the schema information for the "slip_files" table.
	SlipFilesTable = &schema.Table{
		Name:       "slip_files",
		Columns:    SlipFilesColumns,
		PrimaryKey: []*schema.Column{SlipFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slipfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SlipFilesColumns[2]},
			},
			{
				Name:    "slipfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SlipFilesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		SlipFilesTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = SlipFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	SlipFilesTable.Annotation = &entsql.Annotation{
		Table: "slip_files",
	}
}

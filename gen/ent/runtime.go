// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arvind-krishnan/dealslip-tracker/db/ent/schema"
	"github.com/arvind-krishnan/dealslip-tracker/gen/ent/extractjob"
	"github.com/arvind-krishnan/dealslip-tracker/gen/ent/slipfile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[2].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	slipfileFields := schema.SlipFile{}.Fields()
	_ = slipfileFields
	// slipfileDescSourcePath is the schema descriptor for source_path field.
	slipfileDescSourcePath := slipfileFields[1].Descriptor()
	// slipfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	slipfile.SourcePathValidator = slipfileDescSourcePath.Validators[0].(func(string) error)
	// slipfileDescContentHash is the schema descriptor for content_hash field.
	slipfileDescContentHash := slipfileFields[2].Descriptor()
	// slipfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	slipfile.ContentHashValidator = slipfileDescContentHash.Validators[0].(func([]byte) error)
	// slipfileDescFilename is the schema descriptor for filename field.
	slipfileDescFilename := slipfileFields[3].Descriptor()
	// slipfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	slipfile.FilenameValidator = slipfileDescFilename.Validators[0].(func(string) error)
	// slipfileDescFileExt is the schema descriptor for file_ext field.
	slipfileDescFileExt := slipfileFields[4].Descriptor()
	// slipfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	slipfile.FileExtValidator = slipfileDescFileExt.Validators[0].(func(string) error)
	// slipfileDescFileSize is the schema descriptor for file_size field.
	slipfileDescFileSize := slipfileFields[5].Descriptor()
	// slipfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	slipfile.FileSizeValidator = slipfileDescFileSize.Validators[0].(func(int) error)
	// slipfileDescUploadedAt is the schema descriptor for uploaded_at field.
	slipfileDescUploadedAt := slipfileFields[6].Descriptor()
	// slipfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	slipfile.DefaultUploadedAt = slipfileDescUploadedAt.Default.(func() time.Time)
	// slipfileDescID is the schema descriptor for id field.
	slipfileDescID := slipfileFields[0].Descriptor()
	// slipfile.DefaultID holds the default value on creation for the id field.
	slipfile.DefaultID = slipfileDescID.Default.(func() uuid.UUID)
}

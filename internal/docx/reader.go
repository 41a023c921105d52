// Package docx reads the embedded tables of a Word-style structured
// container. Only the table grid is needed for deal-slip extraction, so the
// reader walks word/document.xml directly instead of pulling in a full OOXML
// model.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

const documentPart = "word/document.xml"

type Reader struct {
	logger *slog.Logger
}

func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadTables returns every table in the document as rows of cell text. Cell
// text is the concatenation of the cell's text runs. A document without
// tables yields an empty slice, not an error.
func (r *Reader) ReadTables(ctx context.Context, path string) ([]extract.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil {
			r.logger.Warn("failed to close container", "path", path, "error", cerr)
		}
	}()

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("container has no %s", documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer rc.Close()

	tables, err := parseTables(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}
	r.logger.Debug("structured container decoded", "path", path, "tables", len(tables))
	return tables, nil
}

// parseTables streams the document XML and collects w:tbl / w:tr / w:tc
// nesting, accumulating w:t character data per cell.
func parseTables(r io.Reader) ([]extract.Table, error) {
	dec := xml.NewDecoder(r)

	var (
		tables  []extract.Table
		table   extract.Table
		row     []string
		cell    strings.Builder
		inTable bool
		inRow   bool
		inCell  bool
		inText  bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable = true
				table = nil
			case "tr":
				if inTable {
					inRow = true
					row = nil
				}
			case "tc":
				if inRow {
					inCell = true
					cell.Reset()
				}
			case "t":
				inText = inCell
			}
		case xml.CharData:
			if inText {
				cell.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				if inCell {
					row = append(row, strings.TrimSpace(cell.String()))
					inCell = false
				}
			case "tr":
				if inRow {
					if len(row) > 0 {
						table = append(table, row)
					}
					inRow = false
				}
			case "tbl":
				if inTable {
					if len(table) > 0 {
						tables = append(tables, table)
					}
					inTable = false
				}
			}
		}
	}
	return tables, nil
}

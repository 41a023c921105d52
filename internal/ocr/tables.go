package ocr

import (
	"context"
	"regexp"
	"strings"

	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

// cellGap splits a layout-mode line into cells wherever two or more spaces
// separate runs of text, the whitespace analogue of column edges.
var cellGap = regexp.MustCompile(`\s{2,}`)

// ExtractTables recovers tabular regions from the raw -layout text of a PDF:
// consecutive lines that split into two or more whitespace-gapped cells form
// one table. Runs before Normalize, which would collapse the column gaps.
func (e *Extractor) ExtractTables(ctx context.Context, path string) ([]extract.Table, error) {
	text, _, _, err := e.pdfToText(ctx, path)
	if err != nil {
		return nil, err
	}
	return tablesFromLayout(text), nil
}

func tablesFromLayout(text string) []extract.Table {
	var tables []extract.Table
	var cur extract.Table
	flush := func() {
		if len(cur) > 0 {
			tables = append(tables, cur)
		}
		cur = nil
	}
	for _, ln := range strings.Split(text, "\n") {
		cells := splitCells(ln)
		if len(cells) >= 2 {
			cur = append(cur, cells)
		} else {
			flush()
		}
	}
	flush()
	return tables
}

func splitCells(line string) []string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(line, "\f", ""))
	if trimmed == "" {
		return nil
	}
	parts := cellGap.Split(trimmed, -1)
	cells := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

package extract

import (
	"context"
)

// Table is one decoded tabular region: rows of cell text. Decoders substitute
// empty strings for missing cells.
type Table [][]string

// Document is the decoded input to the engine: one normalized text blob plus
// whatever tabular regions the decoder recovered.
type Document struct {
	Text   string
	Tables []Table
}

// TextExtractionResult summarizes Stage 1: file -> text.
type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr"
	Warnings []string
}

// TextExtractor produces normalized document text from a file on disk.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

// TableExtractor recovers tabular regions from a PDF-like document.
type TableExtractor interface {
	ExtractTables(ctx context.Context, path string) ([]Table, error)
}

// StructuredReader reads the embedded tables of a native structured container
// (a Word-style package); each row is a (key, value)-shaped pair.
type StructuredReader interface {
	ReadTables(ctx context.Context, path string) ([]Table, error)
}

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
}

// Extractor decodes PDF deal slips: text layer first, OCR fallback for
// image-only documents.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract returns the normalized document text. When the PDF carries no
// machine-readable text layer, pages are rasterized and recognized instead
// and the concatenated output feeds the same locator rules downstream.
func (e *Extractor) Extract(ctx context.Context, path string) (extract.TextExtractionResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) != constants.PDF {
		e.logger.Error("unsupported extension for text extraction", "extension", ext)
		return extract.TextExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	text, pages, warns, err := e.pdfToText(ctx, path)
	method := "pdf-text"
	if err != nil || strings.TrimSpace(text) == "" {
		e.logger.Debug("no text layer, falling back to ocr", "path", path, "error", err)
		otext, opages, owarns, oerr := e.pdfToOCR(ctx, path)
		if oerr != nil {
			return extract.TextExtractionResult{Warnings: append(warns, owarns...)}, oerr
		}
		text, pages, method = otext, opages, "pdf-ocr"
		warns = append(warns, owarns...)
	}

	return extract.TextExtractionResult{
		Text:     Normalize(text),
		Pages:    pages,
		Method:   method,
		Warnings: warns,
	}, nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/arvind-krishnan/dealslip-tracker/internal/common"
	"github.com/arvind-krishnan/dealslip-tracker/internal/docx"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
	"github.com/arvind-krishnan/dealslip-tracker/internal/ocr"
	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
)

// runextract runs decode+classify+extract on one file and prints the record
// as JSON. Useful for checking a slip without touching a database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <slip-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	engine, err := extract.NewEngine(extract.YieldMode(cfg.Extract.YieldMode), logger)
	if err != nil {
		logger.Error("loading rule sets", "error", err)
		os.Exit(1)
	}
	textExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	proc := pipeline.NewProcessor(textExtractor, textExtractor, docx.NewReader(logger), engine, cfg.Extract.DocTimeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	outcome := proc.ProcessDocument(ctx, path)
	dur := time.Since(start)

	if outcome.Err != nil {
		logger.Error("extraction failed",
			"path", path, "error", outcome.Err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"path", path,
		"variant", outcome.Classification.Variant,
		"status", outcome.Record.Status,
		"method", outcome.Method,
		"pages", outcome.Pages,
		"duration_ms", dur.Milliseconds(),
	)

	payload, err := json.MarshalIndent(outcome.Record, "", "  ")
	if err != nil {
		logger.Error("marshal record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))
}

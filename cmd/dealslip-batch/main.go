package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/async"
	"github.com/arvind-krishnan/dealslip-tracker/internal/common"
	"github.com/arvind-krishnan/dealslip-tracker/internal/docx"
	"github.com/arvind-krishnan/dealslip-tracker/internal/export"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
	"github.com/arvind-krishnan/dealslip-tracker/internal/ingest"
	"github.com/arvind-krishnan/dealslip-tracker/internal/ocr"
	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
	repo "github.com/arvind-krishnan/dealslip-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", true, "use in-memory SQLite database")
		dir       = flag.String("dir", "", "directory to process deal slips from (required)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		yieldMode = flag.String("yield-mode", "", "yield column mode: numeric or percent (overrides YIELD_MODE)")
		workers   = flag.Int("workers", 0, "concurrent extraction workers (overrides EXTRACT_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), export.Filename)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *yieldMode != "" {
		cfg.Extract.YieldMode = *yieldMode
	}
	if *workers > 0 {
		cfg.Extract.Workers = *workers
	}
	if cfg.Extract.YieldMode != "numeric" && cfg.Extract.YieldMode != "percent" {
		printError("Error: --yield-mode must be numeric or percent\n")
		os.Exit(1)
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	filesRepo := repo.NewSlipFileRepository(dbResult.Client, logger)
	jobsRepo := repo.NewExtractJobRepository(dbResult.Client, logger)

	engine, err := extract.NewEngine(extract.YieldMode(cfg.Extract.YieldMode), logger)
	if err != nil {
		logger.Error("failed to load rule sets", "error", err)
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
	runner := async.NewBatchRunner(proc, logger, async.WithWorkers(cfg.Extract.Workers))

	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	logger.Info("starting ingestion", "dir", *dir)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	paths, err := ingest.ListSlipPaths(*dir, true)
	if err != nil {
		logger.Error("failed to list slips", "error", err)
		os.Exit(1)
	}

	fileIDs := make(map[string]uuid.UUID, len(ingestionResults))
	for _, r := range ingestionResults {
		if r.Err != "" {
			continue
		}
		if id, err := uuid.Parse(r.FileID); err == nil {
			fileIDs[r.SourcePath] = id
		}
	}

	outcomes := runner.Run(ctx, paths)

	// audit trail: one finished job row per document
	extracted := 0
	unreadable := 0
	for _, o := range outcomes {
		if o.Err != nil {
			unreadable++
		} else {
			extracted++
		}

		abs, _ := filepath.Abs(o.Path)
		fileID, ok := fileIDs[abs]
		if !ok {
			continue
		}
		job, jerr := jobsRepo.Start(ctx, fileID, constants.MapExtToFormat(filepath.Ext(o.Path)))
		if jerr != nil {
			continue
		}
		if o.Err != nil {
			_ = jobsRepo.FinishFailure(ctx, job.ID, o.Err.Error())
			continue
		}
		payload, merr := json.Marshal(o.Record)
		if merr != nil {
			_ = jobsRepo.FinishFailure(ctx, job.ID, merr.Error())
			continue
		}
		_ = jobsRepo.FinishSuccess(ctx, job.ID, o.Classification.Variant, o.Record.Status, "", payload)
	}

	exporter := export.NewService(logger)
	xlsxBytes, err := exporter.WriteXLSX(pipeline.Records(outcomes))
	if err != nil {
		logger.Error("failed to write workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_processed", len(outcomes),
		"extracted", extracted,
		"unreadable", unreadable,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", len(outcomes))
	fmt.Printf("- Extracted: %d\n", extracted)
	fmt.Printf("- Unreadable: %d\n", unreadable)
	fmt.Printf("- Output: %s\n", *out)
}

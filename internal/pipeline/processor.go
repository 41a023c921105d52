// Package pipeline runs one deal slip through decode, classification, and
// field extraction. It is deliberately a pure function of the input files:
// persistence and transport live with the callers.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/common"
	"github.com/arvind-krishnan/dealslip-tracker/internal/entity"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

// Outcome is the per-document result. Every document yields a record, even
// the unreadable ones; failures never abort the batch.
type Outcome struct {
	Path           string
	Record         entity.DealRecord
	Classification extract.Classification
	Method         string
	Pages          int
	Warnings       []string
	Err            error // underlying decode error, for the audit trail only
}

// Processor coordinates the decode boundary and the rule engine.
type Processor struct {
	Text       extract.TextExtractor
	Tables     extract.TableExtractor
	Structured extract.StructuredReader
	Engine     *extract.Engine
	// Timeout bounds one document end to end; 0 disables it. Expiry is a
	// per-document failure, not a batch abort.
	Timeout time.Duration
	Log     *slog.Logger
}

func NewProcessor(text extract.TextExtractor, tables extract.TableExtractor, structured extract.StructuredReader, engine *extract.Engine, timeout time.Duration, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{Text: text, Tables: tables, Structured: structured, Engine: engine, Timeout: timeout, Log: log}
}

// ProcessDocument runs decode -> classify -> extract for one file on disk.
func (p *Processor) ProcessDocument(ctx context.Context, path string) Outcome {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	ext := filepath.Ext(path)
	if constants.IsStructuredDoc(ext) {
		return p.processStructured(ctx, path, ext)
	}
	return p.processText(ctx, path, ext)
}

// ProcessBatch processes files strictly in input order. Output row i always
// corresponds to input file i.
func (p *Processor) ProcessBatch(ctx context.Context, paths []string) []Outcome {
	out := make([]Outcome, len(paths))
	for i, path := range paths {
		out[i] = p.ProcessDocument(ctx, path)
	}
	return out
}

func (p *Processor) processStructured(ctx context.Context, path, ext string) Outcome {
	cls := extract.Classify("", ext)
	tables, err := p.Structured.ReadTables(ctx, path)
	if err != nil {
		return p.unreadable(path, cls, err)
	}
	rec := p.Engine.ExtractStructured(cls.Variant, tables)
	rec.Status = cls.Status
	p.Log.Info("document extracted",
		"path", path,
		"variant", cls.Variant,
		"source", cls.Source,
		"status", rec.Status,
	)
	return Outcome{Path: path, Record: rec, Classification: cls, Method: "structured-tables"}
}

func (p *Processor) processText(ctx context.Context, path, ext string) Outcome {
	res, err := p.Text.Extract(ctx, path)
	if err != nil {
		return p.unreadable(path, extract.Classification{}, err)
	}

	cls := extract.Classify(res.Text, ext)
	doc := extract.Document{Text: res.Text}
	if cls.Variant == constants.FormatB && p.Tables != nil {
		tables, terr := p.Tables.ExtractTables(ctx, path)
		if terr != nil {
			// text-mode rules still apply; positional lookups cover the
			// table-backed fields
			p.Log.Warn("table decode failed, using text rules only", "path", path, "error", terr)
		} else {
			doc.Tables = tables
		}
	}

	rec := p.Engine.Extract(cls.Variant, doc)
	rec.Status = cls.Status
	p.Log.Info("document extracted",
		"path", path,
		"variant", cls.Variant,
		"source", cls.Source,
		"status", rec.Status,
		"method", res.Method,
		"pages", res.Pages,
	)
	return Outcome{
		Path:           path,
		Record:         rec,
		Classification: cls,
		Method:         res.Method,
		Pages:          res.Pages,
		Warnings:       res.Warnings,
	}
}

// Records projects a batch of outcomes to its export rows, preserving order.
func Records(outcomes []Outcome) []entity.DealRecord {
	recs := make([]entity.DealRecord, len(outcomes))
	for i, o := range outcomes {
		recs[i] = o.Record
	}
	return recs
}

func (p *Processor) unreadable(path string, cls extract.Classification, err error) Outcome {
	p.Log.Error("document unreadable", "path", path, "error", err)
	return Outcome{
		Path:           path,
		Record:         entity.DealRecord{Status: constants.DocStatusUnreadable},
		Classification: cls,
		Err:            fmt.Errorf("%w: %w", common.ErrUnreadable, err),
	}
}

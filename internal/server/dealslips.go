package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	v1 "github.com/arvind-krishnan/dealslip-tracker/gen/proto/dealslips/v1"
	"github.com/arvind-krishnan/dealslip-tracker/internal/async"
	"github.com/arvind-krishnan/dealslip-tracker/internal/common"
	"github.com/arvind-krishnan/dealslip-tracker/internal/export"
	"github.com/arvind-krishnan/dealslip-tracker/internal/ingest"
	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
	"github.com/arvind-krishnan/dealslip-tracker/internal/repository"
)

type DealSlipService struct {
	v1.UnimplementedDealSlipServiceServer
	runner    *async.BatchRunner
	exporter  *export.Service
	ingestor  ingest.Ingestor
	filesRepo repository.SlipFileRepository
	jobsRepo  repository.ExtractJobRepository
	logger    *slog.Logger
}

func NewDealSlipService(
	runner *async.BatchRunner,
	exporter *export.Service,
	ingestor ingest.Ingestor,
	filesRepo repository.SlipFileRepository,
	jobsRepo repository.ExtractJobRepository,
	logger *slog.Logger,
) *DealSlipService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DealSlipService{
		runner:    runner,
		exporter:  exporter,
		ingestor:  ingestor,
		filesRepo: filesRepo,
		jobsRepo:  jobsRepo,
		logger:    logger,
	}
}

// ProcessBatch writes the uploads to a scratch directory, extracts them in
// upload order, and returns the aggregated workbook.
func (s *DealSlipService) ProcessBatch(ctx context.Context, req *v1.ProcessBatchRequest) (*v1.ProcessBatchResponse, error) {
	files := req.GetFiles()
	if len(files) == 0 {
		return nil, common.InvalidArgumentError("files is required")
	}

	dir, err := os.MkdirTemp("", "ds-batch-*")
	if err != nil {
		s.logger.Error("scratch dir create failed", "error", err)
		return nil, common.InternalError("scratch dir create failed")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	paths := make([]string, 0, len(files))
	for i, f := range files {
		name := strings.TrimSpace(f.GetFilename())
		if name == "" {
			return nil, common.InvalidArgumentErrorf("files[%d]: filename is required", i)
		}
		ext := constants.NormalizeExt(filepath.Ext(name))
		if !ingest.AllowedExt(ext) {
			return nil, common.InvalidArgumentErrorf("files[%d]: unsupported extension %q", i, ext)
		}
		if len(f.GetContent()) == 0 {
			return nil, common.InvalidArgumentErrorf("files[%d]: content is empty", i)
		}
		// random prefix keeps duplicate filenames apart
		p := filepath.Join(dir, uuid.NewString()+"-"+filepath.Base(name))
		if err := os.WriteFile(p, f.GetContent(), 0o600); err != nil {
			s.logger.Error("scratch write failed", "filename", name, "error", err)
			return nil, common.InternalError("scratch write failed")
		}
		paths = append(paths, p)
	}

	batchID := uuid.NewString()
	ctx = common.WithBatchID(ctx, batchID)
	s.logger.Info("processing uploaded batch", "batch_id", batchID, "files", len(paths))
	outcomes := s.runner.Run(ctx, paths)
	s.audit(ctx, outcomes)

	records := pipeline.Records(outcomes)
	xlsx, err := s.exporter.WriteXLSX(records)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("workbook write failed")
	}

	rows := make([]*v1.RowSummary, 0, len(outcomes))
	for i, o := range outcomes {
		rows = append(rows, rowSummary(files[i].GetFilename(), o))
	}
	return &v1.ProcessBatchResponse{
		Xlsx:        xlsx,
		Filename:    export.Filename,
		ContentType: export.ContentType,
		Rows:        rows,
	}, nil
}

// ProcessDirectory runs the whole pipeline over a directory on the server
// host: ingest (dedup + audit), extract, export.
func (s *DealSlipService) ProcessDirectory(ctx context.Context, req *v1.ProcessDirectoryRequest) (*v1.ProcessDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, common.InvalidArgumentError("root_path is required")
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory run", "root", root, "skip_hidden", skipHidden)
	_, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}

	paths, err := ingest.ListSlipPaths(root, skipHidden)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("list slips: %v", err)
	}

	ctx = common.WithBatchID(ctx, uuid.NewString())
	outcomes := s.runner.Run(ctx, paths)
	s.audit(ctx, outcomes)

	records := pipeline.Records(outcomes)
	xlsx, err := s.exporter.WriteXLSX(records)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("workbook write failed")
	}

	rows := make([]*v1.RowSummary, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, rowSummary(filepath.Base(o.Path), o))
	}
	s.logger.Info("directory run completed",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)
	return &v1.ProcessDirectoryResponse{
		Xlsx:         xlsx,
		Filename:     export.Filename,
		ContentType:  export.ContentType,
		Rows:         rows,
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
	}, nil
}

// audit records one file row and one finished job row per outcome. Audit
// failures are logged and swallowed: the response to the caller is already
// decided by the extraction itself.
func (s *DealSlipService) audit(ctx context.Context, outcomes []pipeline.Outcome) {
	if s.filesRepo == nil || s.jobsRepo == nil {
		return
	}
	batchID := common.BatchIDFromContext(ctx)
	for _, o := range outcomes {
		row, err := ingestFile(ctx, s.filesRepo, o.Path)
		if err != nil {
			s.logger.Warn("audit: file row failed", "batch_id", batchID, "path", o.Path, "error", err)
			continue
		}
		format := constants.MapExtToFormat(filepath.Ext(o.Path))
		job, err := s.jobsRepo.Start(ctx, row.ID, format)
		if err != nil {
			continue
		}
		if o.Err != nil {
			_ = s.jobsRepo.FinishFailure(ctx, job.ID, o.Err.Error())
			continue
		}
		extracted, err := json.Marshal(o.Record)
		if err != nil {
			_ = s.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
			continue
		}
		_ = s.jobsRepo.FinishSuccess(ctx, job.ID, o.Classification.Variant, o.Record.Status, "", extracted)
	}
}

func rowSummary(filename string, o pipeline.Outcome) *v1.RowSummary {
	errMsg := ""
	if o.Err != nil {
		errMsg = o.Err.Error()
	}
	return &v1.RowSummary{
		Filename:      filename,
		DealReference: o.Record.DealReference,
		Isin:          o.Record.ISIN,
		Variant:       string(o.Classification.Variant),
		Status:        string(o.Record.Status),
		Error:         errMsg,
	}
}

package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID, variant constants.FormatVariant, docStatus constants.DocStatus, documentText string, extracted json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, variant constants.FormatVariant, docStatus constants.DocStatus, documentText string, extracted json.RawMessage) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetVariant(string(variant)).
		SetDocStatus(string(docStatus)).
		SetDocumentText(documentText).
		SetExtractedJSON(extracted).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtracted)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(EXTRACTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (EXTRACTED)", "job_id", jobID, "variant", variant, "doc_status", docStatus)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arvind-krishnan/dealslip-tracker/gen/ent"
	entfile "github.com/arvind-krishnan/dealslip-tracker/gen/ent/slipfile"
)

type SlipFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SlipFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.SlipFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SlipFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SlipFile, bool, error)
}

type slipFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSlipFileRepository(entc *ent.Client, logger *slog.Logger) SlipFileRepository {
	return &slipFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *slipFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SlipFile, error) {
	return r.ent.SlipFile.Get(ctx, id)
}

func (r *slipFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.SlipFile, error) {
	row, err := r.ent.SlipFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *slipFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SlipFile, error) {
	row, err := r.ent.SlipFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create slip file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *slipFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.SlipFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert slip file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

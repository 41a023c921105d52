package server

import (
	"context"
	"crypto/sha256"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/gen/ent"
	"github.com/arvind-krishnan/dealslip-tracker/internal/repository"
)

// ingestFile registers one file row keyed by content hash, for the audit
// trail of processed batches.
func ingestFile(ctx context.Context, repo repository.SlipFileRepository, path string) (*ent.SlipFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	row, _, err := repo.UpsertByHash(ctx, path, filepath.Base(path), ext, int(st.Size()), h.Sum(nil), time.Now().UTC())
	return row, err
}

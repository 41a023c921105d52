package async

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
)

// pathText returns per-path document text so each outcome is attributable.
type fakeText struct{}

func (fakeText) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	if path == "/s/bad.pdf" {
		return extract.TextExtractionResult{}, errors.New("garbled")
	}
	return extract.TextExtractionResult{
		Text:   fmt.Sprintf("DEAL ID : REF-%s", path),
		Pages:  1,
		Method: "pdf-text",
	}, nil
}

type noTables struct{}

func (noTables) ExtractTables(context.Context, string) ([]extract.Table, error) { return nil, nil }

type noStructured struct{}

func (noStructured) ReadTables(context.Context, string) ([]extract.Table, error) { return nil, nil }

func TestBatchRunnerPreservesOrder(t *testing.T) {
	engine, err := extract.NewEngine(extract.YieldModeNumeric, nil)
	require.NoError(t, err)
	proc := pipeline.NewProcessor(fakeText{}, noTables{}, noStructured{}, engine, 0, nil)
	runner := NewBatchRunner(proc, nil, WithWorkers(3))

	var paths []string
	for i := 0; i < 20; i++ {
		paths = append(paths, fmt.Sprintf("/s/slip-%02d.pdf", i))
	}
	paths = append(paths, "/s/bad.pdf")

	outcomes := runner.Run(context.Background(), paths)
	require.Len(t, outcomes, len(paths))

	for i := 0; i < 20; i++ {
		assert.Equal(t, paths[i], outcomes[i].Path)
		assert.Equal(t, "REF-"+paths[i], outcomes[i].Record.DealReference)
	}
	// the failing document stays at its input position, tagged not dropped
	last := outcomes[len(outcomes)-1]
	require.Error(t, last.Err)
	assert.Equal(t, constants.DocStatusUnreadable, last.Record.Status)
}

func TestBatchRunnerEmptyInput(t *testing.T) {
	engine, err := extract.NewEngine(extract.YieldModeNumeric, nil)
	require.NoError(t, err)
	proc := pipeline.NewProcessor(fakeText{}, noTables{}, noStructured{}, engine, 0, nil)
	runner := NewBatchRunner(proc, nil)

	outcomes := runner.Run(context.Background(), nil)
	assert.Empty(t, outcomes)
}

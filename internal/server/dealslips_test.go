package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	v1 "github.com/arvind-krishnan/dealslip-tracker/gen/proto/dealslips/v1"
	"github.com/arvind-krishnan/dealslip-tracker/internal/async"
	"github.com/arvind-krishnan/dealslip-tracker/internal/export"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
	"github.com/arvind-krishnan/dealslip-tracker/internal/pipeline"
)

const slipText = `DEAL ID : 77001
ISIN : INE123A07015
QUANTITY : 100
TRADE VALUE : 100,000.00`

// staticText decodes every path to the same document text.
type staticText struct{ text string }

func (s staticText) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: s.text, Pages: 1, Method: "pdf-text"}, nil
}

type noTables struct{}

func (noTables) ExtractTables(context.Context, string) ([]extract.Table, error) { return nil, nil }

type noStructured struct{}

func (noStructured) ReadTables(context.Context, string) ([]extract.Table, error) { return nil, nil }

func newTestService(t *testing.T) *DealSlipService {
	t.Helper()
	engine, err := extract.NewEngine(extract.YieldModeNumeric, nil)
	require.NoError(t, err)
	proc := pipeline.NewProcessor(staticText{text: slipText}, noTables{}, noStructured{}, engine, 0, nil)
	runner := async.NewBatchRunner(proc, nil)
	return NewDealSlipService(runner, export.NewService(nil), nil, nil, nil, nil)
}

func TestProcessBatchValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *v1.ProcessBatchRequest
	}{
		{"no files", &v1.ProcessBatchRequest{}},
		{"missing filename", &v1.ProcessBatchRequest{Files: []*v1.SlipUpload{{Content: []byte("x")}}}},
		{"unsupported extension", &v1.ProcessBatchRequest{Files: []*v1.SlipUpload{{Filename: "deal.txt", Content: []byte("x")}}}},
		{"empty content", &v1.ProcessBatchRequest{Files: []*v1.SlipUpload{{Filename: "deal.pdf"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ProcessBatch(ctx, tc.req)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
		})
	}
}

func TestProcessBatchReturnsWorkbook(t *testing.T) {
	svc := newTestService(t)
	resp, err := svc.ProcessBatch(context.Background(), &v1.ProcessBatchRequest{
		Files: []*v1.SlipUpload{{Filename: "deal.pdf", Content: []byte("%PDF-stub")}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetXlsx())
	assert.Equal(t, export.Filename, resp.GetFilename())
	assert.Equal(t, export.ContentType, resp.GetContentType())
	require.Len(t, resp.GetRows(), 1)
	row := resp.GetRows()[0]
	assert.Equal(t, "deal.pdf", row.GetFilename())
	assert.Equal(t, "77001", row.GetDealReference())
	assert.Equal(t, string(constants.FormatA), row.GetVariant())
	assert.Empty(t, row.GetError())
}

func TestProcessDirectoryValidation(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ProcessDirectory(context.Background(), &v1.ProcessDirectoryRequest{})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/common"
	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

// hangingText blocks on the slow path until the context expires; every other
// path decodes immediately.
type hangingText struct{}

func (hangingText) Extract(ctx context.Context, path string) (extract.TextExtractionResult, error) {
	if path == "/s/slow.pdf" {
		<-ctx.Done()
		return extract.TextExtractionResult{}, ctx.Err()
	}
	return extract.TextExtractionResult{Text: bseText, Pages: 1, Method: "pdf-text"}, nil
}

type fakeText struct {
	texts map[string]string
	errs  map[string]error
}

func (f *fakeText) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	if err := f.errs[path]; err != nil {
		return extract.TextExtractionResult{}, err
	}
	return extract.TextExtractionResult{Text: f.texts[path], Pages: 1, Method: "pdf-text"}, nil
}

type fakeTables struct {
	tables map[string][]extract.Table
	errs   map[string]error
}

func (f *fakeTables) ExtractTables(_ context.Context, path string) ([]extract.Table, error) {
	if err := f.errs[path]; err != nil {
		return nil, err
	}
	return f.tables[path], nil
}

type fakeStructured struct {
	tables map[string][]extract.Table
	errs   map[string]error
}

func (f *fakeStructured) ReadTables(_ context.Context, path string) ([]extract.Table, error) {
	if err := f.errs[path]; err != nil {
		return nil, err
	}
	return f.tables[path], nil
}

const bseText = `DEAL ID : 12345
BUYER : ALPHA CAPITAL LTD
SELLER : BETA SECURITIES PVT LTD
ISSUER NAME : ACME INFRA LTD
ISIN : INE123A07015
QUANTITY : 1,000
PRICE : 101.55
TRADE VALUE : 1,000,000.00`

const cbricsText = `CBRICS - CORPORATE BOND REPORTING AND INTEGRATED CLEARING SYSTEM
CBRICS Transaction Id : 987654321
ISIN : INE456B08023
Price : 99.8750`

func newTestProcessor(t *testing.T, text *fakeText, tables *fakeTables, structured *fakeStructured, timeout time.Duration) *Processor {
	t.Helper()
	engine, err := extract.NewEngine(extract.YieldModeNumeric, nil)
	require.NoError(t, err)
	return NewProcessor(text, tables, structured, engine, timeout, nil)
}

func TestProcessDocument(t *testing.T) {
	t.Run("format a pdf", func(t *testing.T) {
		p := newTestProcessor(t,
			&fakeText{texts: map[string]string{"/s/a.pdf": bseText}},
			&fakeTables{}, &fakeStructured{}, 0)

		o := p.ProcessDocument(context.Background(), "/s/a.pdf")
		require.NoError(t, o.Err)
		assert.Equal(t, constants.FormatA, o.Classification.Variant)
		assert.Equal(t, constants.DocStatusOK, o.Record.Status)
		assert.Equal(t, "12345", o.Record.DealReference)
		require.NotNil(t, o.Record.FVPerUnit)
		assert.Equal(t, 1000.00, *o.Record.FVPerUnit)
		assert.Equal(t, "pdf-text", o.Method)
	})

	t.Run("format b pdf pulls tables", func(t *testing.T) {
		tables := []extract.Table{{{"No. of Bond(s)", "2,000"}}}
		p := newTestProcessor(t,
			&fakeText{texts: map[string]string{"/s/b.pdf": cbricsText}},
			&fakeTables{tables: map[string][]extract.Table{"/s/b.pdf": tables}},
			&fakeStructured{}, 0)

		o := p.ProcessDocument(context.Background(), "/s/b.pdf")
		require.NoError(t, o.Err)
		assert.Equal(t, constants.FormatB, o.Classification.Variant)
		assert.Equal(t, "987654321", o.Record.DealReference)
		require.NotNil(t, o.Record.Quantity)
		assert.Equal(t, int64(2000), *o.Record.Quantity)
	})

	t.Run("table decode failure degrades to text rules", func(t *testing.T) {
		p := newTestProcessor(t,
			&fakeText{texts: map[string]string{"/s/b.pdf": cbricsText}},
			&fakeTables{errs: map[string]error{"/s/b.pdf": errors.New("layout failed")}},
			&fakeStructured{}, 0)

		o := p.ProcessDocument(context.Background(), "/s/b.pdf")
		require.NoError(t, o.Err)
		assert.Equal(t, constants.DocStatusOK, o.Record.Status)
		assert.Equal(t, "987654321", o.Record.DealReference)
		assert.Nil(t, o.Record.Quantity)
	})

	t.Run("docx goes structured", func(t *testing.T) {
		tables := []extract.Table{{
			{"CBRICS Transaction Id", "555000111"},
			{"ISIN", "INE456B08023"},
		}}
		p := newTestProcessor(t, &fakeText{}, &fakeTables{},
			&fakeStructured{tables: map[string][]extract.Table{"/s/c.docx": tables}}, 0)

		o := p.ProcessDocument(context.Background(), "/s/c.docx")
		require.NoError(t, o.Err)
		assert.Equal(t, constants.FormatB, o.Classification.Variant)
		assert.Equal(t, extract.SourceStructured, o.Classification.Source)
		assert.Equal(t, "555000111", o.Record.DealReference)
		assert.Equal(t, "INE456B08023", o.Record.ISIN)
	})

	t.Run("unreadable pdf yields sparse tagged record", func(t *testing.T) {
		p := newTestProcessor(t,
			&fakeText{errs: map[string]error{"/s/x.pdf": errors.New("garbled")}},
			&fakeTables{}, &fakeStructured{}, 0)

		o := p.ProcessDocument(context.Background(), "/s/x.pdf")
		require.Error(t, o.Err)
		assert.Equal(t, constants.DocStatusUnreadable, o.Record.Status)
		assert.Empty(t, o.Record.DealReference)
	})

	t.Run("unreadable docx yields sparse tagged record", func(t *testing.T) {
		p := newTestProcessor(t, &fakeText{}, &fakeTables{},
			&fakeStructured{errs: map[string]error{"/s/x.docx": errors.New("not a zip")}}, 0)

		o := p.ProcessDocument(context.Background(), "/s/x.docx")
		require.Error(t, o.Err)
		assert.Equal(t, constants.DocStatusUnreadable, o.Record.Status)
	})

	t.Run("unmarked text is surfaced as unclassified", func(t *testing.T) {
		p := newTestProcessor(t,
			&fakeText{texts: map[string]string{"/s/u.pdf": "dear sir, enclosed is the note"}},
			&fakeTables{}, &fakeStructured{}, 0)

		o := p.ProcessDocument(context.Background(), "/s/u.pdf")
		require.NoError(t, o.Err)
		assert.Equal(t, constants.DocStatusUnclassified, o.Record.Status)
	})
}

func TestProcessDocumentTimeout(t *testing.T) {
	engine, err := extract.NewEngine(extract.YieldModeNumeric, nil)
	require.NoError(t, err)

	t.Run("slow decode becomes an unreadable row", func(t *testing.T) {
		p := NewProcessor(hangingText{}, &fakeTables{}, &fakeStructured{}, engine, 50*time.Millisecond, nil)

		start := time.Now()
		o := p.ProcessDocument(context.Background(), "/s/slow.pdf")
		require.Error(t, o.Err)
		assert.ErrorIs(t, o.Err, context.DeadlineExceeded)
		assert.ErrorIs(t, o.Err, common.ErrUnreadable)
		assert.Equal(t, constants.DocStatusUnreadable, o.Record.Status)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("timeout is per document, not per batch", func(t *testing.T) {
		p := NewProcessor(hangingText{}, &fakeTables{}, &fakeStructured{}, engine, 50*time.Millisecond, nil)

		outcomes := p.ProcessBatch(context.Background(), []string{"/s/slow.pdf", "/s/a.pdf"})
		require.Len(t, outcomes, 2)
		assert.Equal(t, constants.DocStatusUnreadable, outcomes[0].Record.Status)
		require.NoError(t, outcomes[1].Err)
		assert.Equal(t, constants.DocStatusOK, outcomes[1].Record.Status)
		assert.Equal(t, "12345", outcomes[1].Record.DealReference)
	})
}

func TestProcessBatchOrderAndIsolation(t *testing.T) {
	p := newTestProcessor(t,
		&fakeText{
			texts: map[string]string{"/s/a.pdf": bseText},
			errs:  map[string]error{"/s/x.pdf": errors.New("garbled")},
		},
		&fakeTables{},
		&fakeStructured{tables: map[string][]extract.Table{
			"/s/c.docx": {{{"ISIN", "INE456B08023"}}},
		}}, 0)

	paths := []string{"/s/a.pdf", "/s/x.pdf", "/s/c.docx"}
	outcomes := p.ProcessBatch(context.Background(), paths)
	require.Len(t, outcomes, 3)

	for i, o := range outcomes {
		assert.Equal(t, paths[i], o.Path)
	}
	assert.Equal(t, constants.DocStatusOK, outcomes[0].Record.Status)
	assert.Equal(t, constants.DocStatusUnreadable, outcomes[1].Record.Status)
	assert.Equal(t, "INE456B08023", outcomes[2].Record.ISIN)

	recs := Records(outcomes)
	require.Len(t, recs, 3)
	assert.Equal(t, "12345", recs[0].DealReference)
}

package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts external commands by binary name.
type fakeRunner struct {
	stdout map[string]string
	errs   map[string]error
	calls  []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok && err != nil {
		return nil, []byte("boom"), err
	}
	return []byte(f.stdout[name]), nil, nil
}

func newFakeExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractTextLayer(t *testing.T) {
	r := &fakeRunner{stdout: map[string]string{
		"pdftotext": "DEAL ID : 12345\fpage two",
	}}
	e := newFakeExtractor(r)

	res, err := e.Extract(context.Background(), "/slips/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "DEAL ID : 12345")
	// normalized output has no form feeds
	assert.NotContains(t, res.Text, "\f")
	assert.Equal(t, []string{"pdftotext"}, r.calls)
}

func TestExtractRejectsNonPDF(t *testing.T) {
	e := newFakeExtractor(&fakeRunner{})
	_, err := e.Extract(context.Background(), "/slips/a.docx")
	assert.Error(t, err)
}

func TestExtractOCRFallback(t *testing.T) {
	t.Run("blank text layer falls back", func(t *testing.T) {
		r := &fakeRunner{stdout: map[string]string{
			"pdftotext": "  \n  ",
		}}
		e := newFakeExtractor(r)

		// pdftoppm renders nothing in this stub, so the fallback itself fails;
		// the point is that it was attempted
		_, err := e.Extract(context.Background(), "/slips/scan.pdf")
		require.Error(t, err)
		assert.Equal(t, []string{"pdftotext", "pdftoppm"}, r.calls)
	})

	t.Run("pdftotext failure falls back", func(t *testing.T) {
		r := &fakeRunner{
			errs: map[string]error{"pdftotext": errors.New("exit status 1")},
		}
		e := newFakeExtractor(r)

		_, err := e.Extract(context.Background(), "/slips/scan.pdf")
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(r.calls[0], "pdftotext"))
		assert.Contains(t, r.calls, "pdftoppm")
	})
}

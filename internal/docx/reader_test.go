package docx

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

func writeContainer(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slip.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

const sampleDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Deal Confirmation</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>CBRICS Transaction Id</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>987654321</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>No. of </w:t></w:r><w:r><w:t>Bond(s)</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>1,000</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func TestReadTables(t *testing.T) {
	r := NewReader(nil)

	t.Run("reads key value rows", func(t *testing.T) {
		path := writeContainer(t, sampleDoc)
		tables, err := r.ReadTables(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, extract.Table{
			{"CBRICS Transaction Id", "987654321"},
			{"No. of Bond(s)", "1,000"},
		}, tables[0])
	})

	t.Run("document without tables yields empty slice", func(t *testing.T) {
		path := writeContainer(t, `<w:document xmlns:w="x"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`)
		tables, err := r.ReadTables(context.Background(), path)
		require.NoError(t, err)
		assert.Empty(t, tables)
	})

	t.Run("missing document part is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.docx")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		_, err = r.ReadTables(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("not a zip is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bogus.docx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))
		_, err := r.ReadTables(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		path := writeContainer(t, sampleDoc)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.ReadTables(ctx, path)
		assert.Error(t, err)
	})
}

package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("docx"))
	assert.False(t, AllowedExt("txt"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/slips/.archive"))
	assert.True(t, IsHidden(".hidden.pdf"))
	assert.False(t, IsHidden("/slips/deal.pdf"))
}

func TestListSlipPaths(t *testing.T) {
	root := t.TempDir()
	touch := func(rel string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}
	touch("b.pdf")
	touch("a.docx")
	touch("notes.txt")
	touch(".hidden.pdf")
	touch("sub/c.pdf")
	touch(".archive/d.pdf")

	t.Run("sorted matching files, hidden skipped", func(t *testing.T) {
		paths, err := ListSlipPaths(root, true)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.docx"),
			filepath.Join(root, "b.pdf"),
			filepath.Join(root, "sub", "c.pdf"),
		}, paths)
	})

	t.Run("hidden included on request", func(t *testing.T) {
		paths, err := ListSlipPaths(root, false)
		require.NoError(t, err)
		assert.Contains(t, paths, filepath.Join(root, ".hidden.pdf"))
		assert.Contains(t, paths, filepath.Join(root, ".archive", "d.pdf"))
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := ListSlipPaths(filepath.Join(root, "nope"), true)
		assert.Error(t, err)
	})
}

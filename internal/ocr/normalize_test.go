package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("empty passes through", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})

	t.Run("crlf becomes lf", func(t *testing.T) {
		assert.Equal(t, "a\nb", Normalize("a\r\nb"))
	})

	t.Run("form feed becomes newline", func(t *testing.T) {
		assert.Equal(t, "page one\npage two", Normalize("page one\fpage two"))
	})

	t.Run("tabs and space runs collapse", func(t *testing.T) {
		assert.Equal(t, "DEAL ID : 12345", Normalize("DEAL\tID\t:   12345"))
	})

	t.Run("blank runs collapse to one blank line", func(t *testing.T) {
		assert.Equal(t, "a\n\nb", Normalize("a\n\n\n\n\nb"))
	})

	t.Run("trailing whitespace stripped per line", func(t *testing.T) {
		assert.Equal(t, "a\nb", Normalize("a   \nb   \n\n"))
	})
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
)

func TestClassify(t *testing.T) {
	t.Run("structured container bypasses text", func(t *testing.T) {
		c := Classify("", ".docx")
		assert.Equal(t, constants.FormatB, c.Variant)
		assert.Equal(t, SourceStructured, c.Source)
		assert.Equal(t, constants.DocStatusOK, c.Status)
	})

	t.Run("cbrics marker routes to format b", func(t *testing.T) {
		text := "CBRICS - CORPORATE BOND REPORTING AND INTEGRATED CLEARING SYSTEM\nISIN : INE456B08023"
		c := Classify(text, ".pdf")
		assert.Equal(t, constants.FormatB, c.Variant)
		assert.Equal(t, SourceText, c.Source)
		assert.Equal(t, constants.DocStatusOK, c.Status)
	})

	t.Run("marker match is case-insensitive", func(t *testing.T) {
		c := Classify("cbrics transaction id: 1", ".pdf")
		assert.Equal(t, constants.FormatB, c.Variant)
		assert.Equal(t, constants.DocStatusOK, c.Status)
	})

	t.Run("format a markers route to format a", func(t *testing.T) {
		c := Classify("DEAL ID : 12345\nTRADE VALUE : 1,000,000.00", ".pdf")
		assert.Equal(t, constants.FormatA, c.Variant)
		assert.Equal(t, SourceText, c.Source)
		assert.Equal(t, constants.DocStatusOK, c.Status)
	})

	t.Run("no marker is surfaced as unclassified", func(t *testing.T) {
		c := Classify("an unrelated letter about bonds", ".pdf")
		assert.Equal(t, constants.FormatA, c.Variant)
		assert.Equal(t, constants.DocStatusUnclassified, c.Status)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "DEAL ID : 1"
		first := Classify(text, ".pdf")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(text, ".pdf"))
		}
	})
}

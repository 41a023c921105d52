package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
)

func TestLoadRuleSets(t *testing.T) {
	rules, err := loadRuleSets()
	require.NoError(t, err)

	require.Contains(t, rules, constants.FormatA)
	require.Contains(t, rules, constants.FormatB)

	t.Run("format a is pattern-only", func(t *testing.T) {
		rs := rules[constants.FormatA]
		assert.NotEmpty(t, rs.patterns)
		assert.Empty(t, rs.lines)
		assert.Empty(t, rs.tables)
	})

	t.Run("format b carries every strategy", func(t *testing.T) {
		rs := rules[constants.FormatB]
		assert.NotEmpty(t, rs.patterns)
		assert.NotEmpty(t, rs.lines)
		assert.NotEmpty(t, rs.tables)
		assert.NotEmpty(t, rs.Structured)
	})
}

func TestRuleSetSchemaValidation(t *testing.T) {
	schema := BuildRuleSetSchema()

	t.Run("accepts a minimal rule set", func(t *testing.T) {
		doc := []byte(`{
			"variant": "FORMAT_A",
			"fields": [{"name": "isin", "strategy": "pattern", "label": "ISIN", "capture": "token"}]
		}`)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, doc))
	})

	t.Run("rejects an unknown field name", func(t *testing.T) {
		doc := []byte(`{
			"variant": "FORMAT_A",
			"fields": [{"name": "coupon", "strategy": "pattern", "label": "COUPON"}]
		}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, doc))
	})

	t.Run("rejects an unknown strategy", func(t *testing.T) {
		doc := []byte(`{
			"variant": "FORMAT_A",
			"fields": [{"name": "isin", "strategy": "guess", "label": "ISIN"}]
		}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, doc))
	})

	t.Run("rejects a missing label", func(t *testing.T) {
		doc := []byte(`{
			"variant": "FORMAT_A",
			"fields": [{"name": "isin", "strategy": "pattern"}]
		}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, doc))
	})

	t.Run("rejects stray properties", func(t *testing.T) {
		doc := []byte(`{
			"variant": "FORMAT_A",
			"fields": [{"name": "isin", "strategy": "pattern", "label": "ISIN", "regex": ".*"}]
		}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, doc))
	})
}

func TestCompilePattern(t *testing.T) {
	t.Run("word boundary after alphanumeric label", func(t *testing.T) {
		re, err := compilePattern("SELLER", CaptureLine, false)
		require.NoError(t, err)
		// must not fire on SELLER CONSIDERATION when SELLER itself is absent
		m := re.FindStringSubmatch("SELLERX : nope")
		assert.Nil(t, m)
	})

	t.Run("no boundary after a symbol label", func(t *testing.T) {
		re, err := compilePattern(`YIELD\(%\)`, CaptureNumber, false)
		require.NoError(t, err)
		m := re.FindStringSubmatch("YIELD(%) : 7.25")
		require.NotNil(t, m)
		assert.Equal(t, "7.25", m[1])
	})

	t.Run("label and value may sit on different lines", func(t *testing.T) {
		re, err := compilePattern("QUANTITY", CaptureInteger, false)
		require.NoError(t, err)
		m := re.FindStringSubmatch("QUANTITY\n1,000")
		require.NotNil(t, m)
		assert.Equal(t, "1,000", m[1])
	})

	t.Run("line capture stops at the newline", func(t *testing.T) {
		re, err := compilePattern("BUYER", CaptureLine, false)
		require.NoError(t, err)
		m := re.FindStringSubmatch("BUYER : ALPHA CAPITAL\nSELLER : BETA")
		require.NotNil(t, m)
		assert.Equal(t, "ALPHA CAPITAL", m[1])
	})
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	t.Run("plain number", func(t *testing.T) {
		v, ok := ParseFloat("101.55")
		assert.True(t, ok)
		assert.Equal(t, 101.55, v)
	})

	t.Run("thousands separators", func(t *testing.T) {
		v, ok := ParseFloat("1,020,500.00")
		assert.True(t, ok)
		assert.Equal(t, 1020500.00, v)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		v, ok := ParseFloat("  42.5  ")
		assert.True(t, ok)
		assert.Equal(t, 42.5, v)
	})

	t.Run("indian-style grouping", func(t *testing.T) {
		v, ok := ParseFloat("10,20,500.50")
		assert.True(t, ok)
		assert.Equal(t, 1020500.50, v)
	})

	t.Run("not a number", func(t *testing.T) {
		_, ok := ParseFloat("N/A")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := ParseFloat("")
		assert.False(t, ok)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		_, ok := ParseFloat("12,34,56x")
		assert.False(t, ok)
	})
}

func TestParseInt(t *testing.T) {
	t.Run("plain integer", func(t *testing.T) {
		v, ok := ParseInt("1000")
		assert.True(t, ok)
		assert.Equal(t, int64(1000), v)
	})

	t.Run("thousands separators", func(t *testing.T) {
		v, ok := ParseInt("1,000")
		assert.True(t, ok)
		assert.Equal(t, int64(1000), v)
	})

	t.Run("decimal is not an integer", func(t *testing.T) {
		_, ok := ParseInt("1000.5")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := ParseInt("   ")
		assert.False(t, ok)
	})
}

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-krishnan/dealslip-tracker/internal/extract"
)

func TestTablesFromLayout(t *testing.T) {
	t.Run("gapped lines form one table", func(t *testing.T) {
		text := "DEAL SLIP\n" +
			"No. of Bond(s)      1,000\n" +
			"Consideration Reported      1,020,500.00\n" +
			"Actual Consideration      1,020,000.00\n" +
			"footer text"
		tables := tablesFromLayout(text)
		require.Len(t, tables, 1)
		assert.Equal(t, extract.Table{
			{"No. of Bond(s)", "1,000"},
			{"Consideration Reported", "1,020,500.00"},
			{"Actual Consideration", "1,020,000.00"},
		}, tables[0])
	})

	t.Run("single-column lines split tables", func(t *testing.T) {
		text := "a      b\nplain paragraph line\nc      d"
		tables := tablesFromLayout(text)
		require.Len(t, tables, 2)
		assert.Equal(t, extract.Table{{"a", "b"}}, tables[0])
		assert.Equal(t, extract.Table{{"c", "d"}}, tables[1])
	})

	t.Run("no gaps no tables", func(t *testing.T) {
		assert.Empty(t, tablesFromLayout("just a line\nand another"))
	})

	t.Run("form feeds are stripped from cells", func(t *testing.T) {
		tables := tablesFromLayout("\fPrice      99.8750")
		require.Len(t, tables, 1)
		assert.Equal(t, extract.Table{{"Price", "99.8750"}}, tables[0])
	})
}

func TestSplitCells(t *testing.T) {
	assert.Nil(t, splitCells("   "))
	assert.Equal(t, []string{"one cell only"}, splitCells("one cell only"))
	assert.Equal(t, []string{"a", "b", "c"}, splitCells("  a    b      c  "))
}

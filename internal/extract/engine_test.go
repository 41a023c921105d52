package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/entity"
)

const formatAText = `DEAL ID : 12345
BUYER : ALPHA CAPITAL LTD
SELLER : BETA SECURITIES PVT LTD
ISSUER NAME : ACME INFRA LTD
ISIN : INE123A07015
QUANTITY : 1,000
PRICE : 101.55
SELLER CONSIDERATION : 1,020,000.00
BUYER CONSIDERATION : 1,020,500.00
YIELD(%) : 7.25
TRADE VALUE : 1,000,000.00`

const formatBText = `CBRICS - CORPORATE BOND REPORTING AND INTEGRATED CLEARING SYSTEM

CBRICS Transaction Id : 987654321
ISIN : INE456B08023
Description : 8.25% ACME NCD 2027
Participant : BRKA
Counter Party : BRKB
Price : 99.8750
Yield : 8.42`

func newTestEngine(t *testing.T, mode YieldMode) *Engine {
	t.Helper()
	e, err := NewEngine(mode, nil)
	require.NoError(t, err)
	return e
}

func TestExtractFormatA(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	rec := e.Extract(constants.FormatA, Document{Text: formatAText})

	assert.Equal(t, "12345", rec.DealReference)
	assert.Equal(t, "ALPHA CAPITAL LTD", rec.Buyer)
	assert.Equal(t, "BETA SECURITIES PVT LTD", rec.Seller)
	assert.Equal(t, "ACME INFRA LTD", rec.Bond)
	assert.Equal(t, "INE123A07015", rec.ISIN)

	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(1000), *rec.Quantity)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 101.55, *rec.Price)
	require.NotNil(t, rec.SellerConsideration)
	assert.Equal(t, 1020000.00, *rec.SellerConsideration)
	require.NotNil(t, rec.BuyerConsideration)
	assert.Equal(t, 1020500.00, *rec.BuyerConsideration)
	require.NotNil(t, rec.Yield)
	assert.Equal(t, 7.25, *rec.Yield)

	// FV per unit = round(trade value / quantity, 2); trade value itself is
	// never exported
	require.NotNil(t, rec.FVPerUnit)
	assert.Equal(t, 1000.00, *rec.FVPerUnit)
}

func TestExtractFormatAYieldPercentMode(t *testing.T) {
	e := newTestEngine(t, YieldModePercent)
	rec := e.Extract(constants.FormatA, Document{Text: formatAText})

	assert.Nil(t, rec.Yield)
	assert.Equal(t, "7.25%", rec.YieldText)
}

func TestExtractFormatAMisses(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)

	t.Run("empty document yields empty record", func(t *testing.T) {
		rec := e.Extract(constants.FormatA, Document{Text: ""})
		assert.Empty(t, rec.DealReference)
		assert.Nil(t, rec.Quantity)
		assert.Nil(t, rec.FVPerUnit)
	})

	t.Run("partial document keeps what it finds", func(t *testing.T) {
		rec := e.Extract(constants.FormatA, Document{Text: "ISIN : INE123A07015\nsome footer"})
		assert.Equal(t, "INE123A07015", rec.ISIN)
		assert.Empty(t, rec.DealReference)
		assert.Nil(t, rec.Price)
	})

	t.Run("no derivation without quantity", func(t *testing.T) {
		rec := e.Extract(constants.FormatA, Document{Text: "TRADE VALUE : 1,000,000.00"})
		assert.Nil(t, rec.FVPerUnit)
	})

	t.Run("zero quantity never divides", func(t *testing.T) {
		rec := e.Extract(constants.FormatA, Document{Text: "QUANTITY : 0\nTRADE VALUE : 1,000,000.00"})
		assert.Nil(t, rec.FVPerUnit)
	})
}

func TestExtractFormatBText(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	rec := e.Extract(constants.FormatB, Document{Text: formatBText})

	assert.Equal(t, "987654321", rec.DealReference)
	assert.Equal(t, "INE456B08023", rec.ISIN)
	assert.Equal(t, "8.25% ACME NCD 2027", rec.Bond)
	assert.Equal(t, "BRKA", rec.Buyer)
	assert.Equal(t, "BRKB", rec.Seller)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 99.875, *rec.Price)
	require.NotNil(t, rec.Yield)
	assert.Equal(t, 8.42, *rec.Yield)
}

func TestExtractFormatBFollowingLine(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	text := formatBText + `
No. of Bond(s)
1,000
Consideration Reported (incl. Stamp Duty)
1,020,500.00
Actual Consideration
1,020,000.00`
	rec := e.Extract(constants.FormatB, Document{Text: text})

	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(1000), *rec.Quantity)
	require.NotNil(t, rec.BuyerConsideration)
	assert.Equal(t, 1020500.00, *rec.BuyerConsideration)
	require.NotNil(t, rec.SellerConsideration)
	assert.Equal(t, 1020000.00, *rec.SellerConsideration)
}

func TestExtractFormatBTablesOverride(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	text := formatBText + `
No. of Bond(s)
999
Consideration Reported (incl. Stamp Duty)
111.00`
	tables := []Table{{
		{"No. of Bond(s)", "2,000"},
		{"Consideration Reported (incl. Stamp Duty)", "2,040,500.00"},
		{"Actual Consideration", "2,040,000.00"},
	}}
	rec := e.Extract(constants.FormatB, Document{Text: text, Tables: tables})

	// decoded table geometry wins over the positional text lookup
	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(2000), *rec.Quantity)
	require.NotNil(t, rec.BuyerConsideration)
	assert.Equal(t, 2040500.00, *rec.BuyerConsideration)
	require.NotNil(t, rec.SellerConsideration)
	assert.Equal(t, 2040000.00, *rec.SellerConsideration)
}

func TestExtractFormatBTableCellSelection(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)

	t.Run("quantity prefers a numeric first cell", func(t *testing.T) {
		tables := []Table{{{"1,500", "No. of Bond(s)"}}}
		rec := e.Extract(constants.FormatB, Document{Text: formatBText, Tables: tables})
		require.NotNil(t, rec.Quantity)
		assert.Equal(t, int64(1500), *rec.Quantity)
	})

	t.Run("quantity falls back to the last cell", func(t *testing.T) {
		tables := []Table{{{"No. of Bond(s)", "Units", "750"}}}
		rec := e.Extract(constants.FormatB, Document{Text: formatBText, Tables: tables})
		require.NotNil(t, rec.Quantity)
		assert.Equal(t, int64(750), *rec.Quantity)
	})

	t.Run("label matching ignores decoration and case", func(t *testing.T) {
		tables := []Table{{{"ACTUAL CONSIDERATION (NET)", "3,000.50"}}}
		rec := e.Extract(constants.FormatB, Document{Text: formatBText, Tables: tables})
		require.NotNil(t, rec.SellerConsideration)
		assert.Equal(t, 3000.50, *rec.SellerConsideration)
	})
}

func TestExtractStructured(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	tables := []Table{{
		{"CBRICS Transaction Id", "555000111"},
		{"ISIN", "INE456B08023"},
		{"Description", "8.25% ACME NCD 2027"},
		{"Participant", "BRKA"},
		{"Counter Party", "BRKB"},
		{"No. of Bond(s)", "500"},
		{"Consideration Reported (incl. Stamp Duty)", "510,250.00"},
		{"Actual Consideration", "510,000.00"},
		{"Price", "102.05"},
		{"Yield", "7.10"},
	}}
	rec := e.ExtractStructured(constants.FormatB, tables)

	assert.Equal(t, "555000111", rec.DealReference)
	assert.Equal(t, "INE456B08023", rec.ISIN)
	assert.Equal(t, "8.25% ACME NCD 2027", rec.Bond)
	assert.Equal(t, "BRKA", rec.Buyer)
	assert.Equal(t, "BRKB", rec.Seller)
	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(500), *rec.Quantity)
	require.NotNil(t, rec.BuyerConsideration)
	assert.Equal(t, 510250.00, *rec.BuyerConsideration)
	require.NotNil(t, rec.SellerConsideration)
	assert.Equal(t, 510000.00, *rec.SellerConsideration)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 102.05, *rec.Price)
	require.NotNil(t, rec.Yield)
	assert.Equal(t, 7.10, *rec.Yield)
}

func TestExtractStructuredIgnoresUnknownRows(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	tables := []Table{{
		{"Settlement Type", "T+1"},
		{"ISIN", "INE456B08023"},
		{"", "orphan value"},
		{"short row"},
	}}
	rec := e.ExtractStructured(constants.FormatB, tables)

	assert.Equal(t, "INE456B08023", rec.ISIN)
	assert.Empty(t, rec.DealReference)
	assert.Nil(t, rec.Quantity)
}

func TestAssignHonorsDeclaredCoercion(t *testing.T) {
	e := newTestEngine(t, YieldModeNumeric)
	rec := entity.DealRecord{}
	aux := map[string]float64{}

	e.assign(&rec, aux, FieldRule{Name: "quantity", Coerce: CoerceInt}, "1,000")
	require.NotNil(t, rec.Quantity)
	assert.Equal(t, int64(1000), *rec.Quantity)

	// a failed coercion leaves the previous value alone
	e.assign(&rec, aux, FieldRule{Name: "quantity", Coerce: CoerceInt}, "N/A")
	assert.Equal(t, int64(1000), *rec.Quantity)

	e.assign(&rec, aux, FieldRule{Name: "price", Coerce: CoerceFloat}, "101.55")
	require.NotNil(t, rec.Price)
	assert.Equal(t, 101.55, *rec.Price)

	// string is the default mode when a rule declares nothing
	e.assign(&rec, aux, FieldRule{Name: "isin"}, "INE123A07015")
	assert.Equal(t, "INE123A07015", rec.ISIN)

	e.assign(&rec, aux, FieldRule{Name: "yield", Coerce: CoerceYield}, "7.25")
	require.NotNil(t, rec.Yield)
	assert.Equal(t, 7.25, *rec.Yield)
	assert.Empty(t, rec.YieldText)

	e.assign(&rec, aux, FieldRule{Name: "trade_value", Coerce: CoerceFloat, Internal: true}, "1,000,000.00")
	assert.Equal(t, 1000000.00, aux["trade_value"])

	t.Run("yield percent mode keeps the raw capture", func(t *testing.T) {
		percent := newTestEngine(t, YieldModePercent)
		rec := entity.DealRecord{}
		percent.assign(&rec, map[string]float64{}, FieldRule{Name: "yield", Coerce: CoerceYield}, "7.25")
		assert.Equal(t, "7.25%", rec.YieldText)
		assert.Nil(t, rec.Yield)
	})
}

package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arvind-krishnan/dealslip-tracker/constants"
	"github.com/arvind-krishnan/dealslip-tracker/internal/entity"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestWriteXLSX(t *testing.T) {
	svc := NewService(nil)

	records := []entity.DealRecord{
		{
			DealReference:       "12345",
			Buyer:               "ALPHA CAPITAL LTD",
			Seller:              "BETA SECURITIES PVT LTD",
			Bond:                "ACME INFRA LTD",
			ISIN:                "INE123A07015",
			Quantity:            i64(1000),
			FVPerUnit:           f64(1000),
			Price:               f64(101.55),
			SellerConsideration: f64(1020000),
			BuyerConsideration:  f64(1020500),
			Yield:               f64(7.25),
			Variant:             constants.FormatA,
			Status:              constants.DocStatusOK,
		},
		{
			// sparse row from an unreadable document
			Status: constants.DocStatusUnreadable,
		},
		{
			DealReference: "987654321",
			ISIN:          "INE456B08023",
			YieldText:     "8.42%",
			Variant:       constants.FormatB,
			Status:        constants.DocStatusOK,
		},
	}

	b, err := svc.WriteXLSX(records)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	t.Run("single sheet with declared header", func(t *testing.T) {
		assert.Equal(t, []string{"Deal Slips"}, wb.GetSheetList())
		rows, err := wb.GetRows("Deal Slips")
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, entity.RecordColumns, rows[0])
		// header + one row per record
		assert.Len(t, rows, 4)
	})

	t.Run("complete row", func(t *testing.T) {
		get := func(cell string) string {
			v, err := wb.GetCellValue("Deal Slips", cell)
			require.NoError(t, err)
			return v
		}
		assert.Equal(t, "12345", get("A2"))
		assert.Equal(t, "ALPHA CAPITAL LTD", get("B2"))
		assert.Equal(t, "BETA SECURITIES PVT LTD", get("C2"))
		assert.Equal(t, "ACME INFRA LTD", get("D2"))
		assert.Equal(t, "INE123A07015", get("E2"))
		assert.Equal(t, "1000", get("F2"))
		assert.Equal(t, "1000", get("G2"))
		assert.Equal(t, "101.55", get("H2"))
		assert.Equal(t, "1020000", get("I2"))
		assert.Equal(t, "1020500", get("J2"))
		assert.Equal(t, "7.25", get("K2"))
		assert.Equal(t, "OK", get("L2"))
	})

	t.Run("sparse row keeps empty cells", func(t *testing.T) {
		for _, cell := range []string{"A3", "F3", "H3", "K3"} {
			v, err := wb.GetCellValue("Deal Slips", cell)
			require.NoError(t, err)
			assert.Empty(t, v, cell)
		}
		v, err := wb.GetCellValue("Deal Slips", "L3")
		require.NoError(t, err)
		assert.Equal(t, "UNREADABLE", v)
	})

	t.Run("percent-mode yield is written verbatim", func(t *testing.T) {
		v, err := wb.GetCellValue("Deal Slips", "K4")
		require.NoError(t, err)
		assert.Equal(t, "8.42%", v)
	})
}

func TestWriteXLSXNoRecords(t *testing.T) {
	svc := NewService(nil)
	b, err := svc.WriteXLSX(nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Deal Slips")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.RecordColumns, rows[0])
}

package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/arvind-krishnan/dealslip-tracker/internal/entity"
)

const (
	// Filename is the default workbook name for batch exports.
	Filename = "Bond_Deal_Slips.xlsx"
	// ContentType is the MIME type for XLSX payloads.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheet = "Deal Slips"
)

// Service produces XLSX bytes from aggregated deal records.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteXLSX renders one row per record, in input order, under a fixed header.
// Missing fields render as empty cells rather than zeroes.
func (s *Service) WriteXLSX(records []entity.DealRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	// drop excelize's default sheet so the workbook has exactly one
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range entity.RecordColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.DealReference)
		write(2, rec.Buyer)
		write(3, rec.Seller)
		write(4, rec.Bond)
		write(5, rec.ISIN)
		writeInt(write, 6, rec.Quantity)
		writeFloat(write, 7, rec.FVPerUnit)
		writeFloat(write, 8, rec.Price)
		writeFloat(write, 9, rec.SellerConsideration)
		writeFloat(write, 10, rec.BuyerConsideration)
		if rec.YieldText != "" {
			write(11, rec.YieldText)
		} else {
			writeFloat(write, 11, rec.Yield)
		}
		write(12, string(rec.Status))
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // deal reference
	_ = f.SetColWidth(sheet, "B", "C", 28) // parties
	_ = f.SetColWidth(sheet, "D", "D", 42) // bond description
	_ = f.SetColWidth(sheet, "E", "E", 16) // isin
	_ = f.SetColWidth(sheet, "F", "J", 18) // numerics
	_ = f.SetColWidth(sheet, "K", "K", 12) // yield
	_ = f.SetColWidth(sheet, "L", "L", 14) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeInt(write func(int, any), col int, v *int64) {
	if v == nil {
		write(col, "")
		return
	}
	write(col, *v)
}

func writeFloat(write func(int, any), col int, v *float64) {
	if v == nil {
		write(col, "")
		return
	}
	write(col, *v)
}

// Package export projects processed receipts into an XLSX workbook according
// to a field selection.
package export

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"receipts-digest/internal/common"
	"receipts-digest/internal/entity"
)

const sheetName = "Receipts"

// columnWidths mirrors the review screen's column sizing per field key.
var columnWidths = map[entity.ExportFieldKey]float64{
	entity.FieldDate:          15,
	entity.FieldVendor:        30,
	entity.FieldCategory:      15,
	entity.FieldDescription:   40,
	entity.FieldAmount:        12,
	entity.FieldOrderID:       20,
	entity.FieldPaymentMethod: 18,
	entity.FieldFileName:      30,
}

// amountNumFmt is the fixed currency display style: two decimals, grouped
// thousands.
const amountNumFmt = "#,##0.00"

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildXLSX renders one header row (enabled fields in selection order), one
// data row per receipt, and, when the amount field is enabled, a trailing
// TOTAL row carrying the computed sum of the amount column.
func (s *Service) BuildXLSX(receipts []*entity.ProcessedReceipt, fields []entity.ExportField) ([]byte, error) {
	start := time.Now()

	if fields == nil {
		fields = entity.DefaultExportFields()
	}
	var enabled []entity.ExportField
	for _, field := range fields {
		if field.Enabled {
			enabled = append(enabled, field)
		}
	}
	if len(enabled) == 0 {
		return nil, common.InvalidInputError("at least one export field must be enabled")
	}

	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheetName, cell, v)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	// Header row
	for i, field := range enabled {
		write(i+1, 1, field.Label)
	}
	if first, last, ok := rowRange(len(enabled), 1); ok {
		_ = f.SetCellStyle(sheetName, first, last, boldStyle)
	}

	// Data rows
	amountCol := -1
	row := 2
	for _, r := range receipts {
		for i, field := range enabled {
			if field.Key == entity.FieldAmount {
				amountCol = i + 1
			}
			write(i+1, row, fieldValue(r, field.Key))
		}
		row++
	}
	if amountCol < 0 {
		for i, field := range enabled {
			if field.Key == entity.FieldAmount {
				amountCol = i + 1
			}
		}
	}

	// Trailing aggregate row, only when the amount column is present. The sum
	// is written as a value rounded to display precision so the total survives
	// any reader, not just ones that evaluate formulas.
	if amountCol > 0 {
		var sum float64
		for _, r := range receipts {
			sum += r.Amount
		}
		sum = math.Round(sum*100) / 100

		for i := range enabled {
			switch {
			case i+1 == amountCol:
				write(i+1, row, sum)
			case i == 0:
				write(i+1, row, "TOTAL")
			default:
				write(i+1, row, "")
			}
		}
		if first, last, ok := rowRange(len(enabled), row); ok {
			_ = f.SetCellStyle(sheetName, first, last, boldStyle)
		}

		numFmt := amountNumFmt
		amountStyle, err := f.NewStyle(&excelize.Style{
			Font:         &excelize.Font{Bold: false},
			CustomNumFmt: &numFmt,
		})
		if err != nil {
			return nil, err
		}
		colName, _ := excelize.ColumnNumberToName(amountCol)
		firstAmount := fmt.Sprintf("%s2", colName)
		lastAmount := fmt.Sprintf("%s%d", colName, row)
		_ = f.SetCellStyle(sheetName, firstAmount, lastAmount, amountStyle)
	}

	// Column widths
	for i, field := range enabled {
		if w, ok := columnWidths[field.Key]; ok {
			colName, _ := excelize.ColumnNumberToName(i + 1)
			_ = f.SetColWidth(sheetName, colName, colName, w)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(receipts),
		"columns", len(enabled),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// fieldValue applies the review-stage display defaults for absent fields.
func fieldValue(r *entity.ProcessedReceipt, key entity.ExportFieldKey) any {
	switch key {
	case entity.FieldDate:
		if r.TransactionDate == "" {
			return entity.DefaultDate
		}
		return r.TransactionDate
	case entity.FieldVendor:
		if r.Vendor == "" {
			return entity.DefaultVendor
		}
		return r.Vendor
	case entity.FieldCategory:
		return string(r.Category)
	case entity.FieldDescription:
		return r.Description
	case entity.FieldAmount:
		return r.Amount
	case entity.FieldOrderID:
		if r.OrderID == "" {
			return "N/A"
		}
		return r.OrderID
	case entity.FieldPaymentMethod:
		if r.PaymentMethod == "" {
			return "N/A"
		}
		return r.PaymentMethod
	case entity.FieldFileName:
		return r.FileName
	default:
		return ""
	}
}

func rowRange(cols, row int) (string, string, bool) {
	if cols < 1 {
		return "", "", false
	}
	first, err1 := excelize.CoordinatesToCellName(1, row)
	last, err2 := excelize.CoordinatesToCellName(cols, row)
	if err1 != nil || err2 != nil {
		return "", "", false
	}
	return first, last, true
}

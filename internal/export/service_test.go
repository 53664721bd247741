package export

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"receipts-digest/constants"
	"receipts-digest/internal/common"
	"receipts-digest/internal/entity"
)

func sampleReceipts() []*entity.ProcessedReceipt {
	return []*entity.ProcessedReceipt{
		{
			ID: "r1", FileName: "swiggy.pdf", TransactionDate: "15/01/2024",
			Vendor: "Swiggy", Amount: 449.50, Description: "Order from Pizza Palace",
			Category: constants.Food, OrderID: "SWG-123456", PaymentMethod: "Upi",
		},
		{
			ID: "r2", FileName: "uber.pdf", TransactionDate: "16/01/2024",
			Vendor: "Uber", Amount: 129.99, Description: "Trip: MG Road to Airport",
			Category: constants.Travel,
		},
	}
}

func openRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func TestBuildXLSXDefaultFields(t *testing.T) {
	data, err := NewService(nil).BuildXLSX(sampleReceipts(), nil)
	require.NoError(t, err)

	rows := openRows(t, data)
	require.Len(t, rows, 4) // header, two receipts, total

	assert.Equal(t, []string{"Date", "Vendor", "Category", "Description", "Amount"}, rows[0])
	assert.Equal(t, "15/01/2024", rows[1][0])
	assert.Equal(t, "Swiggy", rows[1][1])
	assert.Equal(t, "Food", rows[1][2])
	assert.Equal(t, "Order from Pizza Palace", rows[1][3])
	assert.Equal(t, "Uber", rows[2][1])

	// The aggregate row carries the rounded column sum as a value.
	assert.Equal(t, "TOTAL", rows[3][0])
	total, err := strconv.ParseFloat(rows[3][4], 64)
	require.NoError(t, err)
	assert.InDelta(t, 579.49, total, 0.001)
}

func TestBuildXLSXFieldSelection(t *testing.T) {
	fields := []entity.ExportField{
		{Key: entity.FieldVendor, Label: "Merchant", Enabled: true},
		{Key: entity.FieldFileName, Label: "Source", Enabled: true},
		{Key: entity.FieldAmount, Label: "Spent", Enabled: false},
	}
	data, err := NewService(nil).BuildXLSX(sampleReceipts(), fields)
	require.NoError(t, err)

	rows := openRows(t, data)
	// Amount disabled: no aggregate row.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Merchant", "Source"}, rows[0])
	assert.Equal(t, []string{"Swiggy", "swiggy.pdf"}, rows[1])
	assert.Equal(t, []string{"Uber", "uber.pdf"}, rows[2])
}

func TestBuildXLSXAmountInFirstColumn(t *testing.T) {
	fields := []entity.ExportField{
		{Key: entity.FieldAmount, Label: "Amount", Enabled: true},
	}
	data, err := NewService(nil).BuildXLSX(sampleReceipts(), fields)
	require.NoError(t, err)

	rows := openRows(t, data)
	require.Len(t, rows, 4)
	// The sum takes the cell; no TOTAL label fits anywhere.
	total, err := strconv.ParseFloat(rows[3][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 579.49, total, 0.001)
}

func TestBuildXLSXAppliesDisplayDefaults(t *testing.T) {
	receipts := []*entity.ProcessedReceipt{{
		ID: "r1", Category: constants.Other, Amount: 10,
	}}
	fields := []entity.ExportField{
		{Key: entity.FieldDate, Label: "Date", Enabled: true},
		{Key: entity.FieldVendor, Label: "Vendor", Enabled: true},
		{Key: entity.FieldOrderID, Label: "Order ID", Enabled: true},
		{Key: entity.FieldPaymentMethod, Label: "Payment", Enabled: true},
	}
	data, err := NewService(nil).BuildXLSX(receipts, fields)
	require.NoError(t, err)

	rows := openRows(t, data)
	assert.Equal(t, []string{"N/A", "Unknown", "N/A", "N/A"}, rows[1])
}

func TestBuildXLSXNoEnabledFields(t *testing.T) {
	fields := []entity.ExportField{
		{Key: entity.FieldVendor, Label: "Vendor", Enabled: false},
	}
	_, err := NewService(nil).BuildXLSX(sampleReceipts(), fields)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestBuildXLSXEmptyReceipts(t *testing.T) {
	data, err := NewService(nil).BuildXLSX(nil, nil)
	require.NoError(t, err)

	rows := openRows(t, data)
	// Header plus a zero total.
	require.Len(t, rows, 2)
	total, err := strconv.ParseFloat(rows[1][4], 64)
	require.NoError(t, err)
	assert.Zero(t, total)
}

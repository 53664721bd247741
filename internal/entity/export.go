package entity

// ExportFieldKey names one projectable column of a ProcessedReceipt.
type ExportFieldKey string

const (
	FieldDate          ExportFieldKey = "date"
	FieldVendor        ExportFieldKey = "vendor"
	FieldCategory      ExportFieldKey = "category"
	FieldDescription   ExportFieldKey = "description"
	FieldAmount        ExportFieldKey = "amount"
	FieldOrderID       ExportFieldKey = "orderId"
	FieldPaymentMethod ExportFieldKey = "paymentMethod"
	FieldFileName      ExportFieldKey = "fileName"
)

// ExportField is one (key, label, enabled) tuple of a field selection.
// Slice order determines column order in the projection.
type ExportField struct {
	Key     ExportFieldKey `json:"key"`
	Label   string         `json:"label"`
	Enabled bool           `json:"enabled"`
}

// DefaultExportFields mirrors the review screen's initial column selection.
func DefaultExportFields() []ExportField {
	return []ExportField{
		{Key: FieldDate, Label: "Date", Enabled: true},
		{Key: FieldVendor, Label: "Vendor", Enabled: true},
		{Key: FieldCategory, Label: "Category", Enabled: true},
		{Key: FieldDescription, Label: "Description", Enabled: true},
		{Key: FieldAmount, Label: "Amount", Enabled: true},
		{Key: FieldOrderID, Label: "Order ID", Enabled: false},
		{Key: FieldPaymentMethod, Label: "Payment Method", Enabled: false},
		{Key: FieldFileName, Label: "File Name", Enabled: false},
	}
}

// AllExportFieldKeys lists every projectable key, used for payload validation.
func AllExportFieldKeys() []string {
	return []string{
		string(FieldDate),
		string(FieldVendor),
		string(FieldCategory),
		string(FieldDescription),
		string(FieldAmount),
		string(FieldOrderID),
		string(FieldPaymentMethod),
		string(FieldFileName),
	}
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"slash format", "Invoice\nDate: 15/01/2024\nTotal: $10", "15/01/2024"},
		{"dash format", "Billed on 5-12-2023", "5-12-2023"},
		{"iso format", "Issued 2024-01-15 at noon", "2024-01-15"},
		{"month name first", "Jan 15, 2024", "Jan 15, 2024"},
		{"full month name", "Paid on 15 January 2024", "15 January 2024"},
		{"no date", "no digits that look like dates", ""},
		{"slash beats month name", "15/01/2024 also known as Jan 15, 2024", "15/01/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDate(tt.text))
		})
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"labelled rupee beats tax line", "Total: ₹120.50\nTax: ₹10.00", 120.50},
		{"rs with thousands separator", "Grand Total: Rs. 1,234.56", 1234.56},
		{"dollar amount", "$45.99 paid", 45.99},
		{"largest of several totals", "Subtotal 40.00\nTotal 55.25", 55.25},
		{"bare rupee", "₹250 only", 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAmount(tt.text)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.001)
		})
	}
}

func TestExtractAmountAbsent(t *testing.T) {
	assert.Nil(t, extractAmount("no numbers here"))
	assert.Nil(t, extractAmount("Total: $0.00"))
	assert.Nil(t, extractAmount(""))
}

func TestExtractVendorRegistry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"swiggy", "Thank you for ordering with Swiggy!", "Swiggy"},
		{"uber eats is not uber", "Your Uber Eats order has arrived", "Uber Eats"},
		{"uber trip", "Your Uber trip with Ramesh", "Uber"},
		{"case insensitive", "SWIGGY INSTAMART", "Swiggy"},
		{"delivery app beats restaurant", "Swiggy order from Pizza Hut", "Swiggy"},
		{"amazon", "amzn.in order confirmation", "Amazon"},
		{"netflix", "Netflix subscription renewal", "Netflix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractVendor(tt.text))
		})
	}
}

func TestExtractVendorFallback(t *testing.T) {
	// No registry hit: the first plausible line near the top wins.
	text := "Corner Bakery\n15/01/2024\nTotal: $5.00"
	assert.Equal(t, "Corner Bakery", extractVendor(text))

	// Label lines, dates and bare numbers are skipped.
	text = "Invoice #42\n01/02/2024\n12345\nBlue Tokai Roasters\nmore text"
	assert.Equal(t, "Blue Tokai Roasters", extractVendor(text))

	assert.Equal(t, "", extractVendor(""))
}

func TestClassifyVendor(t *testing.T) {
	tests := []struct {
		vendor string
		want   VendorClass
	}{
		{"Swiggy", VendorFoodDelivery},
		{"Uber Eats", VendorFoodDelivery},
		{"Uber", VendorRideShare},
		{"Ola", VendorRideShare},
		{"PVR Cinemas", VendorCinema},
		{"Amazon", VendorGeneric},
		{"", VendorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.vendor, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVendor(tt.vendor))
		})
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		vendor string
		want   string
	}{
		{
			"food delivery names the restaurant",
			"Restaurant: Pizza Palace\nTotal: ₹500",
			"Swiggy",
			"Order from Pizza Palace",
		},
		{
			"ride share builds the trip",
			"Pickup: MG Road\nDrop: Airport Terminal 1",
			"Uber",
			"Trip: MG Road to Airport Terminal 1",
		},
		{
			"cinema names the movie",
			"Movie: Inception\nScreen: 4",
			"PVR Cinemas",
			"Movie: Inception",
		},
		{
			"labelled item line",
			"Item: USB-C Cable\nTotal: $9.99",
			"Amazon",
			"USB-C Cable",
		},
		{
			"items block",
			"Items\nMargherita Pizza\nGarlic Bread\nTotal: 500",
			"",
			"Margherita Pizza, Garlic Bread",
		},
		{
			"meaningful lines fallback",
			"Corner Bakery\nFreshly baked goods\nTotal: $12.00",
			"",
			"Corner Bakery, Freshly baked goods",
		},
		{
			"empty text",
			"",
			"",
			"Transaction",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDescription(tt.text, tt.vendor))
		})
	}
}

func TestExtractOrderID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"order id", "Order ID: SWG-123456", "SWG-123456"},
		{"transaction no", "Transaction No: TXN999", "TXN999"},
		{"bare hash", "Ref #ABCD1234", "ABCD1234"},
		{"short hash rejected", "Seat #A1", ""},
		{"nothing", "plain text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractOrderID(tt.text))
		})
	}
}

func TestExtractPaymentMethod(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled phrase", "Paid via UPI", "Upi"},
		{"payment method label", "Payment Method: Credit Card", "Credit card"},
		{"labelled wallet", "paid using PhonePe wallet", "Phonepe wallet"},
		{"card network", "Visa ending 1234", "Visa"},
		{"bare keyword", "charged to gpay", "Gpay"},
		{"nothing", "no payment info", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPaymentMethod(tt.text))
		})
	}
}

func TestExtractFullReceipt(t *testing.T) {
	text := "Swiggy\n" +
		"Order ID: SWG-123456\n" +
		"Date: 15/01/2024\n" +
		"Restaurant: Pizza Palace\n" +
		"Total: ₹450.00\n" +
		"Paid via UPI"

	got := Extract(text)
	assert.Equal(t, "Swiggy", got.Vendor)
	assert.Equal(t, "15/01/2024", got.TransactionDate)
	require.NotNil(t, got.Amount)
	assert.InDelta(t, 450.00, *got.Amount, 0.001)
	assert.Equal(t, "Order from Pizza Palace", got.Description)
	assert.Equal(t, "SWG-123456", got.OrderID)
	assert.Equal(t, "Upi", got.PaymentMethod)
}

func TestExtractNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"日本語のレシート ₹100",
		"%%%$$$###@@@",
		"Total: ₹\nOrder ID:\nPaid via",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Extract(in) })
	}
}

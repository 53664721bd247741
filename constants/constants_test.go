package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input  string
		want   Category
		wantOK bool
	}{
		{"Food", Food, true},
		{"food", Food, true},
		{"  Travel  ", Travel, true},
		{"dining", Food, true},
		{"transport", Travel, true},
		{"e-commerce", Shopping, true},
		{"bills", Utilities, true},
		{"misc", Other, true},
		{"nonsense", Other, false},
		{"", Other, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Canonicalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	assert.Equal(t, []string{"Food", "Travel", "Shopping", "Utilities", "Other"}, AsStringSlice())
}

func TestIsPDFHeader(t *testing.T) {
	assert.True(t, IsPDFHeader([]byte("%PDF-1.7")))
	assert.False(t, IsPDFHeader([]byte("%PDF")))
	assert.False(t, IsPDFHeader([]byte("PDF-1.7")))
	assert.False(t, IsPDFHeader(nil))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "pdf", NormalizeExt("pdf"))
	assert.Equal(t, "", NormalizeExt("."))
}

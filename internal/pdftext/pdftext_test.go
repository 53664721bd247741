package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]byte("%PDF-1.7 rest of document")))

	err := Validate([]byte("plain text"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPDF)

	assert.ErrorIs(t, Validate(nil), ErrNotPDF)
	assert.ErrorIs(t, Validate([]byte("%PD")), ErrNotPDF)
}

func TestExtractTextRejectsGarbage(t *testing.T) {
	c := NewConverter()

	// A correct magic header over a broken body must degrade to an error,
	// never a panic.
	assert.NotPanics(t, func() {
		_, err := c.ExtractText([]byte("%PDF-1.4 this is not a real document"))
		assert.Error(t, err)
	})

	assert.NotPanics(t, func() {
		_, err := c.ExtractText(nil)
		assert.Error(t, err)
	})
}

// Package pdftext converts raw PDF bytes into plain text for the extraction
// engine. The conversion library is treated as untrusted: calls are wrapped in
// a recover guard so a malformed document degrades to a per-document error.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"receipts-digest/constants"
)

// maxTextBytes caps extracted text; receipts are short and anything beyond
// this is noise for the heuristics.
const maxTextBytes = 100 * 1024

var (
	ErrNotPDF = errors.New("not a valid PDF document")
	ErrNoText = errors.New("no extractable text")
)

// Converter implements the pipeline's text-conversion contract.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

// Validate rejects bytes whose first five bytes are not the PDF magic header.
func Validate(data []byte) error {
	if !constants.IsPDFHeader(data) {
		return ErrNotPDF
	}
	return nil
}

// ExtractText returns the decoded text content of the document. Empty or
// whitespace-only output is reported as ErrNoText.
func (c *Converter) ExtractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parsing failed: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf reader: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract plain text: %w", err)
	}

	textBytes, err := io.ReadAll(io.LimitReader(plainText, maxTextBytes))
	if err != nil {
		return "", fmt.Errorf("read plain text: %w", err)
	}

	if strings.TrimSpace(string(textBytes)) == "" {
		return "", ErrNoText
	}
	return string(textBytes), nil
}

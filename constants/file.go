package constants

import "strings"

// PDFHeader is the 5-byte magic prefix every acceptable document must carry.
const PDFHeader = "%PDF-"

// PDFMimeType is the MIME type used to pre-filter folder listings.
const PDFMimeType = "application/pdf"

// AllowedExtensions holds the file extensions accepted for local-folder runs.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFHeader reports whether the raw bytes start with the PDF magic prefix.
func IsPDFHeader(b []byte) bool {
	return len(b) >= len(PDFHeader) && string(b[:len(PDFHeader)]) == PDFHeader
}

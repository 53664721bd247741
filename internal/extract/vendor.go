package extract

import (
	"regexp"
	"strings"
)

var (
	hasLetterRe      = regexp.MustCompile(`[a-zA-Z]`)
	labelLineRe      = regexp.MustCompile(`(?i)^(order|invoice|receipt|transaction|date|time|total|amount|tax|gst)`)
	leadingDateRe    = regexp.MustCompile(`^\d{2}[/\-]\d{2}[/\-]\d{4}`)
	bareNumberLineRe = regexp.MustCompile(`^[#\d]+$`)
)

// extractVendor resolves the merchant via the registry first. When no known
// vendor matches it falls back to the top of the document: receipts usually
// print the merchant name in the first few lines with no leading label.
func extractVendor(text string) string {
	if name, ok := MatchVendor(text); ok {
		return name
	}

	lines := splitLines(text)
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if len(line) > 2 && len(line) < 50 &&
			hasLetterRe.MatchString(line) &&
			!labelLineRe.MatchString(line) &&
			!leadingDateRe.MatchString(line) &&
			!bareNumberLineRe.MatchString(line) {
			return line
		}
	}

	return ""
}

// splitLines returns the trimmed, non-empty lines of text in document order.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

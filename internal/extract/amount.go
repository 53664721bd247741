package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPatterns are tried in order: labelled rupee totals, bare rupee amounts,
// labelled dollar totals, bare dollar amounts, then generic two-decimal tokens.
// Unlike the other extractors, every match of every family is collected.
var amountPatterns = []*regexp.Regexp{
	// Indian rupee patterns
	regexp.MustCompile(`(?i)(?:total|grand\s*total|amount\s*payable|net\s*amount|paid|to\s*pay)[:\s]*(?:₹|rs\.?|inr)\s*(\d+[,\d]*\.?\d{0,2})`),
	regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s*(\d+[,\d]*\.?\d{0,2})(?:\s*(?:only|/-)?)?`),
	// Dollar patterns
	regexp.MustCompile(`(?i)(?:total|amount|sum|grand total|balance due)[:\s]*\$?\s*(\d+[,\d]*\.?\d{0,2})`),
	regexp.MustCompile(`\$\s*(\d+[,\d]*\.\d{2})\b`),
	// Generic number patterns
	regexp.MustCompile(`(?:^|\s)(\d+[,\d]*\.\d{2})(?:\s|$)`),
}

// extractAmount returns the largest positive candidate matched by any family.
// The policy assumes the biggest number on a receipt is the grand total; an
// unrelated large number (phone number, loyalty balance) can win on unusual
// layouts. Known heuristic limitation, kept deliberately.
func extractAmount(text string) *float64 {
	var amounts []float64

	for _, pattern := range amountPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			raw := strings.ReplaceAll(m[1], ",", "")
			amount, err := strconv.ParseFloat(strings.TrimSuffix(raw, "."), 64)
			if err == nil && amount > 0 {
				amounts = append(amounts, amount)
			}
		}
	}

	if len(amounts) == 0 {
		return nil
	}
	max := amounts[0]
	for _, a := range amounts[1:] {
		if a > max {
			max = a
		}
	}
	return &max
}

package extract

import (
	"regexp"
	"strings"
)

// paymentPatterns: a labelled phrase wins over bare wallet/bank keywords, which
// win over card-network names. group selects which submatch carries the value
// (the labelled phrase captures the remainder; keyword sets use the whole match).
var paymentPatterns = []struct {
	pattern *regexp.Regexp
	group   int
}{
	{regexp.MustCompile(`(?i)(?:paid\s*(?:via|by|using)|payment\s*(?:method|mode))[:\s]*(.*)`), 1},
	{regexp.MustCompile(`(?i)\b(upi|gpay|google\s*pay|phonepe|paytm|credit\s*card|debit\s*card|cash|net\s*banking|wallet)\b`), 0},
	{regexp.MustCompile(`(?i)\b(visa|mastercard|amex|rupay)\b`), 0},
}

func extractPaymentMethod(text string) string {
	for _, p := range paymentPatterns {
		if m := p.pattern.FindStringSubmatch(text); m != nil {
			return capitalize(strings.TrimSpace(m[p.group]))
		}
	}
	return ""
}

// capitalize upper-cases the first byte and lower-cases the rest, matching the
// display casing used on the review screen.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

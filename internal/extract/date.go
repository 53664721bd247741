package extract

import "regexp"

// datePatterns are tried in order; the first family with a match wins and the
// raw substring is returned. D/M vs M/D is never disambiguated because the
// source locale is unknown, so the value stays an unparsed substring.
var datePatterns = []*regexp.Regexp{
	// MM/DD/YYYY or DD/MM/YYYY
	regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})\b`),
	// YYYY-MM-DD
	regexp.MustCompile(`\b(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})\b`),
	// Month DD, YYYY (e.g. Jan 15, 2024)
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{1,2}),?\s+(\d{4})\b`),
	// DD Month YYYY (e.g. 15 January 2024)
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{4})\b`),
}

func extractDate(text string) string {
	for _, pattern := range datePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

package extract

import (
	"regexp"
	"strings"
)

// orderIDPatterns: labelled tokens in priority order, then a bare #TOKEN of at
// least six characters so short seat/row markers don't match.
var orderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:order\s*(?:id|no|number)?)[:\s#]*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)(?:transaction\s*(?:id|no)?)[:\s#]*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)(?:invoice\s*(?:id|no|number)?)[:\s#]*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)(?:receipt\s*(?:id|no|number)?)[:\s#]*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)(?:#)\s*([A-Z0-9\-]{6,})`),
}

func extractOrderID(text string) string {
	for _, pattern := range orderIDPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

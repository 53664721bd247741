// Package categorize assigns one label from the closed category set to a
// transaction based on its vendor and description text.
package categorize

import (
	"strings"

	"receipts-digest/constants"
)

// Categorize returns the category of the first rule whose keyword appears in
// the lowercased vendor+description. Pure and total: no weighting, strictly
// first-match-wins under table order.
func Categorize(vendor, description string) constants.Category {
	searchText := strings.ToLower(vendor + " " + description)

	for _, rule := range rules {
		if strings.Contains(searchText, rule.keyword) {
			return rule.category
		}
	}

	return constants.Other
}

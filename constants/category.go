package constants

import (
	"strings"
)

type Category string

const (
	Food      Category = "Food"
	Travel    Category = "Travel"
	Shopping  Category = "Shopping"
	Utilities Category = "Utilities"
	Other     Category = "Other"
)

var allCategories = []Category{
	Food,
	Travel,
	Shopping,
	Utilities,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form user input onto the closed category set.
// Unknown input falls back to Other.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"dining":        Food,
		"groceries":     Food,
		"transport":     Travel,
		"ride":          Travel,
		"e-commerce":    Shopping,
		"subscriptions": Utilities,
		"bills":         Utilities,
		"misc":          Other,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}

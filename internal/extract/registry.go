package extract

import "regexp"

// matcher is one recognition test of a vendor descriptor.
type matcher func(text string) bool

func re(expr string) matcher {
	rx := regexp.MustCompile(expr)
	return rx.MatchString
}

// reUnless matches expr only where the text directly after a match does not
// continue with excludeAfter. RE2 has no negative lookahead, so the "uber"
// rule (which must not swallow "uber eats") is scanned match by match.
func reUnless(expr, excludeAfter string) matcher {
	rx := regexp.MustCompile(expr)
	excl := regexp.MustCompile(excludeAfter)
	return func(text string) bool {
		for _, loc := range rx.FindAllStringIndex(text, -1) {
			if !excl.MatchString(text[loc[1]:]) {
				return true
			}
		}
		return false
	}
}

// VendorDescriptor is one known merchant identity with its recognition rules.
type VendorDescriptor struct {
	Name     string
	Patterns []matcher
}

// registry is scanned in declaration order and the first descriptor with any
// matching pattern wins, so the order below is a priority order. Delivery apps
// sit above generic restaurant brands so a Swiggy receipt that also mentions a
// restaurant resolves to Swiggy.
var registry = []VendorDescriptor{
	// Food delivery apps
	{Name: "Swiggy", Patterns: []matcher{re(`(?i)swiggy`), re(`(?i)bundl\s*technologies`)}},
	{Name: "Zomato", Patterns: []matcher{re(`(?i)zomato`), re(`(?i)zomato\s*media`)}},
	{Name: "Uber Eats", Patterns: []matcher{re(`(?i)uber\s*eats`), re(`(?i)ubereats`)}},
	{Name: "DoorDash", Patterns: []matcher{re(`(?i)doordash`), re(`(?i)door\s*dash`)}},
	{Name: "Grubhub", Patterns: []matcher{re(`(?i)grubhub`), re(`(?i)grub\s*hub`)}},

	// Ride-sharing
	{Name: "Uber", Patterns: []matcher{
		reUnless(`(?i)\buber\b`, `(?i)^\s*eats`),
		re(`(?i)uber\s*trip`), re(`(?i)uber\s*ride`), re(`(?i)uber\s*technologies`),
	}},
	{Name: "Lyft", Patterns: []matcher{re(`(?i)lyft`)}},
	{Name: "Ola", Patterns: []matcher{re(`(?i)\bola\b`), re(`(?i)ola\s*cabs`), re(`(?i)ani\s*technologies`)}},
	{Name: "Rapido", Patterns: []matcher{re(`(?i)rapido`)}},

	// E-commerce
	{Name: "Amazon", Patterns: []matcher{re(`(?i)amazon`), re(`(?i)amzn`)}},
	{Name: "Flipkart", Patterns: []matcher{re(`(?i)flipkart`)}},
	{Name: "Myntra", Patterns: []matcher{re(`(?i)myntra`)}},
	{Name: "Walmart", Patterns: []matcher{re(`(?i)walmart`), re(`(?i)wal-mart`)}},
	{Name: "Target", Patterns: []matcher{re(`(?i)target`)}},
	{Name: "eBay", Patterns: []matcher{re(`(?i)ebay`), re(`(?i)e-bay`)}},

	// Food & restaurant
	{Name: "Starbucks", Patterns: []matcher{re(`(?i)starbucks`)}},
	{Name: "McDonalds", Patterns: []matcher{re(`(?i)mcdonald`), re(`(?i)mc\s*donald`)}},
	{Name: "Subway", Patterns: []matcher{re(`(?i)subway`)}},
	{Name: "Dominos", Patterns: []matcher{re(`(?i)domino`)}},
	{Name: "Pizza Hut", Patterns: []matcher{re(`(?i)pizza\s*hut`)}},
	{Name: "KFC", Patterns: []matcher{re(`(?i)\bkfc\b`), re(`(?i)kentucky\s*fried`)}},
	{Name: "Burger King", Patterns: []matcher{re(`(?i)burger\s*king`)}},

	// Grocery
	{Name: "BigBasket", Patterns: []matcher{re(`(?i)bigbasket`), re(`(?i)big\s*basket`)}},
	{Name: "Blinkit", Patterns: []matcher{re(`(?i)blinkit`), re(`(?i)grofers`)}},
	{Name: "Zepto", Patterns: []matcher{re(`(?i)zepto`)}},
	{Name: "Instamart", Patterns: []matcher{re(`(?i)instamart`)}},

	// Utilities & services
	{Name: "Netflix", Patterns: []matcher{re(`(?i)netflix`)}},
	{Name: "Spotify", Patterns: []matcher{re(`(?i)spotify`)}},
	{Name: "Apple", Patterns: []matcher{re(`(?i)apple\s*(?:inc|store)?`), re(`(?i)itunes`), re(`(?i)app\s*store`)}},
	{Name: "Google", Patterns: []matcher{re(`(?i)google`)}},
	{Name: "Microsoft", Patterns: []matcher{re(`(?i)microsoft`)}},

	// Telecom
	{Name: "Jio", Patterns: []matcher{re(`(?i)\bjio\b`), re(`(?i)reliance\s*jio`)}},
	{Name: "Airtel", Patterns: []matcher{re(`(?i)airtel`), re(`(?i)bharti\s*airtel`)}},
	{Name: "Vodafone", Patterns: []matcher{re(`(?i)vodafone`), re(`(?i)vi\s`)}},
	{Name: "Verizon", Patterns: []matcher{re(`(?i)verizon`)}},
	{Name: "AT&T", Patterns: []matcher{re(`(?i)at&t`), re(`(?i)att\b`)}},
}

// MatchVendor resolves text against the registry, returning the display name of
// the first descriptor with any matching pattern.
func MatchVendor(text string) (string, bool) {
	for _, vendor := range registry {
		for _, pattern := range vendor.Patterns {
			if pattern(text) {
				return vendor.Name, true
			}
		}
	}
	return "", false
}

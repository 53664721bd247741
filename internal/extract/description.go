package extract

import (
	"regexp"
	"strings"
)

// VendorClass groups merchants whose receipts share a description layout.
type VendorClass int

const (
	VendorGeneric VendorClass = iota
	VendorFoodDelivery
	VendorCinema
	VendorRideShare
)

var (
	foodDeliveryClassRe = regexp.MustCompile(`swiggy|zomato|uber eats|doordash|grubhub`)
	cinemaClassRe       = regexp.MustCompile(`pvr|inox|cinepolis|amc|theater|cinema`)
	rideShareClassRe    = regexp.MustCompile(`uber|ola|lyft|rapido`)
)

// ClassifyVendor resolves a vendor display name to its class once; description
// extraction dispatches on the result. Classification order matters: "Uber
// Eats" must land on food delivery before the ride-share test sees "uber".
func ClassifyVendor(name string) VendorClass {
	if name == "" {
		return VendorGeneric
	}
	lower := strings.ToLower(name)
	switch {
	case foodDeliveryClassRe.MatchString(lower):
		return VendorFoodDelivery
	case cinemaClassRe.MatchString(lower):
		return VendorCinema
	case rideShareClassRe.MatchString(lower):
		return VendorRideShare
	default:
		return VendorGeneric
	}
}

// classDescriber is the per-class description capability. A class that finds
// nothing falls through to the generic chain.
type classDescriber interface {
	describe(text string, lines []string) (string, bool)
}

var describers = map[VendorClass]classDescriber{
	VendorFoodDelivery: foodDeliveryDescriber{},
	VendorCinema:       cinemaDescriber{},
	VendorRideShare:    rideShareDescriber{},
}

var foodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:restaurant|from|ordered from)[:\s]+([^\n]{3,40})`),
	regexp.MustCompile(`(?i)(?:items?|dish|meal)[:\s]+([^\n]{3,50})`),
	regexp.MustCompile(`(?i)(?:cuisine|menu)[:\s]+([^\n]{3,40})`),
}

type foodDeliveryDescriber struct{}

func (foodDeliveryDescriber) describe(_ string, lines []string) (string, bool) {
	for _, pattern := range foodPatterns {
		for _, line := range lines {
			if m := pattern.FindStringSubmatch(line); m != nil && len(m[1]) > 3 {
				return "Order from " + m[1], true
			}
		}
	}
	return "", false
}

var entertainmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:movie|film|show)[:\s]+([^\n]{3,50})`),
	regexp.MustCompile(`(?i)(?:tickets?|seats?)[:\s]+([^\n]{3,50})`),
	regexp.MustCompile(`(?i)(?:screen|hall|theater)[:\s]+([^\n]{3,40})`),
}

type cinemaDescriber struct{}

func (cinemaDescriber) describe(_ string, lines []string) (string, bool) {
	for _, pattern := range entertainmentPatterns {
		for _, line := range lines {
			if m := pattern.FindStringSubmatch(line); m != nil && m[1] != "" {
				return "Movie: " + m[1], true
			}
		}
	}
	return "", false
}

// tripPattern spans the whole text, not single lines: pickup and drop usually
// sit on separate labelled lines of a ride receipt.
var tripPattern = regexp.MustCompile(`(?is)(?:from|pickup)[:\s]*([^\n,]{3,30}).*?(?:to|drop)[:\s]*([^\n]{3,30})`)

var travelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:from|pickup)[:\s]+([^\n]{3,40})(?:to|drop)[:\s]+([^\n]{3,40})`),
	regexp.MustCompile(`(?i)(?:trip|ride|journey)[:\s]+([^\n]{3,50})`),
	regexp.MustCompile(`(?i)(?:route|destination)[:\s]+([^\n]{3,40})`),
}

type rideShareDescriber struct{}

func (rideShareDescriber) describe(text string, _ []string) (string, bool) {
	if m := tripPattern.FindStringSubmatch(text); m != nil && m[1] != "" && m[2] != "" {
		return "Trip: " + strings.TrimSpace(m[1]) + " to " + strings.TrimSpace(m[2]), true
	}
	for _, pattern := range travelPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil && m[1] != "" {
			return "Ride: " + m[1], true
		}
	}
	return "", false
}

var generalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:description|details)[:\s]+(.*)`),
	regexp.MustCompile(`(?i)(?:for|regarding)[:\s]+(.*)`),
}

var shoppingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:product|item)[:\s]+([^\n]{3,50})`),
	regexp.MustCompile(`(?i)(?:brand|model)[:\s]+([^\n]{3,40})`),
}

var (
	itemsHeaderRe    = regexp.MustCompile(`(?i)^(?:item|product|order)s?$`)
	itemsLabelRe     = regexp.MustCompile(`(?i)^(?:total|subtotal|tax|amount|qty|price)`)
	meaningfulSkipRe = regexp.MustCompile(`(?i)^(?:order|invoice|receipt|transaction|date|time|total|subtotal|tax|gst|cgst|sgst|amount)`)
)

// extractDescription synthesizes a short human description. The resolved vendor
// steers it: class-specific phrasing first, then labelled general/shopping
// lines, then an items block, then the first meaningful lines of the document.
func extractDescription(text, vendor string) string {
	lines := splitLines(text)

	if d, ok := describers[ClassifyVendor(vendor)]; ok {
		if desc, found := d.describe(text, lines); found {
			return desc
		}
	}

	for _, pattern := range append(append([]*regexp.Regexp{}, generalPatterns...), shoppingPatterns...) {
		for _, line := range lines {
			if m := pattern.FindStringSubmatch(line); m != nil && len(m[1]) > 3 && len(m[1]) < 100 {
				return strings.TrimSpace(m[1])
			}
		}
	}

	if desc, ok := itemsBlock(lines); ok {
		return desc
	}

	return meaningfulLines(lines)
}

// itemsBlock joins up to three lines following a bare "Items"/"Products"
// header, skipping totals and labels.
func itemsBlock(lines []string) (string, bool) {
	start := -1
	for i, line := range lines {
		if itemsHeaderRe.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 || start >= len(lines)-1 {
		return "", false
	}

	end := start + 4
	if end > len(lines) {
		end = len(lines)
	}
	var items []string
	for _, line := range lines[start+1 : end] {
		if len(line) > 2 && len(line) < 50 && !itemsLabelRe.MatchString(line) {
			items = append(items, line)
		}
	}
	joined := strings.Join(items, ", ")
	if len(joined) > 5 {
		return clip(joined, 100), true
	}
	return "", false
}

// meaningfulLines is the last resort: the first two lines that are neither
// labels, dates nor bare numbers, or the literal "Transaction".
func meaningfulLines(lines []string) string {
	var picked []string
	for _, line := range lines {
		if len(line) > 5 && len(line) < 60 &&
			!meaningfulSkipRe.MatchString(line) &&
			!leadingDateRe.MatchString(line) &&
			!bareNumberLineRe.MatchString(line) {
			picked = append(picked, line)
			if len(picked) == 2 {
				break
			}
		}
	}
	joined := clip(strings.Join(picked, ", "), 100)
	if joined == "" {
		return "Transaction"
	}
	return joined
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

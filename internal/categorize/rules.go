package categorize

import "receipts-digest/constants"

// keywordRule is one (keyword, category) pair of the rule table.
type keywordRule struct {
	keyword  string
	category constants.Category
}

// rules is evaluated top to bottom and the first keyword found as a substring
// wins, so declaration order is a priority order. Keywords overlap on purpose:
// brand names sit above the generic words they contain ("food" is late so
// "seafood city" style names hit their specific rules first), and the grocery
// block precedes the e-commerce block, which is why "Amazon Fresh Grocery"
// categorizes as Food rather than Shopping.
var rules = []keywordRule{
	// Food & dining - delivery apps
	{"swiggy", constants.Food},
	{"zomato", constants.Food},
	{"uber eats", constants.Food},
	{"ubereats", constants.Food},
	{"doordash", constants.Food},
	{"grubhub", constants.Food},
	{"deliveroo", constants.Food},
	{"foodpanda", constants.Food},
	{"dunzo", constants.Food},

	// Food & dining - quick commerce / grocery
	{"bigbasket", constants.Food},
	{"blinkit", constants.Food},
	{"zepto", constants.Food},
	{"instamart", constants.Food},
	{"grofers", constants.Food},
	{"jiomart", constants.Food},
	{"dmart", constants.Food},
	{"reliance fresh", constants.Food},
	{"more supermarket", constants.Food},

	// Food & dining - restaurants & cafes
	{"starbucks", constants.Food},
	{"mcdonald", constants.Food},
	{"subway", constants.Food},
	{"pizza", constants.Food},
	{"domino", constants.Food},
	{"pizza hut", constants.Food},
	{"kfc", constants.Food},
	{"burger king", constants.Food},
	{"restaurant", constants.Food},
	{"cafe", constants.Food},
	{"coffee", constants.Food},
	{"burger", constants.Food},
	{"kitchen", constants.Food},
	{"dining", constants.Food},
	{"food", constants.Food},
	{"bakery", constants.Food},
	{"chai", constants.Food},
	{"biryani", constants.Food},

	// Food & dining - grocery
	{"grocery", constants.Food},
	{"market", constants.Food},
	{"supermarket", constants.Food},
	{"walmart", constants.Shopping},
	{"costco", constants.Shopping},
	{"target", constants.Shopping},

	// Travel - ride sharing
	{"uber", constants.Travel},
	{"lyft", constants.Travel},
	{"ola", constants.Travel},
	{"ola cabs", constants.Travel},
	{"rapido", constants.Travel},
	{"meru", constants.Travel},
	{"grab", constants.Travel},
	{"gojek", constants.Travel},
	{"didi", constants.Travel},

	// Travel - airlines & hotels
	{"airline", constants.Travel},
	{"airways", constants.Travel},
	{"indigo", constants.Travel},
	{"air india", constants.Travel},
	{"spicejet", constants.Travel},
	{"vistara", constants.Travel},
	{"emirates", constants.Travel},
	{"hotel", constants.Travel},
	{"oyo", constants.Travel},
	{"airbnb", constants.Travel},
	{"makemytrip", constants.Travel},
	{"goibibo", constants.Travel},
	{"booking.com", constants.Travel},
	{"cleartrip", constants.Travel},
	{"yatra", constants.Travel},

	// Travel - transport
	{"rental", constants.Travel},
	{"gas", constants.Travel},
	{"fuel", constants.Travel},
	{"petrol", constants.Travel},
	{"diesel", constants.Travel},
	{"parking", constants.Travel},
	{"transit", constants.Travel},
	{"train", constants.Travel},
	{"irctc", constants.Travel},
	{"bus", constants.Travel},
	{"redbus", constants.Travel},
	{"metro", constants.Travel},

	// Shopping - e-commerce
	{"amazon", constants.Shopping},
	{"flipkart", constants.Shopping},
	{"myntra", constants.Shopping},
	{"ajio", constants.Shopping},
	{"nykaa", constants.Shopping},
	{"meesho", constants.Shopping},
	{"snapdeal", constants.Shopping},
	{"ebay", constants.Shopping},
	{"alibaba", constants.Shopping},

	// Shopping - general
	{"store", constants.Shopping},
	{"shop", constants.Shopping},
	{"retail", constants.Shopping},
	{"mall", constants.Shopping},
	{"electronics", constants.Shopping},
	{"croma", constants.Shopping},
	{"reliance digital", constants.Shopping},

	// Utilities - telecom
	{"jio", constants.Utilities},
	{"airtel", constants.Utilities},
	{"vodafone", constants.Utilities},
	{"vi", constants.Utilities},
	{"bsnl", constants.Utilities},
	{"verizon", constants.Utilities},
	{"at&t", constants.Utilities},
	{"t-mobile", constants.Utilities},

	// Utilities - internet & services
	{"electric", constants.Utilities},
	{"electricity", constants.Utilities},
	{"water", constants.Utilities},
	{"internet", constants.Utilities},
	{"broadband", constants.Utilities},
	{"phone", constants.Utilities},
	{"mobile", constants.Utilities},
	{"utility", constants.Utilities},
	{"comcast", constants.Utilities},
	{"act fibernet", constants.Utilities},

	// Utilities - streaming & subscriptions
	{"netflix", constants.Utilities},
	{"prime video", constants.Utilities},
	{"hotstar", constants.Utilities},
	{"disney", constants.Utilities},
	{"spotify", constants.Utilities},
	{"apple music", constants.Utilities},
	{"youtube", constants.Utilities},

	// Utilities - payments & finance
	{"paytm", constants.Utilities},
	{"phonepe", constants.Utilities},
	{"gpay", constants.Utilities},
	{"google pay", constants.Utilities},
	{"bharatpe", constants.Utilities},
}

package assistant

import "strings"

// DefaultAllowKeywords is the topic allow-list applied to every completion.
// Matching is plain substring: an on-topic answer phrased without any listed
// keyword is refused, and an off-topic answer mentioning "cost" passes.
var DefaultAllowKeywords = []string{
	"solar",
	"panel",
	"pv",
	"photovoltaic",
	"payback",
	"kwh",
	"kw",
	"inverter",
	"battery",
	"storage",
	"west java",
	"jawa barat",
	"policy",
	"regulation",
	"subsidy",
	"installation",
	"tariff",
	"energy",
	"savings",
	"invest",
	"investment",
	"capacity",
	"efficiency",
	"irradiance",
	"insolation",
	"system sizing",
	"cost",
	"payback period",
}

// OnTopic reports whether text contains at least one allow-listed keyword,
// case-insensitively. Pure function of its arguments.
func OnTopic(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

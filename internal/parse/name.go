package parse

import (
	"regexp"
	"strings"

	"power-cost-backend/internal/estimate"
)

var spaceRe = regexp.MustCompile(`[\s_\-]+`)

// aliases maps folded spellings onto catalog device names.
var aliases = map[string]string{
	"에어컨":             estimate.AirConditioner,
	"air conditioner": estimate.AirConditioner,
	"airconditioner":  estimate.AirConditioner,
	"aircon":          estimate.AirConditioner,
	"ac":              estimate.AirConditioner,
	"a/c":             estimate.AirConditioner,

	"냉장고":          estimate.Refrigerator,
	"refrigerator": estimate.Refrigerator,
	"fridge":       estimate.Refrigerator,

	"tv":         estimate.TV,
	"티비":         estimate.TV,
	"텔레비전":       estimate.TV,
	"television": estimate.TV,

	"세탁기":             estimate.WashingMachine,
	"washing machine": estimate.WashingMachine,
	"washer":          estimate.WashingMachine,

	"컴퓨터":      estimate.Computer,
	"computer": estimate.Computer,
	"pc":       estimate.Computer,

	"전자레인지":     estimate.Microwave,
	"전자 레인지":    estimate.Microwave,
	"microwave": estimate.Microwave,
}

// DeviceName normalizes raw user input to a catalog device name. The second
// return value reports whether a catalog entry matched; when it is false the
// trimmed input is returned unchanged so it can still be used as free text.
func DeviceName(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if _, ok := estimate.Lookup(s); ok {
		return s, true
	}

	folded := strings.ToLower(spaceRe.ReplaceAllString(s, " "))
	if name, ok := aliases[folded]; ok {
		return name, true
	}
	// "air-conditioner", "Washing_Machine" and friends without separators
	if name, ok := aliases[strings.ReplaceAll(folded, " ", "")]; ok {
		return name, true
	}
	return s, false
}

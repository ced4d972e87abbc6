package report

import "strings"

// Domain abbreviations appended to chart captions.
var abbreviations = map[string]string{
	"BEV":  "Battery Electric Vehicle",
	"PHEV": "Plug-in Hybrid Electric Vehicle",
	"MSRP": "Manufacturer's Suggested Retail Price",
	"CAFV": "Clean Alternative Fuel Vehicle",
	"VIN":  "Vehicle Identification Number",
	"DOL":  "Department of Licensing",
	"EV":   "Electric Vehicle",
	"WA":   "Washington",
}

// abbrExplain formats glossary lines for the given abbreviation keys,
// skipping any it does not know.
func abbrExplain(keys ...string) string {
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		if full, ok := abbreviations[k]; ok {
			lines = append(lines, "**"+k+"**: "+full)
		}
	}
	return strings.Join(lines, "\n")
}

// caption assembles the two-part explanatory caption plus glossary.
func caption(howToRead, insight string, abbrKeys ...string) string {
	return "**How to read:** " + howToRead + "\n**Insight:** " + insight + "\n" + abbrExplain(abbrKeys...)
}

package domain

import "strings"

// Region is one of the fixed geographic buckets of the payroll template.
// The set is closed: the template reserves a row range per region, so new
// regions require a template change, not a data change.
type Region int

const (
	RegionUnknown Region = iota
	RegionRedlands
	RegionFloater
	RegionLancasterPalmdale
	RegionHesperia
)

func (r Region) Label() string {
	switch r {
	case RegionRedlands:
		return "Redlands"
	case RegionFloater:
		return "Floater"
	case RegionLancasterPalmdale:
		return "Lancaster/Palmdale"
	case RegionHesperia:
		return "Hesperia"
	default:
		return "Unknown"
	}
}

// Regions returns the report regions in template order, excluding
// RegionUnknown.
func Regions() []Region {
	return []Region{RegionRedlands, RegionFloater, RegionLancasterPalmdale, RegionHesperia}
}

// regionAliases maps area-name fragments to regions. Checked in order,
// case-insensitively; the misspelling "landcaster" appears in live data.
var regionAliases = []struct {
	alias  string
	region Region
}{
	{"redlands", RegionRedlands},
	{"floater", RegionFloater},
	{"lancaster", RegionLancasterPalmdale},
	{"landcaster", RegionLancasterPalmdale},
	{"palmdale", RegionLancasterPalmdale},
	{"hesperia", RegionHesperia},
}

// ClassifyArea buckets an area name into a region by substring match.
// Names matching no alias classify as RegionUnknown and are excluded from
// the report by the bucketer.
func ClassifyArea(name string) Region {
	v := strings.ToLower(name)
	for _, a := range regionAliases {
		if strings.Contains(v, a.alias) {
			return a.region
		}
	}
	return RegionUnknown
}

package domain

// DayVector holds delivery counts for one assignment indexed
// Sunday(0)..Saturday(6).
type DayVector [7]int

func (v DayVector) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// DriverLine is one written report row: a driver-number label plus that
// number's per-day counts for the week.
type DriverLine struct {
	Number string
	Days   DayVector
}

// BucketDriver is a driver placed in a region bucket, carrying one line
// per active assignment (or a single placeholder line when none are
// active).
type BucketDriver struct {
	Name    string
	Role    Role
	Region  Region
	Manager bool
	Lines   []DriverLine
}

// RegionOutcome reports how a region's fixed row budget was spent. Dropped
// counts lines that did not fit; the report itself stays silent about them.
type RegionOutcome struct {
	Region  Region
	Written int
	Dropped int
}

func (o RegionOutcome) Truncated() bool {
	return o.Dropped > 0
}

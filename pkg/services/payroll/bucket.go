package payroll

import (
	"sort"
	"strings"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
)

// BuildBuckets classifies drivers into regions and orders them for
// writing. Drivers whose area matches no region alias are excluded.
// Within a region, non-managers come first (alphabetical,
// case-insensitive), then managers (alphabetical).
//
// A driver with no active assignments gets a single placeholder line; a
// driver with several gets one line per assignment in assignment-id order,
// which the store already guarantees.
func BuildBuckets(
	drivers []domain.Driver,
	assignments map[string][]domain.Assignment,
	vectors map[string]domain.DayVector,
) map[domain.Region][]domain.BucketDriver {
	buckets := make(map[domain.Region][]domain.BucketDriver)

	for _, d := range drivers {
		region := domain.ClassifyArea(d.AreaName)
		if region == domain.RegionUnknown {
			continue
		}

		active := assignments[d.ID]
		lines := make([]domain.DriverLine, 0, len(active))
		for _, a := range active {
			lines = append(lines, domain.DriverLine{
				Number: a.DisplayNumber(),
				Days:   vectors[a.ID],
			})
		}
		if len(lines) == 0 {
			lines = append(lines, domain.DriverLine{Number: domain.PlaceholderNumber})
		}

		buckets[region] = append(buckets[region], domain.BucketDriver{
			Name:    d.Name,
			Role:    domain.RoleFor(d.Manager, d.Seasonal),
			Region:  region,
			Manager: d.Manager,
			Lines:   lines,
		})
	}

	for region := range buckets {
		bucket := buckets[region]
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].Manager != bucket[j].Manager {
				return !bucket[i].Manager
			}
			return strings.ToLower(bucket[i].Name) < strings.ToLower(bucket[j].Name)
		})
	}

	return buckets
}

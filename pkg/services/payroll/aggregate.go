package payroll

import (
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
)

// BuildDayVectors collapses raw delivery entries into per-assignment day
// vectors. Entries for the same assignment and date accumulate; the zero
// value of DayVector covers assignments with no entries, so callers can
// index the result map without an existence check.
func BuildDayVectors(entries []store.DeliveryRecord) map[string]domain.DayVector {
	vectors := make(map[string]domain.DayVector)
	for _, e := range entries {
		v := vectors[e.AssignmentID]
		v[domain.DayIndex(e.Date)] += e.Deliveries
		vectors[e.AssignmentID] = v
	}
	return vectors
}

package adapters

import (
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
)

func MapStoreDriverToDomain(rec store.DriverRecord) domain.Driver {
	return domain.Driver{
		ID:       rec.ID,
		Name:     rec.FullName,
		Manager:  rec.Manager,
		Seasonal: rec.Seasonal,
		AreaName: rec.AreaName,
	}
}

func MapStoreAssignmentToDomain(rec store.AssignmentRecord) domain.Assignment {
	return domain.Assignment{
		ID:        rec.ID,
		DriverID:  rec.DriverID,
		Numbers:   append([]string(nil), rec.Numbers...),
		WeekStart: rec.WeekStart,
		WeekEnd:   rec.WeekEnd,
	}
}

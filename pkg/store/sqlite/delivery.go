package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
	"github.com/rs/zerolog"
)

type DeliveryStore interface {
	// ListWeek returns delivery entries dated inside the window for the
	// given assignments. Entries are not collapsed; the same assignment
	// and date can appear more than once.
	ListWeek(ctx context.Context, assignmentIDs []string, window domain.WeekWindow) ([]store.DeliveryRecord, error)
}

type deliveryStore struct {
	db *sql.DB
}

func NewDeliveryStore(db *sql.DB) (DeliveryStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &deliveryStore{db: db}, nil
}

func (d *deliveryStore) ListWeek(
	ctx context.Context,
	assignmentIDs []string,
	window domain.WeekWindow,
) ([]store.DeliveryRecord, error) {
	if len(assignmentIDs) == 0 {
		return nil, nil
	}
	logger := zerolog.Ctx(ctx)

	query := fmt.Sprintf(`
		SELECT driver_assignment_id, delivery_date, deliveries
		FROM delivery_entries
		WHERE driver_assignment_id IN (%s)
		  AND delivery_date >= ?
		  AND delivery_date <= ?
		ORDER BY delivery_date`, placeholders(len(assignmentIDs)))

	args := make([]any, 0, len(assignmentIDs)+2)
	for _, id := range assignmentIDs {
		args = append(args, id)
	}
	args = append(args, window.StartISO(), window.EndISO())

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("delivery query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close delivery query rows")
		}
	}(rows)

	var records []store.DeliveryRecord
	for rows.Next() {
		var rec store.DeliveryRecord
		if err := rows.Scan(&rec.AssignmentID, &rec.Date, &rec.Deliveries); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
	"github.com/rs/zerolog"
)

type AssignmentStore interface {
	// ListActive returns assignments overlapping the window for the given
	// drivers, number labels collapsed in position order. Overlap means
	// the assignment started on or before the window's end and either has
	// no end date or ended on or after the window's start.
	ListActive(ctx context.Context, driverIDs []string, window domain.WeekWindow) ([]store.AssignmentRecord, error)
}

type assignmentStore struct {
	db *sql.DB
}

func NewAssignmentStore(db *sql.DB) (AssignmentStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &assignmentStore{db: db}, nil
}

func (a *assignmentStore) ListActive(
	ctx context.Context,
	driverIDs []string,
	window domain.WeekWindow,
) ([]store.AssignmentRecord, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}
	logger := zerolog.Ctx(ctx)

	query := fmt.Sprintf(`
		SELECT a.id, a.driver_id, a.week_start, a.week_end, n.driver_number
		FROM driver_number_assignments a
		LEFT JOIN driver_numbers n ON n.assignment_id = a.id
		WHERE a.driver_id IN (%s)
		  AND a.week_start <= ?
		  AND (a.week_end IS NULL OR a.week_end >= ?)
		ORDER BY a.id, n.position`, placeholders(len(driverIDs)))

	args := make([]any, 0, len(driverIDs)+2)
	for _, id := range driverIDs {
		args = append(args, id)
	}
	args = append(args, window.EndISO(), window.StartISO())

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("assignment query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close assignment query rows")
		}
	}(rows)

	var records []store.AssignmentRecord
	index := map[string]int{}
	for rows.Next() {
		var (
			rec     store.AssignmentRecord
			weekEnd sql.NullTime
			number  sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.DriverID, &rec.WeekStart, &weekEnd, &number); err != nil {
			return nil, err
		}

		if i, ok := index[rec.ID]; ok {
			if number.Valid {
				records[i].Numbers = append(records[i].Numbers, number.String)
			}
			continue
		}

		if weekEnd.Valid {
			end := weekEnd.Time
			rec.WeekEnd = &end
		}
		if number.Valid {
			rec.Numbers = []string{number.String}
		}
		index[rec.ID] = len(records)
		records = append(records, rec)
	}

	return records, rows.Err()
}

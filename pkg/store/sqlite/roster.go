package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
	"github.com/rs/zerolog"
)

type RosterStore interface {
	ListDrivers(ctx context.Context) ([]store.DriverRecord, error)
}

type rosterStore struct {
	db *sql.DB
}

func NewRosterStore(db *sql.DB) (RosterStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &rosterStore{db: db}, nil
}

func (r *rosterStore) ListDrivers(ctx context.Context) ([]store.DriverRecord, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT d.id, d.full_name, d.manager, d.seasonal, COALESCE(a.name, '')
		FROM drivers d
		LEFT JOIN areas a ON a.id = d.area_id
		ORDER BY d.full_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("driver roster query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close roster query rows")
		}
	}(rows)

	var records []store.DriverRecord
	for rows.Next() {
		var (
			rec               store.DriverRecord
			manager, seasonal int
		)
		if err := rows.Scan(&rec.ID, &rec.FullName, &manager, &seasonal, &rec.AreaName); err != nil {
			return nil, err
		}
		rec.Manager = manager == 1
		rec.Seasonal = seasonal == 1
		records = append(records, rec)
	}

	return records, rows.Err()
}

package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/currency-covenant/amg-delivery-logger/pkg/adapters"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
	"github.com/rs/zerolog"
)

// ContentType is the MIME type of the emitted workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RosterStore interface {
	ListDrivers(ctx context.Context) ([]store.DriverRecord, error)
}

type AssignmentStore interface {
	ListActive(ctx context.Context, driverIDs []string, window domain.WeekWindow) ([]store.AssignmentRecord, error)
}

type DeliveryStore interface {
	ListWeek(ctx context.Context, assignmentIDs []string, window domain.WeekWindow) ([]store.DeliveryRecord, error)
}

// TemplateFactory supplies a fresh template per report request; each
// request mutates its own workbook and nothing is shared across requests.
type TemplateFactory func() (*Template, error)

// Report is a generated payroll workbook ready to hand to the caller.
type Report struct {
	Week     domain.WeekWindow
	Filename string
	Data     []byte
	Outcomes []domain.RegionOutcome
}

type Exporter interface {
	// Export builds the weekly payroll report for the week containing
	// weekStart (ISO date, empty or invalid falls back to the current
	// week).
	Export(ctx context.Context, weekStart string) (*Report, error)
}

type exporter struct {
	roster      RosterStore
	assignments AssignmentStore
	deliveries  DeliveryStore
	newTemplate TemplateFactory
	now         func() time.Time
}

type ExporterDeps struct {
	Roster      RosterStore
	Assignments AssignmentStore
	Deliveries  DeliveryStore
	NewTemplate TemplateFactory
	Now         func() time.Time
}

func NewExporter(deps ExporterDeps) (Exporter, error) {
	if deps.Roster == nil || deps.Assignments == nil || deps.Deliveries == nil {
		return nil, fmt.Errorf("exporter requires roster, assignment and delivery stores")
	}
	if deps.NewTemplate == nil {
		deps.NewTemplate = NewDefaultTemplate
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &exporter{
		roster:      deps.Roster,
		assignments: deps.Assignments,
		deliveries:  deps.Deliveries,
		newTemplate: deps.NewTemplate,
		now:         deps.Now,
	}, nil
}

func (e *exporter) Export(ctx context.Context, weekStart string) (*Report, error) {
	logger := zerolog.Ctx(ctx)
	window := ResolveWeek(weekStart, e.now())

	driverRecords, err := e.roster.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver roster: %w", err)
	}

	drivers := make([]domain.Driver, 0, len(driverRecords))
	driverIDs := make([]string, 0, len(driverRecords))
	for _, rec := range driverRecords {
		drivers = append(drivers, adapters.MapStoreDriverToDomain(rec))
		driverIDs = append(driverIDs, rec.ID)
	}

	assignmentRecords, err := e.assignments.ListActive(ctx, driverIDs, window)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assignments: %w", err)
	}

	assignments := make(map[string][]domain.Assignment)
	assignmentIDs := make([]string, 0, len(assignmentRecords))
	for _, rec := range assignmentRecords {
		a := adapters.MapStoreAssignmentToDomain(rec)
		assignments[a.DriverID] = append(assignments[a.DriverID], a)
		assignmentIDs = append(assignmentIDs, a.ID)
	}

	deliveryRecords, err := e.deliveries.ListWeek(ctx, assignmentIDs, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch delivery entries: %w", err)
	}

	vectors := BuildDayVectors(deliveryRecords)
	buckets := BuildBuckets(drivers, assignments, vectors)

	tpl, err := e.newTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll template: %w", err)
	}
	defer func() {
		if err := tpl.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close payroll template")
		}
	}()

	outcomes, err := tpl.WriteBuckets(buckets)
	if err != nil {
		return nil, fmt.Errorf("failed to write payroll rows: %w", err)
	}
	for _, outcome := range outcomes {
		if outcome.Truncated() {
			// The report stays silent about overflow; the log is the only
			// place the drop is visible.
			logger.Warn().
				Str("region", outcome.Region.Label()).
				Int("written", outcome.Written).
				Int("dropped", outcome.Dropped).
				Msg("region row budget exceeded, lines dropped")
		}
	}

	data, err := tpl.Bytes()
	if err != nil {
		return nil, err
	}

	return &Report{
		Week:     window,
		Filename: fmt.Sprintf("weekly_payroll_%s.xlsx", window.StartISO()),
		Data:     data,
		Outcomes: outcomes,
	}, nil
}

package payroll

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type mockRosterStore struct {
	mock.Mock
}

func (m *mockRosterStore) ListDrivers(ctx context.Context) ([]store.DriverRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DriverRecord), args.Error(1)
}

type mockAssignmentStore struct {
	mock.Mock
}

func (m *mockAssignmentStore) ListActive(
	ctx context.Context,
	driverIDs []string,
	window domain.WeekWindow,
) ([]store.AssignmentRecord, error) {
	args := m.Called(ctx, driverIDs, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.AssignmentRecord), args.Error(1)
}

type mockDeliveryStore struct {
	mock.Mock
}

func (m *mockDeliveryStore) ListWeek(
	ctx context.Context,
	assignmentIDs []string,
	window domain.WeekWindow,
) ([]store.DeliveryRecord, error) {
	args := m.Called(ctx, assignmentIDs, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DeliveryRecord), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func newTestExporter(t *testing.T, roster *mockRosterStore, assignments *mockAssignmentStore, deliveries *mockDeliveryStore) Exporter {
	t.Helper()
	exporter, err := NewExporter(ExporterDeps{
		Roster:      roster,
		Assignments: assignments,
		Deliveries:  deliveries,
		Now:         fixedNow,
	})
	require.NoError(t, err)
	return exporter
}

func sheetCell(t *testing.T, data []byte, addr string) string {
	t.Helper()
	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()
	v, err := file.GetCellValue("Payroll", addr)
	require.NoError(t, err)
	return v
}

func TestExporter_EndToEndRow(t *testing.T) {
	weekStart := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	roster := &mockRosterStore{}
	assignments := &mockAssignmentStore{}
	deliveries := &mockDeliveryStore{}

	roster.On("ListDrivers", mock.Anything).Return([]store.DriverRecord{
		{ID: "d1", FullName: "Dana Cruz", AreaName: "Redlands"},
	}, nil)
	assignments.On("ListActive", mock.Anything, []string{"d1"}, mock.Anything).Return([]store.AssignmentRecord{
		{ID: "a1", DriverID: "d1", Numbers: []string{"12"}, WeekStart: weekStart},
	}, nil)
	deliveries.On("ListWeek", mock.Anything, []string{"a1"}, mock.Anything).Return([]store.DeliveryRecord{
		{AssignmentID: "a1", Date: weekStart, Deliveries: 2},
		{AssignmentID: "a1", Date: weekStart.AddDate(0, 0, 1), Deliveries: 3},
		{AssignmentID: "a1", Date: weekStart.AddDate(0, 0, 4), Deliveries: 6},
	}, nil)

	exporter := newTestExporter(t, roster, assignments, deliveries)

	report, err := exporter.Export(context.Background(), "2025-03-05")
	require.NoError(t, err)

	assert.Equal(t, "weekly_payroll_2025-03-02.xlsx", report.Filename)
	assert.Equal(t, weekStart, report.Week.Start)

	assert.Equal(t, "Dana Cruz", sheetCell(t, report.Data, "D6"))
	assert.Equal(t, "12", sheetCell(t, report.Data, "E6"))
	assert.Equal(t, "2", sheetCell(t, report.Data, "F6"))
	assert.Equal(t, "3", sheetCell(t, report.Data, "G6"))
	assert.Equal(t, "6", sheetCell(t, report.Data, "J6"))
	assert.Equal(t, "11", sheetCell(t, report.Data, "M6"))

	roster.AssertExpectations(t)
	assignments.AssertExpectations(t)
	deliveries.AssertExpectations(t)
}

func TestExporter_RosterFailureAbortsRequest(t *testing.T) {
	roster := &mockRosterStore{}
	assignments := &mockAssignmentStore{}
	deliveries := &mockDeliveryStore{}

	roster.On("ListDrivers", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	exporter := newTestExporter(t, roster, assignments, deliveries)

	report, err := exporter.Export(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to load driver roster")
	assert.Contains(t, err.Error(), "connection refused")
	assignments.AssertNotCalled(t, "ListActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestExporter_EmptyRosterStillEmitsWorkbook(t *testing.T) {
	roster := &mockRosterStore{}
	assignments := &mockAssignmentStore{}
	deliveries := &mockDeliveryStore{}

	roster.On("ListDrivers", mock.Anything).Return([]store.DriverRecord{}, nil)
	assignments.On("ListActive", mock.Anything, []string{}, mock.Anything).Return(nil, nil)
	deliveries.On("ListWeek", mock.Anything, []string{}, mock.Anything).Return(nil, nil)

	exporter := newTestExporter(t, roster, assignments, deliveries)

	report, err := exporter.Export(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, report.Data)
	require.Len(t, report.Outcomes, 4)
	for _, outcome := range report.Outcomes {
		assert.Zero(t, outcome.Written)
		assert.Zero(t, outcome.Dropped)
	}
}

func TestExporter_IdempotentCellValues(t *testing.T) {
	weekStart := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	roster := &mockRosterStore{}
	assignments := &mockAssignmentStore{}
	deliveries := &mockDeliveryStore{}

	roster.On("ListDrivers", mock.Anything).Return([]store.DriverRecord{
		{ID: "d1", FullName: "Dana Cruz", AreaName: "Redlands"},
		{ID: "d2", FullName: "Flo Reyes", Seasonal: true, AreaName: "Floater"},
	}, nil)
	assignments.On("ListActive", mock.Anything, mock.Anything, mock.Anything).Return([]store.AssignmentRecord{
		{ID: "a1", DriverID: "d1", Numbers: []string{"12"}, WeekStart: weekStart},
		{ID: "a2", DriverID: "d2", Numbers: []string{"40"}, WeekStart: weekStart},
	}, nil)
	deliveries.On("ListWeek", mock.Anything, mock.Anything, mock.Anything).Return([]store.DeliveryRecord{
		{AssignmentID: "a1", Date: weekStart.AddDate(0, 0, 2), Deliveries: 9},
		{AssignmentID: "a2", Date: weekStart.AddDate(0, 0, 6), Deliveries: 4},
	}, nil)

	exporter := newTestExporter(t, roster, assignments, deliveries)

	first, err := exporter.Export(context.Background(), "2025-03-02")
	require.NoError(t, err)
	second, err := exporter.Export(context.Background(), "2025-03-02")
	require.NoError(t, err)

	// Style internals may differ between serializations; equality is
	// scoped to written cell values.
	for _, addr := range []string{"A6", "D6", "E6", "H6", "M6", "A24", "D24", "E24", "L24", "M24"} {
		assert.Equal(t, sheetCell(t, first.Data, addr), sheetCell(t, second.Data, addr), addr)
	}
	assert.Equal(t, "9", sheetCell(t, first.Data, "H6"))
	assert.Equal(t, "4", sheetCell(t, first.Data, "L24"))
}

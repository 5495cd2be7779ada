package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	report := &payroll.Report{
		Week: domain.WeekWindow{
			Start: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		Filename: "weekly_payroll_2025-03-02.xlsx",
		Data:     []byte("abc"),
		Outcomes: []domain.RegionOutcome{
			{Region: domain.RegionRedlands, Written: 4},
			{Region: domain.RegionHesperia, Written: 7, Dropped: 2},
		},
	}

	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(report))

	out := buf.String()
	assert.Contains(t, out, "Week: 2025-03-02 to 2025-03-08")
	assert.Contains(t, out, "weekly_payroll_2025-03-02.xlsx")
	assert.Contains(t, out, "Redlands")
	assert.Contains(t, out, "Hesperia")
	assert.Contains(t, out, "row budget exceeded")
}

func TestReporter_NilWriterDefaultsToStdout(t *testing.T) {
	reporter := NewReporter(nil)
	assert.NotNil(t, reporter.writer)
}

package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeMonth(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	records := []*Record{
		{Date: "2025-03-03", CheckIn: "2025-03-03T09:00:00Z", CheckOut: "2025-03-03T17:00:00Z"},
		{Date: "2025-03-04", CheckIn: "2025-03-04T09:30:00Z", CheckOut: "2025-03-04T17:30:00Z"},
		{Date: "2025-03-05", Status: RecordedAbsent},
		{Date: "2025-03-06", Status: RecordedOnLeave},
		{Date: "2025-03-07", CheckIn: "2025-03-07T09:05:00Z", CheckOut: "2025-03-07T16:05:00Z"},
	}

	summary, err := SummarizeMonth(records, testPolicy, now)
	assert.NoError(t, err)

	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LeaveDays)

	// (8 + 8 + 7) / 3
	assert.InDelta(t, 7.666, summary.AvgHoursPerDay, 0.001)

	// (2 + 1) / 5 * 100 = 60.0
	assert.Equal(t, 60.0, summary.AttendanceRate)
	assert.Empty(t, summary.Warnings)
}

func TestSummarizeMonthNoDoubleCounting(t *testing.T) {
	// Every day in range has a record; buckets must partition the range.
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	records := []*Record{
		{Date: "2025-03-10", CheckIn: "2025-03-10T09:00:00Z", CheckOut: "2025-03-10T17:00:00Z"},
		{Date: "2025-03-11", CheckIn: "2025-03-11T10:00:00Z", CheckOut: "2025-03-11T18:00:00Z"},
		{Date: "2025-03-12", Status: RecordedAbsent},
		{Date: "2025-03-13", Status: RecordedOnLeave},
	}

	summary, err := SummarizeMonth(records, testPolicy, now)
	assert.NoError(t, err)

	total := summary.PresentDays + summary.LateDays + summary.AbsentDays + summary.LeaveDays
	assert.Equal(t, len(records), total)
}

func TestSummarizeMonthIsolatesMalformedRecords(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	records := []*Record{
		{Date: "2025-03-03", CheckIn: "garbage"},
		{Date: "2025-03-04", CheckIn: "2025-03-04T09:00:00Z", CheckOut: "2025-03-04T17:00:00Z"},
	}

	summary, err := SummarizeMonth(records, testPolicy, now)
	assert.NoError(t, err)

	// The bad day drops out; the rest of the month still aggregates.
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 0, summary.LateDays)
	assert.NotEmpty(t, summary.Warnings)
	assert.Contains(t, summary.Warnings[0], "unparseable check-in")
}

func TestSummarizeMonthSkipsFutureDates(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	records := []*Record{
		{Date: "2025-03-10", CheckIn: "2025-03-10T09:00:00Z", CheckOut: "2025-03-10T17:00:00Z"},
		// Pre-recorded leave later in the month must not count yet.
		{Date: "2025-03-20", Status: RecordedOnLeave},
	}

	summary, err := SummarizeMonth(records, testPolicy, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 0, summary.LeaveDays)
}

func TestSummarizeMonthExcludesOpenSessionFromAverage(t *testing.T) {
	now := time.Date(2025, 3, 11, 13, 0, 0, 0, time.UTC)

	records := []*Record{
		{Date: "2025-03-10", CheckIn: "2025-03-10T09:00:00Z", CheckOut: "2025-03-10T17:00:00Z"},
		// Today, still clocked in: counts as a day but not toward hours.
		{Date: "2025-03-11", CheckIn: "2025-03-11T09:00:00Z"},
	}

	summary, err := SummarizeMonth(records, testPolicy, now)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.PresentDays)
	assert.InDelta(t, 8.0, summary.AvgHoursPerDay, 1e-9)
}

func TestDeriveAttendanceRate(t *testing.T) {
	tests := []struct {
		name                          string
		present, late, absent, leave  int
		expected                      float64
	}{
		{"All present", 20, 0, 0, 0, 100.0},
		{"Mixed", 15, 3, 2, 2, 81.8},
		{"Late counts toward the rate", 0, 10, 0, 0, 100.0},
		{"All absent", 0, 0, 10, 0, 0.0},
		{"No considered days", 0, 0, 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := DeriveAttendanceRate(tt.present, tt.late, tt.absent, tt.leave)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

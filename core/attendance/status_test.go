package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"worksight.com/worksight/utils"
)

var testPolicy = Policy{
	LateThreshold: "09:15",
	Timezone:      "UTC",
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name     string
		rec      *Record
		expected DayStatus
	}{
		{
			name:     "No record",
			rec:      nil,
			expected: StatusNoData,
		},
		{
			name:     "Recorded absent",
			rec:      &Record{Date: "2025-03-10", Status: RecordedAbsent},
			expected: StatusAbsent,
		},
		{
			name:     "Recorded absent wins over punch times",
			rec:      &Record{Date: "2025-03-10", Status: RecordedAbsent, CheckIn: "2025-03-10T09:00:00Z"},
			expected: StatusAbsent,
		},
		{
			name:     "Recorded on leave",
			rec:      &Record{Date: "2025-03-10", Status: RecordedOnLeave},
			expected: StatusOnLeave,
		},
		{
			name:     "Holiday carries no classification",
			rec:      &Record{Date: "2025-03-10", Status: RecordedHoliday},
			expected: StatusNoData,
		},
		{
			name:     "Check-in before threshold",
			rec:      &Record{Date: "2025-03-10", CheckIn: "2025-03-10T09:10:00Z"},
			expected: StatusPresent,
		},
		{
			name:     "Check-in exactly at threshold",
			rec:      &Record{Date: "2025-03-10", CheckIn: "2025-03-10T09:15:00Z"},
			expected: StatusPresent,
		},
		{
			name:     "Check-in one second past threshold",
			rec:      &Record{Date: "2025-03-10", CheckIn: "2025-03-10T09:15:01Z"},
			expected: StatusLate,
		},
		{
			name:     "Check-in well past threshold",
			rec:      &Record{Date: "2025-03-10", CheckIn: "2025-03-10T10:30:00Z"},
			expected: StatusLate,
		},
		{
			name:     "Half day with late check-in",
			rec:      &Record{Date: "2025-03-10", Status: RecordedHalfDay, CheckIn: "2025-03-10T12:00:00Z"},
			expected: StatusLate,
		},
		{
			name:     "Recorded present without punch",
			rec:      &Record{Date: "2025-03-10", Status: RecordedPresent},
			expected: StatusPresent,
		},
		{
			name:     "No status and no punch",
			rec:      &Record{Date: "2025-03-10"},
			expected: StatusNoData,
		},
		{
			name:     "Malformed check-in isolates the day",
			rec:      &Record{Date: "2025-03-10", CheckIn: "not-a-timestamp"},
			expected: StatusNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ClassifyDay(tt.rec, testPolicy)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestClassifyDayOrganizationTimezone(t *testing.T) {
	// 23:10 UTC is 09:10 the next day in UTC+10: on time against a 09:15
	// threshold in organization-local time.
	pol := Policy{LateThreshold: "09:15", Timezone: "Australia/Brisbane"}

	status, err := ClassifyDay(&Record{
		Date:    "2025-03-11",
		CheckIn: "2025-03-10T23:10:00Z",
	}, pol)
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, status)

	status, err = ClassifyDay(&Record{
		Date:    "2025-03-11",
		CheckIn: "2025-03-10T23:20:00Z", // 09:20 local
	}, pol)
	assert.NoError(t, err)
	assert.Equal(t, StatusLate, status)
}

func TestClassifyDayInvalidPolicy(t *testing.T) {
	pol := Policy{LateThreshold: "quarter past nine", Timezone: "UTC"}

	_, err := ClassifyDay(&Record{Date: "2025-03-10", CheckIn: "2025-03-10T09:00:00Z"}, pol)
	assert.Error(t, err)
}

func TestComputeWorkHours(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 20, 0, 0, time.UTC)

	t.Run("Precomputed value wins", func(t *testing.T) {
		rec := &Record{
			Date:      "2025-03-10",
			CheckIn:   "2025-03-10T09:00:00Z",
			CheckOut:  "2025-03-10T17:00:00Z",
			WorkHours: utils.Ptr(7.5),
		}
		hours := ComputeWorkHours(rec, now)
		assert.NotNil(t, hours)
		assert.Equal(t, 7.5, *hours)
	})

	t.Run("Closed session", func(t *testing.T) {
		rec := &Record{
			Date:     "2025-03-10",
			CheckIn:  "2025-03-10T09:10:00Z",
			CheckOut: "2025-03-10T17:10:00Z",
		}
		hours := ComputeWorkHours(rec, now)
		assert.NotNil(t, hours)
		assert.InDelta(t, 8.0, *hours, 1e-9)
	})

	t.Run("Open session runs to now", func(t *testing.T) {
		rec := &Record{
			Date:    "2025-03-10",
			CheckIn: "2025-03-10T09:20:00Z",
		}
		hours := ComputeWorkHours(rec, now)
		assert.NotNil(t, hours)
		assert.InDelta(t, 4.0, *hours, 1e-9)
	})

	t.Run("No check-in", func(t *testing.T) {
		assert.Nil(t, ComputeWorkHours(&Record{Date: "2025-03-10"}, now))
	})

	t.Run("Malformed check-in", func(t *testing.T) {
		assert.Nil(t, ComputeWorkHours(&Record{Date: "2025-03-10", CheckIn: "bogus"}, now))
	})

	t.Run("Nil record", func(t *testing.T) {
		assert.Nil(t, ComputeWorkHours(nil, now))
	})
}

func TestScenarioA(t *testing.T) {
	// checkIn 09:10, checkOut 17:10, threshold 09:15 -> present, 8.0 hours
	rec := &Record{
		Date:     "2025-03-10",
		CheckIn:  "2025-03-10T09:10:00Z",
		CheckOut: "2025-03-10T17:10:00Z",
	}

	status, err := ClassifyDay(rec, testPolicy)
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, status)

	hours := ComputeWorkHours(rec, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))
	assert.NotNil(t, hours)
	assert.InDelta(t, 8.0, *hours, 1e-9)
}

func TestScenarioB(t *testing.T) {
	// checkIn 09:20, no checkout, now 13:20 -> late, running counter 4.0
	rec := &Record{
		Date:    "2025-03-10",
		CheckIn: "2025-03-10T09:20:00Z",
	}

	status, err := ClassifyDay(rec, testPolicy)
	assert.NoError(t, err)
	assert.Equal(t, StatusLate, status)

	now := time.Date(2025, 3, 10, 13, 20, 0, 0, time.UTC)
	hours := ComputeWorkHours(rec, now)
	assert.NotNil(t, hours)
	assert.InDelta(t, 4.0, *hours, 1e-9)
	// The running value is display-only; the record itself stays untouched.
	assert.Nil(t, rec.WorkHours)
}

func TestValidate(t *testing.T) {
	t.Run("Absent with punch times", func(t *testing.T) {
		warnings := Validate(&Record{
			Date:    "2025-03-10",
			Status:  RecordedAbsent,
			CheckIn: "2025-03-10T09:00:00Z",
		})
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "recorded absent")
	})

	t.Run("Check-out before check-in", func(t *testing.T) {
		warnings := Validate(&Record{
			Date:     "2025-03-10",
			CheckIn:  "2025-03-10T17:00:00Z",
			CheckOut: "2025-03-10T09:00:00Z",
		})
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "check-out before check-in")
	})

	t.Run("Clean record", func(t *testing.T) {
		assert.Empty(t, Validate(&Record{
			Date:     "2025-03-10",
			CheckIn:  "2025-03-10T09:00:00Z",
			CheckOut: "2025-03-10T17:00:00Z",
		}))
	})
}

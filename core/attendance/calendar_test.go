package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildMonthGrid(t *testing.T) {
	// March 2025: Saturday the 1st through Monday the 31st.
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	records := []*Record{
		{Date: "2025-03-03", CheckIn: "2025-03-03T09:00:00Z", CheckOut: "2025-03-03T17:00:00Z"},
		{Date: "2025-03-04", CheckIn: "2025-03-04T09:30:00Z"},
	}

	grid, err := BuildMonthGrid(2025, time.March, records, testPolicy, now)
	assert.NoError(t, err)

	// Padded to full weeks: Sun Feb 23 through Sat Apr 5.
	assert.Len(t, grid, 42)
	assert.Equal(t, "2025-02-23", grid[0].Date)
	assert.Equal(t, "2025-04-05", grid[len(grid)-1].Date)
	assert.False(t, grid[0].InMonth)
	assert.True(t, grid[7].InMonth) // Mar 2

	byDate := make(map[string]CalendarDay, len(grid))
	for _, day := range grid {
		byDate[day.Date] = day
	}

	assert.Equal(t, StatusPresent, byDate["2025-03-03"].Status)
	assert.Equal(t, StatusLate, byDate["2025-03-04"].Status)
	assert.Equal(t, StatusNoData, byDate["2025-03-05"].Status)
}

func TestBuildMonthGridFutureDaysUnclassified(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// A record already exists for a future date; it must stay unclassified.
	records := []*Record{
		{Date: "2025-03-20", Status: RecordedOnLeave},
	}

	grid, err := BuildMonthGrid(2025, time.March, records, testPolicy, now)
	assert.NoError(t, err)

	for _, day := range grid {
		if day.Date == "2025-03-20" {
			assert.True(t, day.Future)
			assert.Equal(t, StatusNoData, day.Status)
		}
		if day.Date == "2025-03-10" {
			assert.False(t, day.Future)
		}
	}
}

func TestBuildMonthGridWeeksStartSunday(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	grid, err := BuildMonthGrid(2025, time.June, nil, testPolicy, now)
	assert.NoError(t, err)

	// June 2025 starts on a Sunday and ends on a Monday.
	assert.Equal(t, "2025-06-01", grid[0].Date)
	assert.Equal(t, "2025-07-05", grid[len(grid)-1].Date)
	assert.Equal(t, 0, len(grid)%7)
}

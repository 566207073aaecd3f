package attendance

import (
	"time"

	"worksight.com/worksight/utils"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    string
	InMonth bool
	Future  bool
	Status  DayStatus
}

// BuildMonthGrid produces the day grid for a month, padded to full weeks
// starting Sunday. Future dates are left unclassified regardless of any
// record that may exist for them.
func BuildMonthGrid(year int, month time.Month, records []*Record, pol Policy, now time.Time) ([]CalendarDay, error) {
	loc := pol.Location()

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	byDate := make(map[string]*Record, len(records))
	for _, rec := range records {
		if rec != nil {
			byDate[rec.Date] = rec
		}
	}

	today := now.In(loc).Format(utils.DateLayout)

	var grid []CalendarDay
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		date := d.Format(utils.DateLayout)
		day := CalendarDay{
			Date:    date,
			InMonth: d.Month() == month,
			Future:  date > today,
			Status:  StatusNoData,
		}

		if !day.Future {
			status, err := ClassifyDay(byDate[date], pol)
			if err != nil {
				return nil, err
			}
			day.Status = status
		}

		grid = append(grid, day)
	}

	return grid, nil
}

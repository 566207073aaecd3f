package attendance

import (
	"math"
	"time"

	"worksight.com/worksight/utils"
)

// MonthlySummary is a view-projection over one employee-month. It is
// recomputed on demand and never persisted.
//
// The four day buckets are mutually exclusive: a late day counts toward
// LateDays only, so present+late+absent+leave never exceeds the number of
// days in range. The attendance rate recombines present and late.
type MonthlySummary struct {
	PresentDays    int
	LateDays       int
	AbsentDays     int
	LeaveDays      int
	AvgHoursPerDay float64
	AttendanceRate float64
	Warnings       []string
}

// SummarizeMonth classifies every record and accumulates bucket counts,
// average worked hours and the attendance rate. The caller must pass a
// consistent snapshot of the month's records; now is explicit so the
// derivation stays deterministic. Days after today are never classified.
func SummarizeMonth(records []*Record, pol Policy, now time.Time) (MonthlySummary, error) {
	var summary MonthlySummary

	today := now.In(pol.Location()).Format(utils.DateLayout)

	var hoursTotal float64
	var hoursDays int

	for _, rec := range records {
		if rec == nil {
			continue
		}
		summary.Warnings = append(summary.Warnings, Validate(rec)...)

		if rec.Date > today {
			continue
		}

		status, err := ClassifyDay(rec, pol)
		if err != nil {
			return MonthlySummary{}, err
		}

		switch status {
		case StatusPresent:
			summary.PresentDays++
		case StatusLate:
			summary.LateDays++
		case StatusAbsent:
			summary.AbsentDays++
		case StatusOnLeave:
			summary.LeaveDays++
		}

		if hours := completedWorkHours(rec); hours != nil {
			hoursTotal += *hours
			hoursDays++
		}
	}

	if hoursDays > 0 {
		summary.AvgHoursPerDay = hoursTotal / float64(hoursDays)
	}

	summary.AttendanceRate = DeriveAttendanceRate(
		summary.PresentDays, summary.LateDays, summary.AbsentDays, summary.LeaveDays)

	return summary, nil
}

// DeriveAttendanceRate returns (present+late)/total as a percentage rounded
// to one decimal place. Total is the days with any classified record; with
// no considered days the rate is 0.
func DeriveAttendanceRate(presentDays, lateDays, absentDays, leaveDays int) float64 {
	total := presentDays + lateDays + absentDays + leaveDays
	if total == 0 {
		return 0
	}
	rate := float64(presentDays+lateDays) / float64(total) * 100
	return math.Round(rate*10) / 10
}

package attendance

import (
	"fmt"
	"time"

	"worksight.com/worksight/utils"
)

// DayStatus is the derived classification for one employee day.
type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusLate    DayStatus = "late"
	StatusAbsent  DayStatus = "absent"
	StatusOnLeave DayStatus = "on_leave"
	StatusNoData  DayStatus = "no_data"
)

// Recorded statuses as set by the backend/admin. The recorded status is
// authoritative: a contradictory timestamp never overrides it.
const (
	RecordedPresent = "present"
	RecordedAbsent  = "absent"
	RecordedOnLeave = "on_leave"
	RecordedHalfDay = "half_day"
	RecordedHoliday = "holiday"
)

// Record is one raw attendance record for one employee on one calendar day.
// Timestamps are carried as strings straight off the wire; parsing failures
// are isolated per record rather than aborting a whole derivation pass.
type Record struct {
	EmployeeID int32
	Date       string // yyyy-MM-dd
	CheckIn    string // RFC3339, empty when not checked in
	CheckOut   string // RFC3339, empty for an open session
	Status     string // recorded status, empty when not yet determined
	WorkHours  *float64
}

// ClassifyDay derives the display status for a single day.
//
// The recorded status wins for absent/on_leave. Holiday records carry no
// classification. Otherwise the check-in's time-of-day, normalized to the
// organization timezone, is compared against the late threshold with
// strict-greater semantics: a check-in at exactly the threshold is present.
//
// An unparseable check-in classifies the day as no_data so one bad record
// never poisons a month. The only error path is an invalid policy, which is
// a caller contract violation and surfaced immediately.
func ClassifyDay(rec *Record, pol Policy) (DayStatus, error) {
	if rec == nil {
		return StatusNoData, nil
	}

	switch rec.Status {
	case RecordedAbsent:
		return StatusAbsent, nil
	case RecordedOnLeave:
		return StatusOnLeave, nil
	case RecordedHoliday:
		return StatusNoData, nil
	}

	if rec.CheckIn == "" {
		// Admin marked the day without a punch.
		if rec.Status == RecordedPresent || rec.Status == RecordedHalfDay {
			return StatusPresent, nil
		}
		return StatusNoData, nil
	}

	checkIn, err := utils.ParseISOTime(rec.CheckIn)
	if err != nil {
		return StatusNoData, nil
	}

	loc := pol.Location()
	local := checkIn.In(loc)

	dateBase := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	threshold, err := utils.ParseTimeOnDate(dateBase, pol.LateThreshold)
	if err != nil {
		return StatusNoData, fmt.Errorf("invalid late threshold %q: %w", pol.LateThreshold, err)
	}

	if local.After(threshold) {
		return StatusLate, nil
	}
	return StatusPresent, nil
}

// ComputeWorkHours returns the worked hours for a record, or nil when there
// is nothing to measure. A precomputed value always wins. For an open
// session (check-in without check-out) the duration runs up to now — that
// value is display-only and must never be written back to the record.
func ComputeWorkHours(rec *Record, now time.Time) *float64 {
	if rec == nil {
		return nil
	}
	if rec.WorkHours != nil {
		return rec.WorkHours
	}
	if rec.CheckIn == "" {
		return nil
	}

	checkIn, err := utils.ParseISOTime(rec.CheckIn)
	if err != nil {
		return nil
	}

	if rec.CheckOut != "" {
		checkOut, err := utils.ParseISOTime(rec.CheckOut)
		if err != nil {
			return nil
		}
		return utils.Ptr(checkOut.Sub(*checkIn).Hours())
	}

	// Open session: running counter.
	return utils.Ptr(now.Sub(*checkIn).Hours())
}

// completedWorkHours is ComputeWorkHours without the running counter, so
// aggregates never mix a half-finished session into an average.
func completedWorkHours(rec *Record) *float64 {
	if rec == nil {
		return nil
	}
	if rec.WorkHours != nil {
		return rec.WorkHours
	}
	if rec.CheckIn == "" || rec.CheckOut == "" {
		return nil
	}
	checkIn, err := utils.ParseISOTime(rec.CheckIn)
	if err != nil {
		return nil
	}
	checkOut, err := utils.ParseISOTime(rec.CheckOut)
	if err != nil {
		return nil
	}
	return utils.Ptr(checkOut.Sub(*checkIn).Hours())
}

// Validate reports data-quality problems the engine tolerates but the
// caller should log or display.
func Validate(rec *Record) []string {
	if rec == nil {
		return nil
	}

	var warnings []string

	if rec.Status == RecordedAbsent && (rec.CheckIn != "" || rec.CheckOut != "") {
		warnings = append(warnings, fmt.Sprintf("%s: recorded absent but has punch times", rec.Date))
	}

	if rec.CheckIn != "" {
		if _, err := utils.ParseISOTime(rec.CheckIn); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: unparseable check-in %q", rec.Date, rec.CheckIn))
		}
	}
	if rec.CheckOut != "" {
		if _, err := utils.ParseISOTime(rec.CheckOut); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: unparseable check-out %q", rec.Date, rec.CheckOut))
		}
	}

	if rec.CheckIn != "" && rec.CheckOut != "" {
		in, errIn := utils.ParseISOTime(rec.CheckIn)
		out, errOut := utils.ParseISOTime(rec.CheckOut)
		if errIn == nil && errOut == nil && out.Before(*in) {
			warnings = append(warnings, fmt.Sprintf("%s: check-out before check-in", rec.Date))
		}
	}

	return warnings
}

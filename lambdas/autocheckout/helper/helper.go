package helper

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	engine "worksight.com/worksight/core/attendance"
	"worksight.com/worksight/models"
	"worksight.com/worksight/utils"
)

// CloseAfter decides whether an open session has outlived the
// organization's auto-checkout window. When it has, the returned instant
// is the synthetic checkout time (check-in plus the window), never "now",
// so a forgotten punch does not inflate hours.
func CloseAfter(checkIn string, autoCheckoutHours float64, now time.Time) (*time.Time, error) {
	if autoCheckoutHours <= 0 {
		return nil, fmt.Errorf("invalid auto-checkout window: %v", autoCheckoutHours)
	}

	start, err := utils.ParseISOTime(checkIn)
	if err != nil {
		return nil, fmt.Errorf("parse check-in: %w", err)
	}

	deadline := start.Add(time.Duration(autoCheckoutHours * float64(time.Hour)))
	if now.Before(deadline) {
		return nil, nil
	}
	return &deadline, nil
}

type Stats struct {
	Scanned int `json:"scanned"`
	Closed  int `json:"closed"`
	Skipped int `json:"skipped"`
}

// CloseOpenSessions walks every organization in the tenant schema and
// force-closes the sessions that exceeded the policy window.
func CloseOpenSessions(db *gorm.DB, now time.Time, dryRun bool) (Stats, error) {
	var stats Stats

	var orgs []models.Organization
	if err := db.Find(&orgs).Error; err != nil {
		return stats, fmt.Errorf("fetch organizations: %w", err)
	}

	for _, org := range orgs {
		var open []models.AttendanceRecord
		if err := db.
			Where("organization_id = ? AND check_in <> '' AND check_out = ''", org.ID).
			Find(&open).Error; err != nil {
			return stats, fmt.Errorf("fetch open sessions for organization %d: %w", org.ID, err)
		}

		stats.Scanned += len(open)

		for _, record := range open {
			closeAt, err := CloseAfter(record.CheckIn, org.AutoCheckoutHours, now)
			if err != nil {
				// A malformed check-in stays open for an admin to correct.
				fmt.Printf("[WARN] record %s: %v\n", record.ID, err)
				stats.Skipped++
				continue
			}
			if closeAt == nil {
				stats.Skipped++
				continue
			}

			record.CheckOut = closeAt.Format(time.RFC3339)
			snapshot := &engine.Record{
				EmployeeID: record.EmployeeID,
				Date:       record.Date,
				CheckIn:    record.CheckIn,
				CheckOut:   record.CheckOut,
				Status:     record.Status,
			}
			record.WorkHours = engine.ComputeWorkHours(snapshot, now)

			if dryRun {
				stats.Closed++
				continue
			}

			if err := db.Model(&models.AttendanceRecord{}).
				Where("id = ?", record.ID).
				Updates(map[string]interface{}{
					"check_out":  record.CheckOut,
					"work_hours": record.WorkHours,
				}).Error; err != nil {
				return stats, fmt.Errorf("close record %s: %w", record.ID, err)
			}
			stats.Closed++
		}
	}

	return stats, nil
}

package core

import (
	"worksight.com/worksight/core/attendance"
	"worksight.com/worksight/models"
	"worksight.com/worksight/utils"
)

// PolicyFor extracts the derivation policy from an organization row.
func PolicyFor(org *models.Organization) attendance.Policy {
	return attendance.Policy{
		LateThreshold:           org.LateThreshold,
		GracePeriodMinutes:      org.GracePeriodMinutes,
		HalfDayThresholdMinutes: org.HalfDayThresholdMinutes,
		AutoCheckoutHours:       org.AutoCheckoutHours,
		Timezone:                org.Timezone,
	}
}

// EngineRecords snapshots attendance rows into engine records. The engines
// require a consistent snapshot per derivation pass; this copies rather
// than aliasing the live slice.
func EngineRecords(rows []models.AttendanceRecord) []*attendance.Record {
	return utils.Map(rows, func(row models.AttendanceRecord) *attendance.Record {
		return &attendance.Record{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			CheckIn:    row.CheckIn,
			CheckOut:   row.CheckOut,
			Status:     row.Status,
			WorkHours:  row.WorkHours,
		}
	})
}

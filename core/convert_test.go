package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worksight.com/worksight/models"
	"worksight.com/worksight/utils"
)

func TestPolicyFor(t *testing.T) {
	org := &models.Organization{
		LateThreshold:           "09:30",
		GracePeriodMinutes:      5,
		HalfDayThresholdMinutes: 240,
		AutoCheckoutHours:       10,
		Timezone:                "Australia/Brisbane",
	}

	pol := PolicyFor(org)
	assert.Equal(t, "09:30", pol.LateThreshold)
	assert.Equal(t, int32(5), pol.GracePeriodMinutes)
	assert.Equal(t, 10.0, pol.AutoCheckoutHours)
	assert.Equal(t, "Australia/Brisbane", pol.Location().String())
}

func TestEngineRecordsSnapshots(t *testing.T) {
	rows := []models.AttendanceRecord{
		{EmployeeID: 7, Date: "2025-03-10", CheckIn: "2025-03-10T09:00:00Z", WorkHours: utils.Ptr(8.0)},
		{EmployeeID: 8, Date: "2025-03-10", Status: models.AttendanceAbsent},
	}

	records := EngineRecords(rows)
	assert.Len(t, records, 2)
	assert.Equal(t, int32(7), records[0].EmployeeID)
	assert.Equal(t, 8.0, *records[0].WorkHours)
	assert.Equal(t, models.AttendanceAbsent, records[1].Status)

	// mutating the snapshot must not touch the source row
	records[0].CheckIn = "garbage"
	assert.Equal(t, "2025-03-10T09:00:00Z", rows[0].CheckIn)
}

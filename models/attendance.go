package models

import "time"

// Attendance statuses as recorded by the backend/admin. Empty means not
// yet determined.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceOnLeave = "on_leave"
	AttendanceHalfDay = "half_day"
	AttendanceHoliday = "holiday"
)

// AttendanceRecord is one employee-day. CheckIn/CheckOut are kept as the
// RFC3339 strings the devices push; the derivation engine owns parsing so
// a malformed punch degrades one day, not the whole table.
type AttendanceRecord struct {
	ID             string `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	OrganizationID int32  `gorm:"column:organization_id;not null;index" json:"organizationId"`
	EmployeeID     int32  `gorm:"column:employee_id;not null;uniqueIndex:idx_employee_date,priority:1" json:"employeeId"`
	Date           string `gorm:"column:date;type:varchar(10);not null;uniqueIndex:idx_employee_date,priority:2;index" json:"date"`

	CheckIn  string `gorm:"column:check_in;type:varchar(40)" json:"checkIn"`
	CheckOut string `gorm:"column:check_out;type:varchar(40)" json:"checkOut"`
	Status   string `gorm:"column:status;type:varchar(20)" json:"status"`

	WorkHours *float64 `gorm:"column:work_hours;type:decimal(5,2)" json:"workHours"`

	Photo    *string `gorm:"column:photo;type:varchar(500)" json:"photo"`
	DeviceID *string `gorm:"column:device_id;type:varchar(100)" json:"deviceId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

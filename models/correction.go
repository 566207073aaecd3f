package models

import "time"

const (
	CorrectionPending  = "pending"
	CorrectionApproved = "approved"
	CorrectionRejected = "rejected"
)

// CorrectionRequest asks an admin to fix the punch times on an attendance
// record. Approving one updates the record; the derivation engine picks up
// the corrected times on the next pass.
type CorrectionRequest struct {
	ID                 int32   `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID     int32   `gorm:"column:organization_id;not null;index" json:"organizationId"`
	AttendanceRecordID string  `gorm:"column:attendance_record_id;type:varchar(36);not null;index" json:"attendanceRecordId"`
	RequestedCheckIn   *string `gorm:"column:requested_check_in;type:varchar(40)" json:"requestedCheckIn"`
	RequestedCheckOut  *string `gorm:"column:requested_check_out;type:varchar(40)" json:"requestedCheckOut"`
	Reason             string  `gorm:"column:reason;type:varchar(500);not null" json:"reason"`
	Status             string  `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	ReviewerID         *int32  `gorm:"column:reviewer_id" json:"reviewerId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`

	AttendanceRecord *AttendanceRecord `gorm:"foreignKey:AttendanceRecordID" json:"attendanceRecord,omitempty"`
}

func (CorrectionRequest) TableName() string {
	return "correction_requests"
}

package models

import "time"

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

type LeaveRequest struct {
	ID             int32   `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID int32   `gorm:"column:organization_id;not null;index" json:"organizationId"`
	EmployeeID     int32   `gorm:"column:employee_id;not null;index" json:"employeeId"`
	StartDate      string  `gorm:"column:start_date;type:varchar(10);not null" json:"startDate"`
	EndDate        string  `gorm:"column:end_date;type:varchar(10);not null" json:"endDate"`
	Type           string  `gorm:"column:type;type:varchar(50);not null" json:"type"`
	Reason         *string `gorm:"column:reason;type:varchar(500)" json:"reason"`
	Status         string  `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	ApproverID     *int32  `gorm:"column:approver_id" json:"approverId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

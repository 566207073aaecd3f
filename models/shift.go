package models

import "time"

// Shift defines scheduled working hours. Start and Finish are clock
// strings ("08:00") interpreted in the organization timezone.
type Shift struct {
	ID             int32  `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID int32  `gorm:"column:organization_id;not null;index" json:"organizationId"`
	Name           string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Start          string `gorm:"column:start;type:varchar(8);not null" json:"start"`
	Finish         string `gorm:"column:finish;type:varchar(8);not null" json:"finish"`
	BreakMinutes   int32  `gorm:"column:break_minutes;not null;default:0" json:"breakMinutes"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Shift) TableName() string {
	return "shifts"
}

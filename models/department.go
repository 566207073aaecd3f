package models

import "time"

type Department struct {
	ID             int32  `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID int32  `gorm:"column:organization_id;not null;index" json:"organizationId"`
	Name           string `gorm:"column:name;type:varchar(200);not null" json:"name"`
	ManagerID      *int32 `gorm:"column:manager_id" json:"managerId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Department) TableName() string {
	return "departments"
}

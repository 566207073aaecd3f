package models

import "time"

type Location struct {
	ID             int32   `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID int32   `gorm:"column:organization_id;not null;index" json:"organizationId"`
	Name           string  `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Address        *string `gorm:"column:address;type:varchar(500)" json:"address"`
	Timezone       *string `gorm:"column:timezone;type:varchar(64)" json:"timezone"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Location) TableName() string {
	return "locations"
}

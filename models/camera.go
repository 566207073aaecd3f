package models

import "time"

type Camera struct {
	ID             int32   `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID int32   `gorm:"column:organization_id;not null;index" json:"organizationId"`
	LocationID     *int32  `gorm:"column:location_id;index" json:"locationId"`
	Name           string  `gorm:"column:name;type:varchar(200);not null" json:"name"`
	StreamURL      *string `gorm:"column:stream_url;type:varchar(500)" json:"streamUrl"`
	Active         bool    `gorm:"column:active;not null;default:true" json:"active"`
	LastSeenAt     *time.Time `gorm:"column:last_seen_at" json:"lastSeenAt"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`

	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Camera) TableName() string {
	return "cameras"
}

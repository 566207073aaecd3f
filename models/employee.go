package models

import (
	"time"

	"gorm.io/datatypes"
)

type Employee struct {
	ID                int32   `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID    int32   `gorm:"column:organization_id;not null;index" json:"organizationId"`
	Code              string  `gorm:"column:code;type:varchar(50);uniqueIndex" json:"code"`
	FirstName         string  `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	Surname           string  `gorm:"column:surname;type:varchar(100);not null" json:"surname"`
	Email             *string `gorm:"column:email;type:varchar(255);index" json:"email"`
	Picture           *string `gorm:"column:picture;type:varchar(500)" json:"picture"`
	IdentificationTag *string `gorm:"column:identification_tag;type:varchar(100);index" json:"identificationTag"`
	Status            string  `gorm:"column:status;type:varchar(20);not null;default:active" json:"status"`

	DepartmentID *int32 `gorm:"column:department_id" json:"departmentId"`
	LocationID   *int32 `gorm:"column:location_id" json:"locationId"`
	ShiftID      *int32 `gorm:"column:shift_id" json:"shiftId"`
	ReportsToID  *int32 `gorm:"column:reports_to_id" json:"reportsToId"`

	Attributes datatypes.JSON `gorm:"column:attributes" json:"attributes"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Location   *Location   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Shift      *Shift      `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

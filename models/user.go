package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// User is a dashboard login, distinct from Employee (not every employee
// has a login, and admins may not be employees).
type User struct {
	ID             int32   `gorm:"primaryKey;column:id" json:"id"`
	OrganizationID int32   `gorm:"column:organization_id;not null;index" json:"organizationId"`
	Email          string  `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName       string  `gorm:"column:full_name;type:varchar(200);not null" json:"fullName"`
	PasswordHash   string  `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	Role           Role    `gorm:"column:role;type:varchar(20);not null;default:employee" json:"role"`
	EmployeeID     *int32  `gorm:"column:employee_id" json:"employeeId"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanManageAttendance() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}

package core

import (
	"gorm.io/gorm"

	"worksight.com/worksight/models"
)

// Migrate brings a tenant schema up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Department{},
		&models.Location{},
		&models.Shift{},
		&models.Camera{},
		&models.Employee{},
		&models.AttendanceRecord{},
		&models.LeaveRequest{},
		&models.CorrectionRequest{},
	)
}

package attendance

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"worksight.com/worksight/core"
	engine "worksight.com/worksight/core/attendance"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}

	r.POST("/attendance/checkin", endpoint.CheckIn)
	r.POST("/attendance/checkout", endpoint.CheckOut)
	r.POST("/attendance/search", endpoint.Search)
	r.GET("/employees/:id/attendance/calendar", endpoint.Calendar)
	r.GET("/employees/:id/attendance/summary", endpoint.Summary)
	r.POST("/attendance/export", endpoint.Export)

	r.GET("/leaves", endpoint.ListLeaves)
	r.POST("/leaves", endpoint.CreateLeave)
	r.PUT("/leaves/:id/decision", endpoint.DecideLeave)

	r.GET("/corrections", endpoint.ListCorrections)
	r.POST("/corrections", endpoint.CreateCorrection)
	r.PUT("/corrections/:id/decision", endpoint.DecideCorrection)
}

// loadPolicy reads the organization an employee belongs to and extracts
// the derivation policy. Every attendance operation runs under the
// employee's own organization settings.
func loadPolicy(db *gorm.DB, employeeID int32) (*models.Employee, engine.Policy, error) {
	var employee models.Employee
	if err := db.First(&employee, employeeID).Error; err != nil {
		return nil, engine.Policy{}, fmt.Errorf("employee %d: %w", employeeID, err)
	}

	var org models.Organization
	if err := db.First(&org, employee.OrganizationID).Error; err != nil {
		return nil, engine.Policy{}, fmt.Errorf("organization %d: %w", employee.OrganizationID, err)
	}

	return &employee, core.PolicyFor(&org), nil
}

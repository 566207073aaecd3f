package attendance

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	engine "worksight.com/worksight/core/attendance"
	"worksight.com/worksight/models"
	"worksight.com/worksight/utils"
	"worksight.com/worksight/web/common"
)

type CheckInDTO struct {
	EmployeeID int32   `json:"employeeId" binding:"required"`
	Timestamp  *string `json:"timestamp,omitempty"`
	Photo      *string `json:"photo,omitempty"`
	DeviceID   *string `json:"deviceId,omitempty"`
}

type CheckOutDTO struct {
	EmployeeID int32   `json:"employeeId" binding:"required"`
	Timestamp  *string `json:"timestamp,omitempty"`
}

// punchTime resolves the effective punch instant. Devices may push a
// timestamp taken at the door; a missing one means "now".
func punchTime(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		return time.Now().UTC(), nil
	}
	t, err := utils.ParseISOTime(*raw)
	if err != nil {
		return time.Time{}, err
	}
	return *t, nil
}

func (ep *Endpoint) CheckIn(c *gin.Context) {
	var body CheckInDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	punchedAt, err := punchTime(body.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid timestamp"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	employee, pol, err := loadPolicy(db, body.EmployeeID)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
		return
	}

	// The employee-day a punch belongs to is determined in the
	// organization timezone, not the server's.
	date := punchedAt.In(pol.Location()).Format(utils.DateLayout)

	var existing models.AttendanceRecord
	err = db.Where("employee_id = ? AND date = ?", employee.ID, date).First(&existing).Error
	if err == nil {
		if existing.CheckIn != "" {
			c.JSON(http.StatusConflict, common.NewErrorResponse("Already checked in for "+date))
			return
		}
		existing.CheckIn = punchedAt.Format(time.RFC3339)
		if body.Photo != nil {
			existing.Photo = body.Photo
		}
		if body.DeviceID != nil {
			existing.DeviceID = body.DeviceID
		}
		if err := db.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(existing))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	record := models.AttendanceRecord{
		ID:             uuid.NewString(),
		OrganizationID: employee.OrganizationID,
		EmployeeID:     employee.ID,
		Date:           date,
		CheckIn:        punchedAt.Format(time.RFC3339),
		Photo:          body.Photo,
		DeviceID:       body.DeviceID,
	}

	if err := db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(record))
}

func (ep *Endpoint) CheckOut(c *gin.Context) {
	var body CheckOutDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	punchedAt, err := punchTime(body.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid timestamp"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	employee, pol, err := loadPolicy(db, body.EmployeeID)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
		return
	}

	date := punchedAt.In(pol.Location()).Format(utils.DateLayout)

	var record models.AttendanceRecord
	if err := db.Where("employee_id = ? AND date = ?", employee.ID, date).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No check-in found for "+date))
		return
	}
	if record.CheckIn == "" {
		c.JSON(http.StatusConflict, common.NewErrorResponse("No check-in found for "+date))
		return
	}
	if record.CheckOut != "" {
		c.JSON(http.StatusConflict, common.NewErrorResponse("Already checked out for "+date))
		return
	}

	record.CheckOut = punchedAt.Format(time.RFC3339)

	snapshot := &engine.Record{
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		CheckIn:    record.CheckIn,
		CheckOut:   record.CheckOut,
		Status:     record.Status,
	}
	record.WorkHours = engine.ComputeWorkHours(snapshot, punchedAt)

	if err := db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}

package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	engine "worksight.com/worksight/core/attendance"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type CorrectionCreateDTO struct {
	AttendanceRecordID string  `json:"attendanceRecordId" binding:"required,uuid"`
	RequestedCheckIn   *string `json:"requestedCheckIn,omitempty"`
	RequestedCheckOut  *string `json:"requestedCheckOut,omitempty"`
	Reason             string  `json:"reason" binding:"required"`
}

type CorrectionDecisionDTO struct {
	Decision   string `json:"decision" binding:"required,oneof=approved rejected"`
	ReviewerID *int32 `json:"reviewerId,omitempty"`
}

func (ep *Endpoint) ListCorrections(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	query := db.Model(&models.CorrectionRequest{}).Preload("AttendanceRecord")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var corrections []models.CorrectionRequest
	if err := query.Order("created_at DESC").Find(&corrections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(corrections))
}

func (ep *Endpoint) CreateCorrection(c *gin.Context) {
	var body CorrectionCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if body.RequestedCheckIn == nil && body.RequestedCheckOut == nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Nothing to correct"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var record models.AttendanceRecord
	if err := db.First(&record, "id = ?", body.AttendanceRecordID).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Attendance record not found"))
		return
	}

	correction := models.CorrectionRequest{
		OrganizationID:     record.OrganizationID,
		AttendanceRecordID: record.ID,
		RequestedCheckIn:   body.RequestedCheckIn,
		RequestedCheckOut:  body.RequestedCheckOut,
		Reason:             body.Reason,
		Status:             models.CorrectionPending,
	}

	if err := db.Create(&correction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(correction))
}

func (ep *Endpoint) DecideCorrection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body CorrectionDecisionDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var correction models.CorrectionRequest
	if err := db.First(&correction, id).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Correction request not found"))
		return
	}
	if correction.Status != models.CorrectionPending {
		c.JSON(http.StatusConflict, common.NewErrorResponse("Correction request already decided"))
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		correction.Status = body.Decision
		correction.ReviewerID = body.ReviewerID
		if err := tx.Save(&correction).Error; err != nil {
			return err
		}

		if body.Decision != models.CorrectionApproved {
			return nil
		}
		return applyCorrection(tx, &correction)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(correction))
}

// applyCorrection rewrites the punch times on the record and recomputes
// the stored work hours from the corrected pair.
func applyCorrection(tx *gorm.DB, correction *models.CorrectionRequest) error {
	var record models.AttendanceRecord
	if err := tx.First(&record, "id = ?", correction.AttendanceRecordID).Error; err != nil {
		return err
	}

	if correction.RequestedCheckIn != nil {
		record.CheckIn = *correction.RequestedCheckIn
	}
	if correction.RequestedCheckOut != nil {
		record.CheckOut = *correction.RequestedCheckOut
	}

	snapshot := &engine.Record{
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		CheckIn:    record.CheckIn,
		CheckOut:   record.CheckOut,
		Status:     record.Status,
	}
	record.WorkHours = engine.ComputeWorkHours(snapshot, time.Now().UTC())

	return tx.Save(&record).Error
}

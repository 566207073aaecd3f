package attendance

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"worksight.com/worksight/infrastructure/communication"
	"worksight.com/worksight/models"
	"worksight.com/worksight/utils"
	"worksight.com/worksight/web/common"
)

type LeaveCreateDTO struct {
	EmployeeID int32   `json:"employeeId" binding:"required"`
	StartDate  string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string  `json:"endDate" binding:"required,datetime=2006-01-02"`
	Type       string  `json:"type" binding:"required"`
	Reason     *string `json:"reason,omitempty"`
}

type LeaveDecisionDTO struct {
	Decision   string `json:"decision" binding:"required,oneof=approved rejected"`
	ApproverID *int32 `json:"approverId,omitempty"`
}

func (ep *Endpoint) ListLeaves(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	query := db.Model(&models.LeaveRequest{}).Preload("Employee")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if val, err := strconv.Atoi(c.Query("employeeId")); err == nil {
		query = query.Where("employee_id = ?", val)
	}

	var leaves []models.LeaveRequest
	if err := query.Order("start_date DESC").Find(&leaves).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(leaves))
}

func (ep *Endpoint) CreateLeave(c *gin.Context) {
	var body LeaveCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if body.EndDate < body.StartDate {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("endDate must not be before startDate"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	employee, _, err := loadPolicy(db, body.EmployeeID)
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
		return
	}

	leave := models.LeaveRequest{
		OrganizationID: employee.OrganizationID,
		EmployeeID:     employee.ID,
		StartDate:      body.StartDate,
		EndDate:        body.EndDate,
		Type:           body.Type,
		Reason:         body.Reason,
		Status:         models.LeavePending,
	}

	if err := db.Create(&leave).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(leave))
}

func (ep *Endpoint) DecideLeave(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body LeaveDecisionDTO
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

	var leave models.LeaveRequest
	if err := db.Preload("Employee").First(&leave, id).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Leave request not found"))
		return
	}
	if leave.Status != models.LeavePending {
		c.JSON(http.StatusConflict, common.NewErrorResponse("Leave request already decided"))
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		leave.Status = body.Decision
		leave.ApproverID = body.ApproverID
		if err := tx.Save(&leave).Error; err != nil {
			return err
		}

		if body.Decision == models.LeaveApproved {
			return markLeaveDays(tx, &leave)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	notifyLeaveDecision(c, &leave)

	c.JSON(http.StatusOK, common.NewSuccessResponse(leave))
}

// markLeaveDays upserts one attendance record per day of the approved
// range with the on_leave status. Leave overrides any punches already
// recorded on those days.
func markLeaveDays(tx *gorm.DB, leave *models.LeaveRequest) error {
	start, err := time.Parse(utils.DateLayout, leave.StartDate)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	end, err := time.Parse(utils.DateLayout, leave.EndDate)
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}

	var days []models.AttendanceRecord
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, models.AttendanceRecord{
			ID:             uuid.NewString(),
			OrganizationID: leave.OrganizationID,
			EmployeeID:     leave.EmployeeID,
			Date:           d.Format(utils.DateLayout),
			Status:         models.AttendanceOnLeave,
		})
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).CreateInBatches(days, 100).Error
}

// notifyLeaveDecision emails the employee, best effort. A failed email
// never fails the decision.
func notifyLeaveDecision(c *gin.Context, leave *models.LeaveRequest) {
	if leave.Employee == nil || leave.Employee.Email == nil {
		return
	}

	from := os.Getenv("WORKSIGHT_EMAIL_FROM")
	if from == "" {
		return
	}

	subject := fmt.Sprintf("Leave request %s", leave.Status)
	text := fmt.Sprintf("Your %s leave request for %s to %s has been %s.",
		leave.Type, leave.StartDate, leave.EndDate, leave.Status)

	if err := communication.SendEmail(c.Request.Context(), from, []string{*leave.Employee.Email}, subject, text); err != nil {
		fmt.Printf("[WARN] leave decision email for request %d: %v\n", leave.ID, err)
	}
}

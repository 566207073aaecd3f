package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"worksight.com/worksight/core"
	engine "worksight.com/worksight/core/attendance"
	"worksight.com/worksight/models"
	"worksight.com/worksight/utils"
	"worksight.com/worksight/web/common"
)

// yearMonth pulls year/month query params, defaulting to the current
// month in the given timezone.
func yearMonth(c *gin.Context, loc *time.Location) (int, time.Month) {
	now := time.Now().In(loc)
	year := now.Year()
	month := now.Month()

	if val, err := strconv.Atoi(c.Query("year")); err == nil {
		year = val
	}
	if val, err := strconv.Atoi(c.Query("month")); err == nil && val >= 1 && val <= 12 {
		month = time.Month(val)
	}
	return year, month
}

// monthRecords loads one employee's records covering the month plus the
// grid padding days either side.
func monthRecords(db *gorm.DB, employeeID int32, year int, month time.Month) ([]models.AttendanceRecord, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var rows []models.AttendanceRecord
	err := db.
		Where("employee_id = ? AND date >= ? AND date <= ?",
			employeeID,
			first.AddDate(0, 0, -6).Format(utils.DateLayout),
			last.AddDate(0, 0, 6).Format(utils.DateLayout)).
		Order("date").
		Find(&rows).Error
	return rows, err
}

func (ep *Endpoint) Calendar(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid employee id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	_, pol, err := loadPolicy(db, int32(employeeID))
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
		return
	}

	year, month := yearMonth(c, pol.Location())

	rows, err := monthRecords(db, int32(employeeID), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	grid, err := engine.BuildMonthGrid(year, month, core.EngineRecords(rows), pol, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"year":  year,
		"month": int(month),
		"days":  grid,
	}))
}

func (ep *Endpoint) Summary(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid employee id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	_, pol, err := loadPolicy(db, int32(employeeID))
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
		return
	}

	year, month := yearMonth(c, pol.Location())

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var rows []models.AttendanceRecord
	if err := db.
		Where("employee_id = ? AND date >= ? AND date <= ?",
			employeeID, first.Format(utils.DateLayout), last.Format(utils.DateLayout)).
		Order("date").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	summary, err := engine.SummarizeMonth(core.EngineRecords(rows), pol, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"year":    year,
		"month":   int(month),
		"summary": summary,
	}))
}

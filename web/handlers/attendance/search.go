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

type SearchParams struct {
	StartDate   *common.DateOnly `json:"startDate" binding:"required"`
	EndDate     *common.DateOnly `json:"endDate" binding:"required"`
	Employees   []int32          `json:"employees"`
	Departments []int32          `json:"departments"`
	Statuses    []string         `json:"statuses"`
}

// AttendanceRow is a stored record plus what the derivation engine makes
// of it. The stored status stays authoritative for admin-set values; the
// derived one is what the dashboard paints.
type AttendanceRow struct {
	models.AttendanceRecord
	DerivedStatus string   `json:"derivedStatus"`
	DisplayHours  *float64 `json:"displayHours"`
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	limit := 1000
	offset := 0
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = val
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rows, total, err := searchRecords(db, params, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	enriched, err := deriveRows(db, rows, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(enriched, total))
}

func searchRecords(db *gorm.DB, params SearchParams, limit, offset int) ([]models.AttendanceRecord, int64, error) {
	query := db.Model(&models.AttendanceRecord{}).
		Where("date >= ? AND date <= ?",
			params.StartDate.Format(utils.DateLayout),
			params.EndDate.Format(utils.DateLayout))

	if len(params.Employees) > 0 {
		query = query.Where("employee_id IN ?", params.Employees)
	}
	if len(params.Departments) > 0 {
		query = query.Where("employee_id IN (?)",
			db.Model(&models.Employee{}).Select("id").Where("department_id IN ?", params.Departments))
	}
	if len(params.Statuses) > 0 {
		query = query.Where("status IN ?", params.Statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.AttendanceRecord
	if err := query.
		Preload("Employee").
		Order("date, employee_id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// deriveRows runs every record through the classification engine under its
// own organization's policy.
func deriveRows(db *gorm.DB, rows []models.AttendanceRecord, now time.Time) ([]AttendanceRow, error) {
	policies := map[int32]engine.Policy{}
	for _, row := range rows {
		if _, ok := policies[row.OrganizationID]; ok {
			continue
		}
		var org models.Organization
		if err := db.First(&org, row.OrganizationID).Error; err != nil {
			return nil, err
		}
		policies[row.OrganizationID] = core.PolicyFor(&org)
	}

	result := make([]AttendanceRow, 0, len(rows))
	for _, row := range rows {
		pol := policies[row.OrganizationID]
		snapshot := &engine.Record{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			CheckIn:    row.CheckIn,
			CheckOut:   row.CheckOut,
			Status:     row.Status,
			WorkHours:  row.WorkHours,
		}

		status, err := engine.ClassifyDay(snapshot, pol)
		if err != nil {
			return nil, err
		}

		result = append(result, AttendanceRow{
			AttendanceRecord: row,
			DerivedStatus:    string(status),
			DisplayHours:     engine.ComputeWorkHours(snapshot, now),
		})
	}

	return result, nil
}

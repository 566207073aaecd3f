package attendance

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"worksight.com/worksight/web/common"
)

// Export produces an XLSX report of derived attendance for the requested
// range. Same filters as Search, no pagination.
func (ep *Endpoint) Export(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rows, _, err := searchRecords(db, params, 100000, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	enriched, err := deriveRows(db, rows, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Date", "Employee", "Code", "Check-in", "Check-out", "Status", "Work hours"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	for i, row := range enriched {
		name := ""
		code := ""
		if row.Employee != nil {
			name = row.Employee.FirstName + " " + row.Employee.Surname
			code = row.Employee.Code
		}

		hours := interface{}(nil)
		if row.DisplayHours != nil {
			hours = *row.DisplayHours
		}

		cells := []interface{}{row.Date, name, code, row.CheckIn, row.CheckOut, row.DerivedStatus, hours}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
	}

	filename := fmt.Sprintf("attendance-%s-%s.xlsx",
		params.StartDate.Format("2006-01-02"),
		params.EndDate.Format("2006-01-02"))

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
}

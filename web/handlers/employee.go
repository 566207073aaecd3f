package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type EmployeeEndpoint struct {
	base common.Handler
}

func RegisterEmployees(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &EmployeeEndpoint{base: common.Handler{Dm: dm}}
	r.POST("/employees/search", endpoint.Search)
	r.GET("/employees/:id", endpoint.Get)
	r.POST("/employees", endpoint.Create)
	r.PUT("/employees/:id", endpoint.Update)
	r.DELETE("/employees/:id", endpoint.Deactivate)
}

type EmployeeSearchParams struct {
	Query       string  `json:"query"`
	Departments []int32 `json:"departments"`
	Locations   []int32 `json:"locations"`
	Shifts      []int32 `json:"shifts"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

type EmployeeCreateDTO struct {
	OrganizationID    int32          `json:"organizationId" binding:"required"`
	Code              string         `json:"code" binding:"required"`
	FirstName         string         `json:"firstName" binding:"required"`
	Surname           string         `json:"surname" binding:"required"`
	Email             *string        `json:"email,omitempty" binding:"omitempty,email"`
	IdentificationTag *string        `json:"identificationTag,omitempty"`
	DepartmentID      *int32         `json:"departmentId,omitempty"`
	LocationID        *int32         `json:"locationId,omitempty"`
	ShiftID           *int32         `json:"shiftId,omitempty"`
	ReportsToID       *int32         `json:"reportsToId,omitempty"`
	Attributes        datatypes.JSON `json:"attributes,omitempty"`
}

type EmployeeUpdateDTO struct {
	FirstName         *string        `json:"firstName,omitempty"`
	Surname           *string        `json:"surname,omitempty"`
	Email             *string        `json:"email,omitempty" binding:"omitempty,email"`
	IdentificationTag *string        `json:"identificationTag,omitempty"`
	Status            *string        `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	DepartmentID      *int32         `json:"departmentId,omitempty"`
	LocationID        *int32         `json:"locationId,omitempty"`
	ShiftID           *int32         `json:"shiftId,omitempty"`
	ReportsToID       *int32         `json:"reportsToId,omitempty"`
	Attributes        datatypes.JSON `json:"attributes,omitempty"`
}

func (ep *EmployeeEndpoint) Search(c *gin.Context) {
	var params EmployeeSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	limit := 100
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

	query := db.Model(&models.Employee{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("first_name LIKE ? OR surname LIKE ? OR code LIKE ?", like, like, like)
	}
	if len(params.Departments) > 0 {
		query = query.Where("department_id IN ?", params.Departments)
	}
	if len(params.Locations) > 0 {
		query = query.Where("location_id IN ?", params.Locations)
	}
	if len(params.Shifts) > 0 {
		query = query.Where("shift_id IN ?", params.Shifts)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	var employees []models.Employee
	if err := query.
		Preload("Department").
		Preload("Location").
		Preload("Shift").
		Order("surname, first_name").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(employees, total))
}

func (ep *EmployeeEndpoint) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var employee models.Employee
	if err := db.
		Preload("Department").
		Preload("Location").
		Preload("Shift").
		First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(employee))
}

func (ep *EmployeeEndpoint) Create(c *gin.Context) {
	var body EmployeeCreateDTO
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

	employee := models.Employee{
		OrganizationID:    body.OrganizationID,
		Code:              body.Code,
		FirstName:         body.FirstName,
		Surname:           body.Surname,
		Email:             body.Email,
		IdentificationTag: body.IdentificationTag,
		Status:            "active",
		DepartmentID:      body.DepartmentID,
		LocationID:        body.LocationID,
		ShiftID:           body.ShiftID,
		ReportsToID:       body.ReportsToID,
		Attributes:        body.Attributes,
	}

	if err := db.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(employee))
}

func (ep *EmployeeEndpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body EmployeeUpdateDTO
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

	if err := db.Model(&models.Employee{}).Where("id = ?", id).Updates(body).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

// Deactivate marks an employee inactive. Rows are never deleted so
// historical attendance stays attributable.
func (ep *EmployeeEndpoint) Deactivate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	if err := db.Model(&models.Employee{}).Where("id = ?", id).Update("status", "inactive").Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

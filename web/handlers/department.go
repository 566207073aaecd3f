package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type DepartmentEndpoint struct {
	base common.Handler
}

func RegisterDepartments(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &DepartmentEndpoint{base: common.Handler{Dm: dm}}
	r.GET("/departments", endpoint.List)
	r.POST("/departments", endpoint.Create)
	r.PUT("/departments/:id", endpoint.Update)
	r.DELETE("/departments/:id", endpoint.Delete)
}

type DepartmentCreateDTO struct {
	OrganizationID int32  `json:"organizationId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	ManagerID      *int32 `json:"managerId,omitempty"`
}

type DepartmentUpdateDTO struct {
	Name      *string `json:"name,omitempty"`
	ManagerID *int32  `json:"managerId,omitempty"`
}

func (ep *DepartmentEndpoint) List(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var departments []models.Department
	if err := db.Order("name").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(departments))
}

func (ep *DepartmentEndpoint) Create(c *gin.Context) {
	var body DepartmentCreateDTO
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

	department := models.Department{
		OrganizationID: body.OrganizationID,
		Name:           body.Name,
		ManagerID:      body.ManagerID,
	}

	if err := db.Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(department))
}

func (ep *DepartmentEndpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body DepartmentUpdateDTO
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

	if err := db.Model(&models.Department{}).Where("id = ?", id).Updates(body).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

func (ep *DepartmentEndpoint) Delete(c *gin.Context) {
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

	var count int64
	if err := db.Model(&models.Employee{}).Where("department_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, common.NewErrorResponse("Department still has employees assigned"))
		return
	}

	if err := db.Delete(&models.Department{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

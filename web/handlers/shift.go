package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type ShiftEndpoint struct {
	base common.Handler
}

func RegisterShifts(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &ShiftEndpoint{base: common.Handler{Dm: dm}}
	r.GET("/shifts", endpoint.List)
	r.POST("/shifts", endpoint.Create)
	r.PUT("/shifts/:id", endpoint.Update)
}

type ShiftCreateDTO struct {
	OrganizationID int32  `json:"organizationId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Start          string `json:"start" binding:"required,datetime=15:04"`
	Finish         string `json:"finish" binding:"required,datetime=15:04"`
	BreakMinutes   int32  `json:"breakMinutes"`
}

type ShiftUpdateDTO struct {
	Name         *string `json:"name,omitempty"`
	Start        *string `json:"start,omitempty" binding:"omitempty,datetime=15:04"`
	Finish       *string `json:"finish,omitempty" binding:"omitempty,datetime=15:04"`
	BreakMinutes *int32  `json:"breakMinutes,omitempty"`
}

func (ep *ShiftEndpoint) List(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var shifts []models.Shift
	if err := db.Order("start").Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(shifts))
}

func (ep *ShiftEndpoint) Create(c *gin.Context) {
	var body ShiftCreateDTO
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

	shift := models.Shift{
		OrganizationID: body.OrganizationID,
		Name:           body.Name,
		Start:          body.Start,
		Finish:         body.Finish,
		BreakMinutes:   body.BreakMinutes,
	}

	if err := db.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(shift))
}

func (ep *ShiftEndpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body ShiftUpdateDTO
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

	if err := db.Model(&models.Shift{}).Where("id = ?", id).Updates(body).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type LocationEndpoint struct {
	base common.Handler
}

func RegisterLocations(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &LocationEndpoint{base: common.Handler{Dm: dm}}
	r.GET("/locations", endpoint.List)
	r.POST("/locations", endpoint.Create)
	r.PUT("/locations/:id", endpoint.Update)
}

type LocationCreateDTO struct {
	OrganizationID int32   `json:"organizationId" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Address        *string `json:"address,omitempty"`
	Timezone       *string `json:"timezone,omitempty" binding:"omitempty,timezone"`
}

type LocationUpdateDTO struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty" binding:"omitempty,timezone"`
}

func (ep *LocationEndpoint) List(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var locations []models.Location
	if err := db.Order("name").Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(locations))
}

func (ep *LocationEndpoint) Create(c *gin.Context) {
	var body LocationCreateDTO
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

	location := models.Location{
		OrganizationID: body.OrganizationID,
		Name:           body.Name,
		Address:        body.Address,
		Timezone:       body.Timezone,
	}

	if err := db.Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(location))
}

func (ep *LocationEndpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body LocationUpdateDTO
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

	if err := db.Model(&models.Location{}).Where("id = ?", id).Updates(body).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type CameraEndpoint struct {
	base common.Handler
}

func RegisterCameras(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &CameraEndpoint{base: common.Handler{Dm: dm}}
	r.GET("/cameras", endpoint.List)
	r.POST("/cameras", endpoint.Create)
	r.PUT("/cameras/:id", endpoint.Update)
	r.POST("/cameras/:id/heartbeat", endpoint.Heartbeat)
}

type CameraCreateDTO struct {
	OrganizationID int32   `json:"organizationId" binding:"required"`
	LocationID     *int32  `json:"locationId,omitempty"`
	Name           string  `json:"name" binding:"required"`
	StreamURL      *string `json:"streamUrl,omitempty" binding:"omitempty,url"`
}

type CameraUpdateDTO struct {
	LocationID *int32  `json:"locationId,omitempty"`
	Name       *string `json:"name,omitempty"`
	StreamURL  *string `json:"streamUrl,omitempty" binding:"omitempty,url"`
	Active     *bool   `json:"active,omitempty"`
}

func (ep *CameraEndpoint) List(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var cameras []models.Camera
	if err := db.Preload("Location").Order("name").Find(&cameras).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(cameras))
}

func (ep *CameraEndpoint) Create(c *gin.Context) {
	var body CameraCreateDTO
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

	camera := models.Camera{
		OrganizationID: body.OrganizationID,
		LocationID:     body.LocationID,
		Name:           body.Name,
		StreamURL:      body.StreamURL,
		Active:         true,
	}

	if err := db.Create(&camera).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(camera))
}

func (ep *CameraEndpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body CameraUpdateDTO
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

	if err := db.Model(&models.Camera{}).Where("id = ?", id).Updates(body).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

// Heartbeat is called by edge devices so the dashboard can surface stale
// cameras.
func (ep *CameraEndpoint) Heartbeat(c *gin.Context) {
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

	if err := db.Model(&models.Camera{}).Where("id = ?", id).Update("last_seen_at", time.Now().UTC()).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

type OrganizationEndpoint struct {
	base common.Handler
}

func RegisterOrganizations(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &OrganizationEndpoint{base: common.Handler{Dm: dm}}
	r.GET("/organizations/:id", endpoint.Get)
	r.PUT("/organizations/:id", endpoint.Update)

	RegisterFeatures(r, dm)
}

type OrganizationUpdateDTO struct {
	Name                    *string  `json:"name,omitempty"`
	Timezone                *string  `json:"timezone,omitempty"`
	LateThreshold           *string  `json:"lateThreshold,omitempty" binding:"omitempty,datetime=15:04"`
	GracePeriodMinutes      *int32   `json:"gracePeriodMinutes,omitempty"`
	HalfDayThresholdMinutes *int32   `json:"halfDayThresholdMinutes,omitempty"`
	AutoCheckoutHours       *float64 `json:"autoCheckoutHours,omitempty"`
}

func (ep *OrganizationEndpoint) Get(c *gin.Context) {
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

	var org models.Organization
	if err := db.First(&org, id).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Organization not found"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(org))
}

func (ep *OrganizationEndpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var body OrganizationUpdateDTO
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

	if err := db.Model(&models.Organization{}).Where("id = ?", id).Updates(body).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

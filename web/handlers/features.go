package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"worksight.com/worksight/core"
	"worksight.com/worksight/core/entitlement"
	"worksight.com/worksight/infrastructure/communication"
	"worksight.com/worksight/models"
	"worksight.com/worksight/web/common"
)

// FeatureEndpoint keeps an organization's subscription plan and feature
// flags consistent. All decisions are delegated to the entitlement engine;
// the endpoint only loads, persists and reports. Plan and flags are always
// written together.
type FeatureEndpoint struct {
	base  common.Handler
	slack *communication.Slack
}

func RegisterFeatures(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &FeatureEndpoint{
		base:  common.Handler{Dm: dm},
		slack: communication.ConnectSlack(),
	}
	r.GET("/organizations/:id/features", endpoint.Get)
	r.PUT("/organizations/:id/plan", endpoint.SelectPlan)
	r.POST("/organizations/:id/features/toggle", endpoint.Toggle)
}

type FeatureConfigDTO struct {
	Plan     entitlement.Plan  `json:"plan"`
	Features entitlement.Flags `json:"features"`
}

type PlanSelectDTO struct {
	Plan string `json:"plan" binding:"required"`
}

type FeatureToggleDTO struct {
	Feature string `json:"feature" binding:"required"`
}

func decodeFlags(raw []byte) entitlement.Flags {
	flags := entitlement.Flags{}
	if len(raw) > 0 {
		// A corrupt column falls back to everything-off; the engine then
		// fails closed from there.
		_ = json.Unmarshal(raw, &flags)
	}
	return flags
}

func (ep *FeatureEndpoint) loadOrganization(c *gin.Context) (*gorm.DB, *models.Organization, func(), bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return nil, nil, nil, false
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return nil, nil, nil, false
	}

	var org models.Organization
	if err := db.First(&org, id).Error; err != nil {
		conn.Close()
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Organization not found"))
		return nil, nil, nil, false
	}

	return db, &org, func() { conn.Close() }, true
}

// Get returns the stored plan/flag pair after re-running it through the
// engine, so a drifted row is reported in its fail-closed form rather than
// as stored.
func (ep *FeatureEndpoint) Get(c *gin.Context) {
	_, org, done, ok := ep.loadOrganization(c)
	if !ok {
		return
	}
	defer done()

	flags, err := entitlement.FeaturesForPlan(entitlement.Plan(org.SubscriptionPlan), decodeFlags(org.EnabledFeatures))
	if err != nil {
		ep.reportConfigError(org, err)
		c.JSON(http.StatusOK, common.NewSuccessResponse(FeatureConfigDTO{
			Plan:     entitlement.PlanFree,
			Features: flags,
		}))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(FeatureConfigDTO{
		Plan:     entitlement.Plan(org.SubscriptionPlan),
		Features: flags,
	}))
}

// SelectPlan moves the organization to a new tier and trims/forces the
// feature flags to match (plan -> features direction).
func (ep *FeatureEndpoint) SelectPlan(c *gin.Context) {
	var body PlanSelectDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	db, org, done, ok := ep.loadOrganization(c)
	if !ok {
		return
	}
	defer done()

	plan, planErr := entitlement.NormalizePlan(entitlement.Plan(body.Plan))
	flags, _ := entitlement.FeaturesForPlan(plan, decodeFlags(org.EnabledFeatures))

	if planErr != nil {
		ep.reportConfigError(org, planErr)
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(planErr.Error()))
		return
	}

	if err := ep.persist(db, org.ID, plan, flags); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(FeatureConfigDTO{Plan: plan, Features: flags}))
}

// Toggle flips one key feature and auto-selects the minimal compatible
// plan (features -> plan direction).
func (ep *FeatureEndpoint) Toggle(c *gin.Context) {
	var body FeatureToggleDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	db, org, done, ok := ep.loadOrganization(c)
	if !ok {
		return
	}
	defer done()

	flags, plan, err := entitlement.ToggleFeature(
		decodeFlags(org.EnabledFeatures),
		entitlement.Plan(org.SubscriptionPlan),
		body.Feature,
	)
	if err != nil {
		if errors.Is(err, entitlement.ErrFeatureLocked) || errors.Is(err, entitlement.ErrUnknownFeature) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
		ep.reportConfigError(org, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if err := ep.persist(db, org.ID, plan, flags); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(FeatureConfigDTO{Plan: plan, Features: flags}))
}

// persist writes the plan/flag pair in one update; never one without the
// other.
func (ep *FeatureEndpoint) persist(db *gorm.DB, orgID int32, plan entitlement.Plan, flags entitlement.Flags) error {
	raw, err := json.Marshal(flags)
	if err != nil {
		return err
	}

	return db.Model(&models.Organization{}).Where("id = ?", orgID).Updates(map[string]interface{}{
		"subscription_plan": string(plan),
		"enabled_features":  raw,
	}).Error
}

func (ep *FeatureEndpoint) reportConfigError(org *models.Organization, err error) {
	if ep.slack == nil {
		return
	}
	_ = ep.slack.Error(fmt.Sprintf("entitlement config error for organization %d (%s): %v", org.ID, org.Name, err))
}

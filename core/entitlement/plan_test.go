package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlan(t *testing.T) {
	for _, plan := range Plans() {
		norm, err := NormalizePlan(plan)
		assert.NoError(t, err)
		assert.Equal(t, plan, norm)
	}

	norm, err := NormalizePlan(Plan("gold"))
	assert.ErrorIs(t, err, ErrUnknownPlan)
	assert.Equal(t, PlanFree, norm)
}

func TestKeyFeatureLimit(t *testing.T) {
	assert.Equal(t, 1, KeyFeatureLimit(PlanFree))
	assert.Equal(t, 2, KeyFeatureLimit(PlanStarter))
	assert.Equal(t, 3, KeyFeatureLimit(PlanProfessional))
	assert.Equal(t, 3, KeyFeatureLimit(PlanEnterprise))

	// Unknown plans fall back to the most restrictive limit.
	assert.Equal(t, 1, KeyFeatureLimit(Plan("gold")))
}

func TestPlanAllows(t *testing.T) {
	assert.False(t, PlanAllows(PlanFree, FeatureAdvancedAnalytics))
	assert.True(t, PlanAllows(PlanStarter, FeatureAdvancedAnalytics))
	assert.False(t, PlanAllows(PlanProfessional, FeatureVideoSearch))
	assert.True(t, PlanAllows(PlanEnterprise, FeatureVideoSearch))
}

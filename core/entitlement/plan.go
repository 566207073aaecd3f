package entitlement

import (
	"errors"
	"fmt"
)

// Plan is a subscription tier. Tiers are totally ordered by entitlement
// breadth: free < starter < professional < enterprise.
type Plan string

const (
	PlanFree         Plan = "free"
	PlanStarter      Plan = "starter"
	PlanProfessional Plan = "professional"
	PlanEnterprise   Plan = "enterprise"
)

var ErrUnknownPlan = errors.New("unknown subscription plan")

type planSpec struct {
	keyLimit int
	locked   []string // locked features available on this tier
}

var plans = map[Plan]planSpec{
	PlanFree: {
		keyLimit: 1,
	},
	PlanStarter: {
		keyLimit: 2,
		locked:   []string{FeatureAdvancedAnalytics},
	},
	PlanProfessional: {
		keyLimit: 3,
		locked: []string{
			FeatureAdvancedAnalytics,
			FeatureCameraIntegration,
			FeatureMultiLocation,
			FeatureSecurityAlerts,
		},
	},
	PlanEnterprise: {
		keyLimit: 3,
		locked: []string{
			FeatureAdvancedAnalytics,
			FeatureCameraIntegration,
			FeatureMultiLocation,
			FeatureSecurityAlerts,
			FeatureVideoSearch,
		},
	},
}

// NormalizePlan validates a plan value. Unrecognized input fails safe to
// the most restrictive tier and reports a configuration error — elevated
// entitlement is never granted on garbage.
func NormalizePlan(p Plan) (Plan, error) {
	if _, ok := plans[p]; ok {
		return p, nil
	}
	return PlanFree, fmt.Errorf("%w: %q", ErrUnknownPlan, p)
}

// KeyFeatureLimit is the maximum number of key features the tier allows
// simultaneously enabled.
func KeyFeatureLimit(p Plan) int {
	spec, ok := plans[p]
	if !ok {
		return plans[PlanFree].keyLimit
	}
	return spec.keyLimit
}

// PlanAllows reports whether a locked feature is available on the tier.
func PlanAllows(p Plan, feature string) bool {
	spec, ok := plans[p]
	if !ok {
		spec = plans[PlanFree]
	}
	for _, f := range spec.locked {
		if f == feature {
			return true
		}
	}
	return false
}

// Plans lists the known tiers in entitlement order.
func Plans() []Plan {
	return []Plan{PlanFree, PlanStarter, PlanProfessional, PlanEnterprise}
}

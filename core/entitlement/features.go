package entitlement

import (
	"errors"
	"fmt"
)

const (
	FeatureEmployeeAttendance = "employee_attendance"
	FeatureVisitorManagement  = "visitor_management"
	FeatureLPRIntegration     = "lpr_integration"

	FeatureAdvancedAnalytics = "advanced_analytics"
	FeatureCameraIntegration = "camera_integration"
	FeatureMultiLocation     = "multi_location"
	FeatureSecurityAlerts    = "security_alerts"
	FeatureVideoSearch       = "video_search"
)

// KeyFeatures are user-toggleable, capped per plan. The slice order is the
// fixed trim priority: when a plan change leaves too many enabled, the
// first ones in this order are retained. That can silently drop a feature
// the user enabled last — deliberate, there is no other ordering signal.
var KeyFeatures = []string{
	FeatureEmployeeAttendance,
	FeatureVisitorManagement,
	FeatureLPRIntegration,
}

// LockedFeatures are fully determined by the plan and never toggled
// directly.
var LockedFeatures = []string{
	FeatureAdvancedAnalytics,
	FeatureCameraIntegration,
	FeatureMultiLocation,
	FeatureSecurityAlerts,
	FeatureVideoSearch,
}

// Flags maps feature name to enabled state.
type Flags map[string]bool

var (
	ErrFeatureLocked  = errors.New("feature is locked to the subscription plan")
	ErrUnknownFeature = errors.New("unknown feature")
)

func IsKeyFeature(name string) bool {
	for _, f := range KeyFeatures {
		if f == name {
			return true
		}
	}
	return false
}

func IsLockedFeature(name string) bool {
	for _, f := range LockedFeatures {
		if f == name {
			return true
		}
	}
	return false
}

// FeaturesForPlan computes the flag state after arriving at a plan: locked
// features are forced to the plan's availability, enabled key features are
// retained in trim-priority order up to the plan's key limit.
//
// An unknown plan is treated as free; the flags are still returned so the
// caller can fail closed while surfacing the configuration error.
func FeaturesForPlan(plan Plan, current Flags) (Flags, error) {
	norm, err := NormalizePlan(plan)

	out := make(Flags, len(LockedFeatures)+len(KeyFeatures))
	for _, f := range LockedFeatures {
		out[f] = PlanAllows(norm, f)
	}

	limit := KeyFeatureLimit(norm)
	kept := 0
	for _, f := range KeyFeatures {
		enabled := current[f] && kept < limit
		if enabled {
			kept++
		}
		out[f] = enabled
	}

	return out, err
}

// PlanForFeatures derives the minimal plan that satisfies a requested flag
// state. video_search is a hard override to enterprise regardless of the
// key count.
func PlanForFeatures(f Flags) Plan {
	if f[FeatureVideoSearch] {
		return PlanEnterprise
	}

	selected := 0
	for _, k := range KeyFeatures {
		if f[k] {
			selected++
		}
	}

	switch {
	case selected > 2:
		return PlanProfessional
	case selected == 2:
		return PlanStarter
	default:
		return PlanFree
	}
}

// ToggleFeature flips a key feature and returns the resulting flags and
// plan as an atomic pair: the minimal plan for the new selection is derived
// first, then locked features are re-forced for that plan. Direct toggles
// of locked features are rejected as no-ops.
func ToggleFeature(current Flags, plan Plan, key string) (Flags, Plan, error) {
	if IsLockedFeature(key) {
		return current, plan, fmt.Errorf("%w: %s", ErrFeatureLocked, key)
	}
	if !IsKeyFeature(key) {
		return current, plan, fmt.Errorf("%w: %q", ErrUnknownFeature, key)
	}

	flipped := make(Flags, len(current)+1)
	for k, v := range current {
		flipped[k] = v
	}
	flipped[key] = !flipped[key]

	newPlan := PlanForFeatures(flipped)
	flags, err := FeaturesForPlan(newPlan, flipped)
	if err != nil {
		return current, plan, err
	}

	return flags, newPlan, nil
}

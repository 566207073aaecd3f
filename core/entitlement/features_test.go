package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allKeysRequested() Flags {
	return Flags{
		FeatureEmployeeAttendance: true,
		FeatureVisitorManagement:  true,
		FeatureLPRIntegration:     true,
	}
}

func TestFeaturesForPlan(t *testing.T) {
	tests := []struct {
		name        string
		plan        Plan
		current     Flags
		expectKeys  []string
		expectOn    []string
		expectOff   []string
	}{
		{
			name:       "Free keeps one key feature",
			plan:       PlanFree,
			current:    allKeysRequested(),
			expectKeys: []string{FeatureEmployeeAttendance},
			expectOff:  LockedFeatures,
		},
		{
			name:       "Starter keeps two in priority order",
			plan:       PlanStarter,
			current:    allKeysRequested(),
			expectKeys: []string{FeatureEmployeeAttendance, FeatureVisitorManagement},
			expectOn:   []string{FeatureAdvancedAnalytics},
			expectOff:  []string{FeatureVideoSearch, FeatureCameraIntegration},
		},
		{
			name:       "Professional keeps all three keys",
			plan:       PlanProfessional,
			current:    allKeysRequested(),
			expectKeys: KeyFeatures,
			expectOn:   []string{FeatureAdvancedAnalytics, FeatureCameraIntegration, FeatureMultiLocation, FeatureSecurityAlerts},
			expectOff:  []string{FeatureVideoSearch},
		},
		{
			name:       "Enterprise unlocks everything",
			plan:       PlanEnterprise,
			current:    allKeysRequested(),
			expectKeys: KeyFeatures,
			expectOn:   LockedFeatures,
		},
		{
			name: "Trim priority is fixed, not selection order",
			plan: PlanFree,
			current: Flags{
				FeatureVisitorManagement: true,
				FeatureLPRIntegration:    true,
			},
			// employee_attendance is off, so the first enabled key in
			// priority order survives the trim.
			expectKeys: []string{FeatureVisitorManagement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := FeaturesForPlan(tt.plan, tt.current)
			assert.NoError(t, err)

			for _, f := range KeyFeatures {
				want := false
				for _, k := range tt.expectKeys {
					if k == f {
						want = true
					}
				}
				assert.Equal(t, want, flags[f], "key feature %s", f)
			}
			for _, f := range tt.expectOn {
				assert.True(t, flags[f], "expected %s on", f)
			}
			for _, f := range tt.expectOff {
				assert.False(t, flags[f], "expected %s off", f)
			}
		})
	}
}

func TestFeaturesForPlanUnknownPlanFailsClosed(t *testing.T) {
	flags, err := FeaturesForPlan(Plan("platinum"), allKeysRequested())

	assert.ErrorIs(t, err, ErrUnknownPlan)
	// Fail-safe to the free tier: one key, nothing locked on.
	keys := 0
	for _, f := range KeyFeatures {
		if flags[f] {
			keys++
		}
	}
	assert.Equal(t, 1, keys)
	for _, f := range LockedFeatures {
		assert.False(t, flags[f])
	}
}

func TestPlanForFeatures(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		expected Plan
	}{
		{
			name:     "No keys",
			flags:    Flags{},
			expected: PlanFree,
		},
		{
			name:     "One key",
			flags:    Flags{FeatureEmployeeAttendance: true},
			expected: PlanFree,
		},
		{
			name:     "Two keys",
			flags:    Flags{FeatureEmployeeAttendance: true, FeatureVisitorManagement: true},
			expected: PlanStarter,
		},
		{
			name:     "Three keys",
			flags:    allKeysRequested(),
			expected: PlanProfessional,
		},
		{
			name:     "Video search overrides key count",
			flags:    Flags{FeatureVideoSearch: true},
			expected: PlanEnterprise,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlanForFeatures(tt.flags))
		})
	}
}

func TestToggleFeature(t *testing.T) {
	t.Run("Locked feature toggle is a no-op", func(t *testing.T) {
		current, err := FeaturesForPlan(PlanStarter, allKeysRequested())
		assert.NoError(t, err)

		for _, locked := range LockedFeatures {
			flags, plan, err := ToggleFeature(current, PlanStarter, locked)
			assert.ErrorIs(t, err, ErrFeatureLocked)
			assert.Equal(t, PlanStarter, plan)
			assert.Equal(t, current, flags)
		}
	})

	t.Run("Unknown feature is rejected", func(t *testing.T) {
		flags, plan, err := ToggleFeature(Flags{}, PlanFree, "teleportation")
		assert.ErrorIs(t, err, ErrUnknownFeature)
		assert.Equal(t, PlanFree, plan)
		assert.Equal(t, Flags{}, flags)
	})

	t.Run("Enabling a second key auto-selects starter", func(t *testing.T) {
		current := Flags{FeatureEmployeeAttendance: true}

		flags, plan, err := ToggleFeature(current, PlanFree, FeatureVisitorManagement)
		assert.NoError(t, err)
		assert.Equal(t, PlanStarter, plan)
		assert.True(t, flags[FeatureEmployeeAttendance])
		assert.True(t, flags[FeatureVisitorManagement])
		assert.True(t, flags[FeatureAdvancedAnalytics]) // re-locked for starter
	})

	t.Run("Disabling a key steps the plan back down", func(t *testing.T) {
		current, err := FeaturesForPlan(PlanProfessional, allKeysRequested())
		assert.NoError(t, err)

		flags, plan, err := ToggleFeature(current, PlanProfessional, FeatureLPRIntegration)
		assert.NoError(t, err)
		assert.Equal(t, PlanStarter, plan)
		assert.False(t, flags[FeatureLPRIntegration])
		assert.False(t, flags[FeatureCameraIntegration]) // no longer available
	})
}

func TestScenarioC(t *testing.T) {
	requested := Flags{
		FeatureEmployeeAttendance: true,
		FeatureVisitorManagement:  true,
	}

	plan := PlanForFeatures(requested)
	assert.Equal(t, PlanStarter, plan)

	flags, err := FeaturesForPlan(plan, requested)
	assert.NoError(t, err)
	assert.True(t, flags[FeatureEmployeeAttendance])
	assert.True(t, flags[FeatureVisitorManagement])
	assert.False(t, flags[FeatureLPRIntegration])
	assert.True(t, flags[FeatureAdvancedAnalytics])
}

func TestScenarioD(t *testing.T) {
	requested := allKeysRequested()
	requested[FeatureVideoSearch] = true

	plan := PlanForFeatures(requested)
	assert.Equal(t, PlanEnterprise, plan)

	flags, err := FeaturesForPlan(plan, requested)
	assert.NoError(t, err)
	for _, f := range KeyFeatures {
		assert.True(t, flags[f])
	}
	for _, f := range LockedFeatures {
		assert.True(t, flags[f])
	}
}

func TestIdempotence(t *testing.T) {
	// featuresForPlan(planForFeatures(featuresForPlan(p))) must not mutate
	// an already-consistent flag state, for every plan.
	for _, plan := range Plans() {
		t.Run(string(plan), func(t *testing.T) {
			first, err := FeaturesForPlan(plan, allKeysRequested())
			assert.NoError(t, err)

			derived := PlanForFeatures(first)
			second, err := FeaturesForPlan(derived, first)
			assert.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, plan, derived)
		})
	}
}

func TestMonotonicCap(t *testing.T) {
	// For every plan and every subset of requested keys, the enabled key
	// count never exceeds the plan's limit.
	subsets := []Flags{
		{},
		{FeatureEmployeeAttendance: true},
		{FeatureVisitorManagement: true, FeatureLPRIntegration: true},
		allKeysRequested(),
	}

	for _, plan := range Plans() {
		for _, current := range subsets {
			flags, err := FeaturesForPlan(plan, current)
			assert.NoError(t, err)

			enabled := 0
			for _, f := range KeyFeatures {
				if flags[f] {
					enabled++
				}
			}
			assert.LessOrEqual(t, enabled, KeyFeatureLimit(plan), "plan %s", plan)
		}
	}
}

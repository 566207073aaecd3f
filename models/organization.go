package models

import (
	"time"

	"gorm.io/datatypes"
)

// Organization is the tenant root. Subscription plan and enabled features
// are always written together; the entitlement engine computes the pair.
type Organization struct {
	ID       int32  `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Domain   string `gorm:"column:domain;type:varchar(255);uniqueIndex" json:"domain"`
	Timezone string `gorm:"column:timezone;type:varchar(64);not null;default:UTC" json:"timezone"`

	SubscriptionPlan string         `gorm:"column:subscription_plan;type:varchar(50);not null;default:free" json:"subscriptionPlan"`
	EnabledFeatures  datatypes.JSON `gorm:"column:enabled_features" json:"enabledFeatures"`

	// Attendance policy knobs.
	LateThreshold           string  `gorm:"column:late_threshold;type:varchar(8);not null;default:'09:15'" json:"lateThreshold"`
	GracePeriodMinutes      int32   `gorm:"column:grace_period_minutes;not null;default:0" json:"gracePeriodMinutes"`
	HalfDayThresholdMinutes int32   `gorm:"column:half_day_threshold_minutes;not null;default:240" json:"halfDayThresholdMinutes"`
	AutoCheckoutHours       float64 `gorm:"column:auto_checkout_hours;type:decimal(4,1);not null;default:12" json:"autoCheckoutHours"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Organization) TableName() string {
	return "organizations"
}

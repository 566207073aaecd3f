package attendance

import (
	"time"

	"worksight.com/worksight/utils"
)

// Policy holds the per-organization knobs that bound status derivation.
// It is treated as immutable for the duration of a derivation pass.
type Policy struct {
	LateThreshold           string // clock string in organization-local time, e.g. "09:15"
	GracePeriodMinutes      int32
	HalfDayThresholdMinutes int32
	AutoCheckoutHours       float64
	Timezone                string // IANA name, e.g. "Australia/Brisbane"
}

// Location resolves the organization timezone. Check-in comparisons always
// happen in this location, never in the viewer's local time.
func (p Policy) Location() *time.Location {
	return utils.LoadLocation(p.Timezone)
}

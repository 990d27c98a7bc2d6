package spatial

import (
	"math"

	"github.com/ecorun/activity-backend-go/internal/models"
)

// CarEmissionKgPerKm is the average car emission factor used to estimate the
// CO2 avoided by running or biking instead of driving.
const CarEmissionKgPerKm = 0.12

// LifeGainedFactor converts hours of activity into hours of life expectancy
// gained (1 hour of exercise ~ 7 hours of life).
const LifeGainedFactor = 7.0

// Maximum plausible speeds in km/h per activity kind. Anything above is
// treated as GPS jitter, not movement.
const (
	MaxRunningSpeedKmh = 50.0
	MaxBikingSpeedKmh  = 80.0
)

// These functions run on the per-fix live tracking path. None of them return
// errors: degenerate inputs map to a defined numeric result, typically zero,
// so a single bad fix can never abort an activity.

// CO2Savings returns the kilograms of CO2 avoided over distanceKm compared to
// driving. NaN and infinite inputs clamp to 0; negative distances pass through
// unchanged.
func CO2Savings(distanceKm float64) float64 {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0
	}
	return distanceKm * CarEmissionKgPerKm
}

// LifeGained returns the hours of life expectancy gained for durationHours of
// activity. Same clamp rules as CO2Savings.
func LifeGained(durationHours float64) float64 {
	if math.IsNaN(durationHours) || math.IsInf(durationHours, 0) {
		return 0
	}
	return durationHours * LifeGainedFactor
}

// Pace returns the pace in minutes per kilometer. A zero distance returns 0,
// meaning "no pace yet" rather than an actual pace.
func Pace(distanceKm, durationSeconds float64) float64 {
	if distanceKm == 0 {
		return 0
	}
	return (durationSeconds / 60) / distanceKm
}

// MaxPlausibleSpeed returns the speed ceiling in km/h for the given activity
// kind. An unrecognized kind gets a ceiling of 0 so that nothing passes the
// gate until this lookup is taught about it.
func MaxPlausibleSpeed(kind models.ActivityKind) float64 {
	switch kind {
	case models.ActivityRunning:
		return MaxRunningSpeedKmh
	case models.ActivityBiking:
		return MaxBikingSpeedKmh
	default:
		return 0
	}
}

// FilterSpeed gates a reported speed against the plausible range for the
// activity kind. Values outside [0, max] return 0; everything else passes
// through unchanged. This is a plausibility gate, not a smoothing filter.
func FilterSpeed(speedKmh float64, kind models.ActivityKind) float64 {
	max := MaxPlausibleSpeed(kind)
	if speedKmh < 0 || speedKmh > max {
		return 0
	}
	return speedKmh
}

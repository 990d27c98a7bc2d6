// Package codec converts raw GPS sequences to and from the compact form stored
// in an activity's positions column. Encoding is lossy: precision is reduced
// and redundant or implausible samples are dropped. Decoding expands every
// retained sample deterministically, so re-encoding a decoded sequence yields
// the same result.
package codec

import (
	"math"

	"github.com/ecorun/activity-backend-go/internal/models"
	"github.com/ecorun/activity-backend-go/internal/spatial"
)

// The spacing threshold and coordinate precision are coupled: rounding to 6
// decimal places moves a point by at most ~0.11 m at the equator, which must
// stay well below MinSpacingMeters or retained-sample spacing becomes
// non-monotonic. Keep them together.
const (
	// MinSpacingMeters is the minimum distance from the last retained sample
	// for a candidate to count as movement rather than jitter.
	MinSpacingMeters = 2.0

	// coordFactor rounds coordinates to 6 decimal places (~0.11 m resolution
	// at the equator).
	coordFactor = 1e6

	// MaxEncodeSpeedKmh drops samples with implausible reported speeds. The
	// codec does not know the activity kind, so this is a flat ceiling; the
	// activity-aware gate in spatial.FilterSpeed is applied elsewhere.
	MaxEncodeSpeedKmh = 80.0

	speedFactor = 10 // 0.1 km/h precision
)

// Optimize compresses an ordered raw sequence into its stored form. The first
// sample's timestamp becomes the reference for all relative offsets. Samples
// closer than MinSpacingMeters to the last retained sample are dropped, as are
// samples whose reported speed exceeds MaxEncodeSpeedKmh. Input order is
// preserved; an empty input yields an empty output. Coordinates are not
// validated: NaN flows through rounding unchanged.
func Optimize(positions []models.RawPosition) []models.OptimizedPosition {
	if len(positions) == 0 {
		return []models.OptimizedPosition{}
	}

	startTime := positions[0].Timestamp
	optimized := make([]models.OptimizedPosition, 0, len(positions))
	var lastKept *models.RawPosition

	for i := range positions {
		pos := positions[i]

		// Too close to the last retained sample: jitter, not movement.
		if lastKept != nil && spatial.Distance(*lastKept, pos) < MinSpacingMeters {
			continue
		}

		// Implausible speed for any activity.
		if pos.Speed != nil && *pos.Speed > MaxEncodeSpeedKmh {
			continue
		}

		opt := models.OptimizedPosition{
			Lat: roundTo(pos.Latitude, coordFactor),
			Lng: roundTo(pos.Longitude, coordFactor),
			T:   int64(math.Round(float64(pos.Timestamp-startTime) / 1000)),
		}
		if pos.Speed != nil {
			s := roundTo(*pos.Speed, speedFactor)
			opt.S = &s
		}
		optimized = append(optimized, opt)

		lastKept = &positions[i]
	}

	return optimized
}

// Restore expands an optimized sequence back into raw-shaped positions.
// startTime must be the same reference used at encode time, in practice the
// owning activity's created_at. Accuracy was never encoded and is not
// reconstructed.
func Restore(optimized []models.OptimizedPosition, startTime int64) []models.RawPosition {
	restored := make([]models.RawPosition, 0, len(optimized))
	for _, pos := range optimized {
		raw := models.RawPosition{
			Latitude:  pos.Lat,
			Longitude: pos.Lng,
			Timestamp: startTime + pos.T*1000,
		}
		if pos.S != nil {
			s := *pos.S
			raw.Speed = &s
		}
		restored = append(restored, raw)
	}
	return restored
}

func roundTo(v, factor float64) float64 {
	return math.Round(v*factor) / factor
}

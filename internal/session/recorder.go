// Package session accumulates GPS fixes for one in-progress activity. The
// recorder is owned by whoever drives the location callbacks; there is no
// package-level state.
package session

import (
	"github.com/ecorun/activity-backend-go/internal/models"
	"github.com/ecorun/activity-backend-go/internal/spatial"
)

// Recorder collects raw positions for a single activity and keeps running
// totals so the live view can show distance and pace without rescanning the
// whole track on every fix. It is not safe for concurrent use; the location
// provider delivers fixes one at a time.
type Recorder struct {
	kind      models.ActivityKind
	positions []models.RawPosition
	distanceM float64
}

// Summary is a snapshot of the live statistics for an in-progress activity.
type Summary struct {
	Kind            models.ActivityKind `json:"kind"`
	SampleCount     int                 `json:"sampleCount"`
	DistanceKm      float64             `json:"distanceKm"`
	DurationSeconds int64               `json:"durationSeconds"`
	PaceMinPerKm    float64             `json:"paceMinPerKm"`
	CO2SavedKg      float64             `json:"co2SavedKg"`
	LifeGainedHours float64             `json:"lifeGainedHours"`
}

// NewRecorder creates a recorder for one activity of the given kind.
func NewRecorder(kind models.ActivityKind) *Recorder {
	return &Recorder{kind: kind}
}

// Add appends one fix. The reported speed is gated against the plausible
// range for the activity kind before being stored; the fix itself is always
// kept, since dropping redundant samples is the encoder's job at save time.
func (r *Recorder) Add(pos models.RawPosition) {
	if pos.Speed != nil {
		filtered := spatial.FilterSpeed(*pos.Speed, r.kind)
		pos.Speed = &filtered
	}
	if n := len(r.positions); n > 0 {
		r.distanceM += spatial.Distance(r.positions[n-1], pos)
	}
	r.positions = append(r.positions, pos)
}

// Positions returns the accumulated fixes in arrival order. The slice is the
// recorder's backing store; callers hand it to the encoder once at save time
// and must not mutate it while still recording.
func (r *Recorder) Positions() []models.RawPosition {
	return r.positions
}

// Summary returns the live statistics derived from the fixes seen so far.
func (r *Recorder) Summary() Summary {
	s := Summary{
		Kind:        r.kind,
		SampleCount: len(r.positions),
		DistanceKm:  r.distanceM / 1000,
	}
	if n := len(r.positions); n > 1 {
		s.DurationSeconds = (r.positions[n-1].Timestamp - r.positions[0].Timestamp) / 1000
	}
	s.PaceMinPerKm = spatial.Pace(s.DistanceKm, float64(s.DurationSeconds))
	s.CO2SavedKg = spatial.CO2Savings(s.DistanceKm)
	s.LifeGainedHours = spatial.LifeGained(float64(s.DurationSeconds) / 3600)
	return s
}

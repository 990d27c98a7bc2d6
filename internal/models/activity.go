package models

// ActivityKind is the closed set of supported activity types.
type ActivityKind string

const (
	ActivityRunning ActivityKind = "running"
	ActivityBiking  ActivityKind = "biking"
)

// Valid reports whether k is one of the supported kinds.
func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityRunning, ActivityBiking:
		return true
	}
	return false
}

// Activity is a completed tracking session with its optimized GPS track and
// derived eco-impact statistics. CreatedAt doubles as the track's start time:
// decoding the positions field always uses it as the reference timestamp.
type Activity struct {
	ID              string              `json:"id" db:"id"`
	UserID          string              `json:"userId" db:"user_id"`
	Kind            ActivityKind        `json:"kind" db:"kind"`
	Name            string              `json:"name" db:"name"`
	DistanceKm      float64             `json:"distanceKm" db:"distance_km"`
	DurationSeconds int64               `json:"durationSeconds" db:"duration_seconds"`
	PaceMinPerKm    float64             `json:"paceMinPerKm" db:"pace_min_per_km"`
	CO2SavedKg      float64             `json:"co2SavedKg" db:"co2_saved_kg"`
	LifeGainedHours float64             `json:"lifeGainedHours" db:"life_gained_hours"`
	Positions       []OptimizedPosition `json:"positions,omitempty" db:"positions"`
	CreatedAt       int64               `json:"createdAt" db:"created_at"` // epoch milliseconds, session start
}

// ActivityFilter holds query parameters for listing activities.
type ActivityFilter struct {
	Kind      string `form:"kind"`
	StartTime int64  `form:"startTime"` // epoch milliseconds, inclusive
	EndTime   int64  `form:"endTime"`   // epoch milliseconds, inclusive
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

// ActivitiesResponse is a paginated list of activities.
type ActivitiesResponse struct {
	Data       []Activity `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}

// ActivitySummary aggregates eco-impact totals across activities.
type ActivitySummary struct {
	Count           int64   `json:"count"`
	DistanceKm      float64 `json:"distanceKm"`
	DurationSeconds int64   `json:"durationSeconds"`
	CO2SavedKg      float64 `json:"co2SavedKg"`
	LifeGainedHours float64 `json:"lifeGainedHours"`
}

// CreateActivityRequest is the payload for saving a finished session.
type CreateActivityRequest struct {
	Kind      ActivityKind  `json:"kind" binding:"required"`
	Name      string        `json:"name" binding:"required"`
	Positions []RawPosition `json:"positions"`
}

package models

// RawPosition is a single GPS fix as delivered by the location provider.
// Accuracy is carried for live filtering/debugging only and is never persisted.
type RawPosition struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Timestamp int64    `json:"timestamp"` // epoch milliseconds
	Speed     *float64 `json:"speed,omitempty"`    // km/h, absent when not reported
	Accuracy  *float64 `json:"accuracy,omitempty"` // meters, horizontal
}

// OptimizedPosition is the compact stored form of one retained sample.
// Field names are deliberately short: the serialized array is what ends up in
// the activity row's positions column.
type OptimizedPosition struct {
	Lat float64  `json:"lat"` // rounded to 6 decimal places
	Lng float64  `json:"lng"` // rounded to 6 decimal places
	T   int64    `json:"t"`   // seconds since the first sample of the sequence
	S   *float64 `json:"s,omitempty"` // km/h rounded to 0.1, absent when source had none
}

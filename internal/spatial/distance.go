package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/ecorun/activity-backend-go/internal/models"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points in
// meters using the Haversine formula on a sphere of radius EarthRadiusMeters.
// Coordinates are degrees. No range validation is performed: out-of-range
// angles yield a mathematically defined, physically meaningless result.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Distance returns the great-circle distance in meters between two positions.
func Distance(a, b models.RawPosition) float64 {
	return HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

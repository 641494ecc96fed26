package kernel

import (
	"fmt"
	"math"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

const (
	// GeoLatitudeMin is the minimum valid latitude in degrees.
	GeoLatitudeMin = -90.0
	// GeoLatitudeMax is the maximum valid latitude in degrees.
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin is the minimum valid longitude in degrees.
	GeoLongitudeMin = -180.0
	// GeoLongitudeMax is the maximum valid longitude in degrees.
	GeoLongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the Haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a GPS position with validated coordinates.
// It is an immutable value object; the zero value is invalid and fails
// validation, so instances are always built through NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(5.3364, -4.0267)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(5.336400,-4.026700)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must lie within [-90, 90] and longitude within [-180, 180];
// an out-of-range value yields a ValueIsOutOfRangeError.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError(
			"latitude", latitude, GeoLatitudeMin, GeoLatitudeMax)
	}
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError(
			"longitude", longitude, GeoLongitudeMin, GeoLongitudeMax)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two geo points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// DistanceKmTo returns the great-circle distance in kilometers between two
// points, computed with the Haversine formula.
func (p GeoPoint) DistanceKmTo(other GeoPoint) float64 {
	dLat := toRadians(other.latitude - p.latitude)
	dLon := toRadians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(p.latitude))*math.Cos(toRadians(other.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EstimateMinutes converts a distance to a travel-time estimate in whole
// minutes at the given average speed, rounding up. Returns 0 when the speed
// is not positive.
func EstimateMinutes(distanceKm, averageSpeedKmh float64) int {
	if averageSpeedKmh <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / averageSpeedKmh * 60))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Package geo provides the great-circle distance used to weight edges
// between geographic points.
//
// Distance implements the haversine formula on a spherical Earth of radius
// EarthRadiusKm. Inputs are decimal degrees; the result is in kilometres and
// is always non-negative for valid coordinates.
//
// Complexity:
//
//   - Time:  O(1)
//   - Space: O(1)
//
// Errors:
//
//	None. NaN or out-of-range inputs are undefined behaviour; callers must
//	supply valid latitude/longitude pairs.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// degToRad converts decimal degrees to radians.
const degToRad = math.Pi / 180

// Distance returns the great-circle distance in kilometres between
// (lat1, lon1) and (lat2, lon2), all given in decimal degrees.
//
// Steps:
//  1. Convert the latitude and longitude deltas to radians.
//  2. a = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2)
//  3. c = 2 · atan2(√a, √(1−a))
//  4. return R · c
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*sinLon*sinLon
	a = math.Min(a, 1) // rounding can push nearly antipodal points just above 1
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 // latitude, [-90, 90]
	Lon float64 // longitude, [-180, 180]
}

// DistanceTo returns the haversine distance in kilometres from c to other.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return Distance(c.Lat, c.Lon, other.Lat, other.Lon)
}

// String implements fmt.Stringer so %v and %s print "(lat, lon)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.5f, %.5f)", c.Lat, c.Lon)
}

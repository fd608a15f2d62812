// Package geo implements great-circle distance math for location queries.
package geo

import "math"

// earthRadiusMiles is the spherical Earth radius used by the haversine formula.
const earthRadiusMiles = 3959.0

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceMiles returns the great-circle distance between a and b in miles,
// computed with the haversine formula. The function is symmetric and returns
// exactly zero when a == b.
func DistanceMiles(a, b Coordinate) float64 {
	if a == b {
		return 0
	}

	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLon*sinLon

	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

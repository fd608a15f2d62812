// Package catalog holds the read-only collection of wellness locations and
// the sources it can be provisioned from at startup (embedded seed, JSON
// file, or an S3 object). Locations are immutable once loaded.
package catalog

import "github.com/avoronkov/wellfinder/internal/geo"

// Location is a single point of interest. Rating and Address are optional.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating,omitempty"`
	Address     string  `json:"address,omitempty"`
}

// Coordinate returns the location's position as a geo.Coordinate.
func (l *Location) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: l.Latitude, Lon: l.Longitude}
}

package listing

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

const earthRadiusKm = 6371.0

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// PointFrom returns a point when both coordinates are present.
func PointFrom(lat, lng *float64) (Point, bool) {
	if lat == nil || lng == nil {
		return Point{}, false
	}
	return Point{Lat: *lat, Lng: *lng}, true
}

// ValidCoordinates reports whether lat/lng are within WGS84 bounds. Both must
// be set or both unset.
func ValidCoordinates(lat, lng *float64) bool {
	if lat == nil && lng == nil {
		return true
	}
	if lat == nil || lng == nil {
		return false
	}
	return *lat >= -90 && *lat <= 90 && *lng >= -180 && *lng <= 180
}

// DistanceKm is the haversine distance between two points.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// MapsURL builds a Google Maps search link. Coordinates win over the text
// query; an empty string means there is nothing to link to.
func MapsURL(lat, lng *float64, query string) string {
	var q string
	if p, ok := PointFrom(lat, lng); ok {
		q = fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
	} else {
		q = strings.TrimSpace(query)
	}
	if q == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(q)
}

package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the fixed spherical Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// ErrMalformedCoordinates is returned when a location is not a "lat,lon" pair.
var ErrMalformedCoordinates = errors.New("malformed coordinates")

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String renders the point in the "lat,lon" form it is parsed from.
func (p Point) String() string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}

// ParseCoordinates parses a "lat,lon" string such as "40.7128,-74.0060".
func ParseCoordinates(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: expected 2 comma-separated values in %q", ErrMalformedCoordinates, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: latitude %q is not numeric", ErrMalformedCoordinates, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: longitude %q is not numeric", ErrMalformedCoordinates, parts[1])
	}

	if math.IsNaN(lat) || math.IsNaN(lon) {
		return Point{}, fmt.Errorf("%w: %q is not a number pair", ErrMalformedCoordinates, s)
	}
	if lat < -90 || lat > 90 {
		return Point{}, fmt.Errorf("%w: latitude %v out of range", ErrMalformedCoordinates, lat)
	}
	if lon < -180 || lon > 180 {
		return Point{}, fmt.Errorf("%w: longitude %v out of range", ErrMalformedCoordinates, lon)
	}

	return Point{Latitude: lat, Longitude: lon}, nil
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(from, to Point) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

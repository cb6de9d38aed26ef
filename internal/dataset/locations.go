package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hospital-reception-backend/pkg/geo"
)

// LocationEntry is where a hospital is, both as a place name and as coordinates.
type LocationEntry struct {
	PlaceLabel string  `yaml:"place_label" json:"place_label"`
	Latitude   float64 `yaml:"latitude" json:"latitude"`
	Longitude  float64 `yaml:"longitude" json:"longitude"`
}

// Coordinates renders the entry as the "lat,lon" text stored in the location column.
func (e LocationEntry) Coordinates() string {
	return geo.Point{Latitude: e.Latitude, Longitude: e.Longitude}.String()
}

// LocationMapping maps hospital_id to its location.
type LocationMapping map[string]LocationEntry

type locationFile struct {
	Hospitals LocationMapping `yaml:"hospitals"`
}

// DefaultLocationMapping is used when no mapping file is configured.
func DefaultLocationMapping() LocationMapping {
	return LocationMapping{
		"H001": {PlaceLabel: "New York, NY", Latitude: 40.7128, Longitude: -74.0060},
		"H002": {PlaceLabel: "Los Angeles, CA", Latitude: 34.0522, Longitude: -118.2437},
		"H003": {PlaceLabel: "Chicago, IL", Latitude: 41.8781, Longitude: -87.6298},
		"H004": {PlaceLabel: "Houston, TX", Latitude: 29.7604, Longitude: -95.3698},
		"H005": {PlaceLabel: "Phoenix, AZ", Latitude: 33.4484, Longitude: -112.0740},
	}
}

// LoadLocationMapping reads a YAML mapping file. An empty path yields the default mapping;
// on read failure the default mapping is returned together with the error.
func LoadLocationMapping(path string) (LocationMapping, error) {
	if path == "" {
		return DefaultLocationMapping(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return DefaultLocationMapping(), err
	}

	var file locationFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse location mapping %s: %w", path, err)
	}
	if len(file.Hospitals) == 0 {
		return nil, fmt.Errorf("location mapping %s is empty", path)
	}
	return file.Hospitals, nil
}

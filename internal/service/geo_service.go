package service

import (
	"fmt"

	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/pkg/geo"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

type distanceKey struct {
	from, to string
}

// GeoService resolves hospital coordinates and great-circle distances.
// Distances are memoised per unordered pair of names.
type GeoService struct {
	metricRepo *repository.HospitalMetricRepository
	cache      *lru.Cache[distanceKey, models.HospitalDistance]
	logger     *zap.Logger
}

// NewGeoService creates the service; cacheSize <= 0 disables memoisation.
func NewGeoService(metricRepo *repository.HospitalMetricRepository, cacheSize int, logger *zap.Logger) (*GeoService, error) {
	s := &GeoService{
		metricRepo: metricRepo,
		logger:     logger,
	}
	if cacheSize > 0 {
		cache, err := lru.New[distanceKey, models.HospitalDistance](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create distance cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Location parses the hospital's "lat,lon" location
func (s *GeoService) Location(name string) (*models.HospitalLocation, error) {
	rows, err := hospitalRows(s.metricRepo, name)
	if err != nil {
		return nil, err
	}

	m := rows[0]
	point, err := geo.ParseCoordinates(m.Location)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid location format for %s: %v", m.HospitalName, err)
	}

	return &models.HospitalLocation{
		HospitalID:   m.HospitalID,
		HospitalName: m.HospitalName,
		Location:     m.Location,
		PlaceLabel:   m.PlaceLabel,
		Region:       m.Region,
		Latitude:     point.Latitude,
		Longitude:    point.Longitude,
	}, nil
}

// Distance returns the haversine distance between two hospitals, rounded to 2 decimals
func (s *GeoService) Distance(from, to string) (*models.HospitalDistance, error) {
	// compute in a canonical order so both directions share one cache entry and one value
	key := distanceKey{from: from, to: to}
	swapped := to < from
	if swapped {
		key = distanceKey{from: to, to: from}
	}

	dist, ok := s.cached(key)
	if !ok {
		a, err := s.Location(key.from)
		if err != nil {
			return nil, err
		}
		b, err := s.Location(key.to)
		if err != nil {
			return nil, err
		}

		dist = models.HospitalDistance{
			FromHospital:    a.HospitalName,
			ToHospital:      b.HospitalName,
			DistanceKm:      geo.Round2(geo.Haversine(a.Point(), b.Point())),
			FromCoordinates: a.Point(),
			ToCoordinates:   b.Point(),
		}
		if s.cache != nil {
			s.cache.Add(key, dist)
		}
	}

	if swapped {
		dist.FromHospital, dist.ToHospital = dist.ToHospital, dist.FromHospital
		dist.FromCoordinates, dist.ToCoordinates = dist.ToCoordinates, dist.FromCoordinates
	}
	return &dist, nil
}

func (s *GeoService) cached(key distanceKey) (models.HospitalDistance, bool) {
	if s.cache == nil {
		return models.HospitalDistance{}, false
	}
	return s.cache.Get(key)
}

// AllPairwiseDistances computes the distance of every pair of distinct hospitals,
// once per pair (lower hospital id first). Pairs that cannot be resolved are skipped.
// Runs in O(n^2) for n hospitals.
func (s *GeoService) AllPairwiseDistances() *models.DistanceMatrix {
	type hospital struct{ id, name string }

	seen := make(map[string]bool)
	var hospitals []hospital
	for _, m := range s.metricRepo.All() {
		if !seen[m.HospitalID] {
			seen[m.HospitalID] = true
			hospitals = append(hospitals, hospital{id: m.HospitalID, name: m.HospitalName})
		}
	}

	matrix := &models.DistanceMatrix{Distances: []models.HospitalDistance{}}
	for _, a := range hospitals {
		for _, b := range hospitals {
			if a.id >= b.id {
				continue
			}
			dist, err := s.Distance(a.name, b.name)
			if err != nil {
				s.logger.Debug("Skipping hospital pair",
					zap.String("from", a.name),
					zap.String("to", b.name),
					zap.Error(err),
				)
				continue
			}
			matrix.Distances = append(matrix.Distances, *dist)
		}
	}
	matrix.TotalPairs = len(matrix.Distances)
	return matrix
}

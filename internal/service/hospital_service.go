package service

import (
	"sort"

	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
)

type HospitalService struct {
	metricRepo *repository.HospitalMetricRepository
}

func NewHospitalService(metricRepo *repository.HospitalMetricRepository) *HospitalService {
	return &HospitalService{
		metricRepo: metricRepo,
	}
}

// Count returns the number of distinct hospitals
func (s *HospitalService) Count() int {
	return len(s.Names())
}

// Names returns each distinct hospital once, in order of first appearance
func (s *HospitalService) Names() []models.HospitalSummary {
	seen := make(map[string]bool)
	summaries := []models.HospitalSummary{}
	for _, m := range s.metricRepo.All() {
		if seen[m.HospitalID] {
			continue
		}
		seen[m.HospitalID] = true
		summaries = append(summaries, models.HospitalSummary{
			HospitalID:   m.HospitalID,
			HospitalName: m.HospitalName,
			Location:     m.Location,
			PlaceLabel:   m.PlaceLabel,
			Coordinates:  m.Coordinates,
		})
	}
	return summaries
}

// DetailsByDate returns the full record of a hospital on one date
func (s *HospitalService) DetailsByDate(name, date string) (*models.HospitalMetric, error) {
	date, err := requireQuery("date", date)
	if err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	rows, err := hospitalRows(s.metricRepo, name)
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		if m.Date == date {
			return &m, nil
		}
	}
	return nil, apperrors.NotFoundf("No data found for %s on %s", rows[0].HospitalName, date)
}

// DateRange reports the distinct dates covered by the time series
func (s *HospitalService) DateRange() (*models.DateRange, error) {
	if s.metricRepo.Empty() || s.metricRepo.Count() == 0 {
		return nil, apperrors.EmptyStore(s.metricRepo.Dataset())
	}

	seen := make(map[string]bool)
	dates := []string{}
	for _, m := range s.metricRepo.All() {
		if !seen[m.Date] {
			seen[m.Date] = true
			dates = append(dates, m.Date)
		}
	}
	// YYYY-MM-DD sorts chronologically as text
	sort.Strings(dates)

	return &models.DateRange{
		StartDate: dates[0],
		EndDate:   dates[len(dates)-1],
		TotalDays: len(dates),
		AllDates:  dates,
	}, nil
}

package service

import (
	"strings"
	"time"

	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
)

// containsFold is the case-insensitive substring test used by every text lookup.
func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

// requireQuery rejects blank lookup keys; an empty needle would match every row.
func requireQuery(param, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.InvalidInput("%s is required", param)
	}
	return value, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return apperrors.InvalidInput("date '%s' must be in YYYY-MM-DD format", date)
	}
	return nil
}

// hospitalRows returns every time-series row of a hospital, matched exactly by name.
func hospitalRows(repo *repository.HospitalMetricRepository, name string) ([]models.HospitalMetric, error) {
	name, err := requireQuery("hospital name", name)
	if err != nil {
		return nil, err
	}
	if repo.Empty() {
		return nil, apperrors.EmptyStore(repo.Dataset())
	}
	rows := repo.Matching(func(m models.HospitalMetric) bool { return m.HospitalName == name })
	if len(rows) == 0 {
		return nil, apperrors.NotFound("Hospital", name)
	}
	return rows, nil
}

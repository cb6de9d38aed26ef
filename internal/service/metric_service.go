package service

import (
	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
)

type MetricService struct {
	metricRepo *repository.HospitalMetricRepository
}

func NewMetricService(metricRepo *repository.HospitalMetricRepository) *MetricService {
	return &MetricService{
		metricRepo: metricRepo,
	}
}

// ColumnNames returns every column of the hospital dataset in file order
func (s *MetricService) ColumnNames() []string {
	columns := s.metricRepo.Columns()
	if columns == nil {
		return []string{}
	}
	return columns
}

// ColumnValue reads one column for a hospital. With a date it returns that day's value,
// without one the full series in dataset order.
func (s *MetricService) ColumnValue(name, column, date string) (*models.ColumnValue, error) {
	if s.metricRepo.Empty() {
		return nil, apperrors.EmptyStore(s.metricRepo.Dataset())
	}
	column, err := requireQuery("column name", column)
	if err != nil {
		return nil, err
	}
	if !s.metricRepo.HasColumn(column) {
		return nil, apperrors.InvalidInput("Column '%s' not found", column)
	}

	rows, err := hospitalRows(s.metricRepo, name)
	if err != nil {
		return nil, err
	}
	hospitalName := rows[0].HospitalName
	raw := s.metricRepo.RawMatching(func(m models.HospitalMetric) bool { return m.HospitalName == hospitalName })

	result := &models.ColumnValue{HospitalName: hospitalName, Column: column}

	if date != "" {
		if err := validateDate(date); err != nil {
			return nil, err
		}
		for _, row := range raw {
			if row.Get("date") == date {
				result.Date = date
				result.Value = dataset.Scalar(row.Get(column))
				return result, nil
			}
		}
		return nil, apperrors.NotFoundf("No data found for %s on %s", hospitalName, date)
	}

	result.Values = make([]models.DatedValue, 0, len(raw))
	for _, row := range raw {
		result.Values = append(result.Values, models.DatedValue{
			Date:  row.Get("date"),
			Value: dataset.Scalar(row.Get(column)),
		})
	}
	return result, nil
}

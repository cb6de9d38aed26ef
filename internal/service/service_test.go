package service

import (
	"errors"
	"path/filepath"
	"testing"

	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type services struct {
	hospital   *HospitalService
	department *DepartmentService
	doctor     *DoctorService
	patient    *PatientService
	geo        *GeoService
	metric     *MetricService
}

func newServices(t *testing.T, dir string) services {
	t.Helper()
	logger := zap.NewNop()
	path := func(name string) dataset.Source {
		if dir == "" {
			return dataset.OpenSource(testutil.FixturePath(name))
		}
		return dataset.OpenSource(filepath.Join(dir, name))
	}

	metrics, err := repository.LoadHospitalMetrics(path(testutil.HospitalTrends), nil, false, logger)
	require.NoError(t, err)
	departments, err := repository.LoadDepartments(path(testutil.Departments), logger)
	require.NoError(t, err)
	doctors, err := repository.LoadDoctors(path(testutil.Doctors), logger)
	require.NoError(t, err)
	patients, err := repository.LoadPatients(path(testutil.Patients), logger)
	require.NoError(t, err)

	geoService, err := NewGeoService(metrics, 16, logger)
	require.NoError(t, err)

	return services{
		hospital:   NewHospitalService(metrics),
		department: NewDepartmentService(departments),
		doctor:     NewDoctorService(doctors),
		patient:    NewPatientService(patients),
		geo:        geoService,
		metric:     NewMetricService(metrics),
	}
}

func fixtureServices(t *testing.T) services {
	return newServices(t, "")
}

// emptyServices loads from a directory with no dataset files.
func emptyServices(t *testing.T) services {
	return newServices(t, t.TempDir())
}

func assertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind, appErr.Message)
}

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hospital-reception-backend/internal/apperrors"
	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/models"
	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	entries []models.QueryLog
	err     error
}

func (f *fakeRecorder) CreateQueryLog(_ context.Context, entry *models.QueryLog) error {
	f.entries = append(f.entries, *entry)
	return f.err
}

// Thursday
var fixedNow = time.Date(2024, time.October, 24, 9, 30, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	logger := zap.NewNop()

	metrics, err := repository.LoadHospitalMetrics(dataset.OpenSource(testutil.FixturePath(testutil.HospitalTrends)), nil, false, logger)
	require.NoError(t, err)
	departments, err := repository.LoadDepartments(dataset.OpenSource(testutil.FixturePath(testutil.Departments)), logger)
	require.NoError(t, err)
	doctors, err := repository.LoadDoctors(dataset.OpenSource(testutil.FixturePath(testutil.Doctors)), logger)
	require.NoError(t, err)
	patients, err := repository.LoadPatients(dataset.OpenSource(testutil.FixturePath(testutil.Patients)), logger)
	require.NoError(t, err)

	svc, err := NewServices(metrics, departments, doctors, patients, 16, logger)
	require.NoError(t, err)

	r := NewRegistry(svc, logger)
	r.now = func() time.Time { return fixedNow }
	return r
}

func assertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind, appErr.Message)
}

func TestCatalogue(t *testing.T) {
	r := newTestRegistry(t)

	all := r.Tools()
	assert.Len(t, all, 25)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		assert.True(t, prev.Group < cur.Group || (prev.Group == cur.Group && prev.Name < cur.Name),
			"%s/%s listed before %s/%s", prev.Group, prev.Name, cur.Group, cur.Name)
	}

	tool, ok := r.Lookup("get_column_value")
	require.True(t, ok)
	assert.Equal(t, GroupHospital, tool.Group)
	require.Len(t, tool.Params, 3)
	assert.Equal(t, KindDate, tool.Params[2].Kind)
	assert.False(t, tool.Params[2].Required)

	_, ok = r.Lookup("book_appointment")
	assert.False(t, ok)
}

func TestInvokeHospitalTools(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Invoke(ctx, "get_hospital_count", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": 3}, result)

	result, err = r.Invoke(ctx, "get_hospital_details_by_date", Args{"hospital_name": "City General", "date": "2024-10-20"})
	require.NoError(t, err)
	metric := result.(*models.HospitalMetric)
	assert.Equal(t, 460, metric.BedsOccupied)

	result, err = r.Invoke(ctx, "calculate_distance_between_hospitals", Args{"hospital_name1": "City General", "hospital_name2": "Metro Health"})
	require.NoError(t, err)
	assert.InDelta(t, 3935.75, result.(*models.HospitalDistance).DistanceKm, 1.0)

	_, err = r.Invoke(ctx, "get_hospital_details_by_date", Args{"hospital_name": "Nowhere", "date": "2024-10-20"})
	assertKind(t, err, apperrors.KindNotFound)
}

func TestInvokeValidatesArguments(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	_, err := r.Invoke(ctx, "book_appointment", nil)
	assertKind(t, err, apperrors.KindNotFound)

	_, err = r.Invoke(ctx, "find_patient", Args{})
	assertKind(t, err, apperrors.KindInvalidInput)

	_, err = r.Invoke(ctx, "find_patient", Args{"patient_name": "   "})
	assertKind(t, err, apperrors.KindInvalidInput)

	_, err = r.Invoke(ctx, "get_hospital_count", Args{"hospital_name": "City General"})
	assertKind(t, err, apperrors.KindInvalidInput)

	_, err = r.Invoke(ctx, "get_hospital_details_by_date", Args{"hospital_name": "City General", "date": "banana"})
	assertKind(t, err, apperrors.KindInvalidInput)
}

func TestInvokeNormalizesDates(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Invoke(ctx, "get_column_value", Args{
		"hospital_name": "City General",
		"column_name":   "emergency_visits",
		"date":          "October 21, 2024",
	})
	require.NoError(t, err)
	value := result.(*models.ColumnValue)
	assert.Equal(t, "2024-10-21", value.Date)
	assert.EqualValues(t, 130, value.Value)

	date, err := r.normalizeDate("2024-10-20")
	require.NoError(t, err)
	assert.Equal(t, "2024-10-20", date)
}

func TestAvailableDoctorsDefaultsToToday(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Invoke(ctx, "get_available_doctors_today", nil)
	require.NoError(t, err)
	today := result.(map[string]any)
	assert.Equal(t, "Thursday", today["day"])

	names := func(v any) []string {
		out := []string{}
		for _, d := range v.([]models.Doctor) {
			out = append(out, d.DoctorName)
		}
		return out
	}
	assert.ElementsMatch(t, []string{"Dr. Michael Chen", "Dr. Emily Carter", "Dr. Robert Sunderland"}, names(today["doctors"]))

	result, err = r.Invoke(ctx, "get_available_doctors_today", Args{"day": "today"})
	require.NoError(t, err)
	assert.Equal(t, today, result)

	result, err = r.Invoke(ctx, "get_available_doctors_today", Args{"day": "sat"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Aisha Patel"}, names(result.(map[string]any)["doctors"]))

	_, err = r.Invoke(ctx, "get_available_doctors_today", Args{"day": "Someday"})
	assertKind(t, err, apperrors.KindInvalidInput)
}

func TestInvokeRecordsQueryLog(t *testing.T) {
	r := newTestRegistry(t)
	rec := &fakeRecorder{}
	r.SetRecorder(rec)

	ctx := WithRequestID(context.Background(), "req-1")
	_, err := r.Invoke(ctx, "find_patient_by_room", Args{"room_number": "301"})
	require.NoError(t, err)
	_, err = r.Invoke(ctx, "find_patient_by_room", Args{"room_number": "999"})
	require.Error(t, err)

	require.Len(t, rec.entries, 2)
	first := rec.entries[0]
	assert.Equal(t, "req-1", first.RequestID)
	assert.Equal(t, "find_patient_by_room", first.Tool)
	assert.Equal(t, "OK", first.Outcome)

	var args map[string]string
	require.NoError(t, json.Unmarshal([]byte(first.Arguments), &args))
	assert.Equal(t, map[string]string{"room_number": "301"}, args)

	assert.Equal(t, string(apperrors.KindNotFound), rec.entries[1].Outcome)
}

func TestRecorderFailureDoesNotFailInvocation(t *testing.T) {
	r := newTestRegistry(t)
	r.SetRecorder(&fakeRecorder{err: errors.New("connection refused")})

	result, err := r.Invoke(context.Background(), "get_hospital_count", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": 3}, result)
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
}

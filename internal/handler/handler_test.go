package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/middleware"
	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/internal/testutil"
	"hospital-reception-backend/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func newTestRouter(t *testing.T, dir string) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	source := func(name string) dataset.Source {
		if dir == "" {
			return dataset.OpenSource(testutil.FixturePath(name))
		}
		return dataset.OpenSource(filepath.Join(dir, name))
	}

	metrics, err := repository.LoadHospitalMetrics(source(testutil.HospitalTrends), nil, false, logger)
	require.NoError(t, err)
	departments, err := repository.LoadDepartments(source(testutil.Departments), logger)
	require.NoError(t, err)
	doctors, err := repository.LoadDoctors(source(testutil.Doctors), logger)
	require.NoError(t, err)
	patients, err := repository.LoadPatients(source(testutil.Patients), logger)
	require.NoError(t, err)

	svc, err := tools.NewServices(metrics, departments, doctors, patients, 16, logger)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	RegisterRoutes(r.Group("/api/v1"), svc, tools.NewRegistry(svc, logger))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) (int, envelope) {
	t.Helper()
	return do(t, r, httptest.NewRequest(http.MethodGet, path, nil))
}

func do(t *testing.T, r *gin.Engine, req *http.Request) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestHospitalRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	code, body := get(t, r, "/api/v1/hospitals/count")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"count":3}`, string(body.Data))

	code, body = get(t, r, "/api/v1/hospitals/"+url.PathEscape("City General")+"/details?date=2024-10-20")
	require.Equal(t, http.StatusOK, code)
	var details struct {
		HospitalID   string `json:"hospital_id"`
		BedsOccupied int    `json:"beds_occupied"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &details))
	assert.Equal(t, "H001", details.HospitalID)
	assert.Equal(t, 460, details.BedsOccupied)

	code, body = get(t, r, "/api/v1/hospitals/"+url.PathEscape("Lakeside Medical")+"/details?date=2024-10-22")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Code)

	code, body = get(t, r, "/api/v1/hospitals/"+url.PathEscape("City General")+"/details?date=20-10-2024")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body.Code)

	code, body = get(t, r, "/api/v1/hospitals/date-range")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"start_date":"2024-10-20"`)
	assert.Contains(t, string(body.Data), `"end_date":"2024-10-22"`)
}

func TestColumnAndDistanceRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	code, body := get(t, r, "/api/v1/hospitals/"+url.PathEscape("City General")+"/columns/emergency_visits?date=2024-10-21")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"value":130`)

	code, body = get(t, r, "/api/v1/hospitals/"+url.PathEscape("City General")+"/columns/wait_time")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body.Code)

	code, body = get(t, r, "/api/v1/hospitals/distance?from="+url.QueryEscape("City General")+"&to="+url.QueryEscape("Metro Health"))
	require.Equal(t, http.StatusOK, code)
	var distance struct {
		DistanceKm float64 `json:"distance_km"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &distance))
	assert.InDelta(t, 3935.75, distance.DistanceKm, 1.0)

	code, body = get(t, r, "/api/v1/hospitals/distances")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"total_pairs":3`)
}

func TestLookupRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	code, body := get(t, r, "/api/v1/departments?building="+url.QueryEscape("west wing"))
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"count":2`)

	code, _ = get(t, r, "/api/v1/departments/cardio")
	assert.Equal(t, http.StatusOK, code)

	code, body = get(t, r, "/api/v1/doctors?day=Saturday")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), "Aisha Patel")

	code, body = get(t, r, "/api/v1/doctors?day=Funday")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body.Code)

	code, body = get(t, r, "/api/v1/rooms/301/patient")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), "John Smith")

	code, _ = get(t, r, "/api/v1/rooms/999/patient")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = get(t, r, "/api/v1/patients?doctor_id=D001")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"count":2`)

	code, _ = get(t, r, "/api/v1/patients/"+url.PathEscape("Maria")+"/directions")
	assert.Equal(t, http.StatusOK, code)
}

func TestEmptyStoreRoutes(t *testing.T) {
	r := newTestRouter(t, t.TempDir())

	code, body := get(t, r, "/api/v1/patients")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"patients":[],"count":0}`, string(body.Data))

	code, body = get(t, r, "/api/v1/patients/john")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "EMPTY_STORE", body.Code)

	code, body = get(t, r, "/api/v1/hospitals/date-range")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "EMPTY_STORE", body.Code)
}

func TestToolRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	code, body := get(t, r, "/api/v1/tools")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"count":25`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/find_patient_by_room", strings.NewReader(`{"room_number":"301"}`))
	req.Header.Set("Content-Type", "application/json")
	code, body = do(t, r, req)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"tool":"find_patient_by_room"`)
	assert.Contains(t, string(body.Data), "John Smith")

	code, body = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/tools/get_hospital_count", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"count":3`)

	code, _ = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/tools/find_patient", strings.NewReader(`{"patient_name": 7}`)))
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/tools/book_appointment", nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

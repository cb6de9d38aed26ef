package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordToolInvocation(t *testing.T) {
	before := testutil.ToFloat64(toolInvocations.WithLabelValues("find_patient", "NOT_FOUND"))

	RecordToolInvocation("find_patient", "NOT_FOUND", time.Millisecond)
	RecordToolInvocation("find_patient", "NOT_FOUND", time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(toolInvocations.WithLabelValues("find_patient", "NOT_FOUND")))
}

func TestRequestStarted(t *testing.T) {
	done := RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsInFlight))

	done(http.MethodGet, "/api/v1/hospitals", http.StatusOK)
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/hospitals", "200")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	SetDatasetRecords("Doctor", 5)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hospital_dataset_records{dataset="Doctor"} 5`)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-reception-backend/internal/config"
	"hospital-reception-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		subject, _ := c.Get(ContextSubject)
		c.String(http.StatusOK, "%v", subject)
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestServiceAuthOpenWithoutCredentials(t *testing.T) {
	r := newRouter(ServiceAuth(config.AuthConfig{}))

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServiceAuthBearerToken(t *testing.T) {
	utils.InitJWT("middleware-secret", time.Hour)
	r := newRouter(ServiceAuth(config.AuthConfig{ServiceTokenSecret: "middleware-secret"}))

	token, err := utils.GenerateServiceToken("reception-agent", "agent", 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reception-agent", rec.Body.String())

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
}

func TestServiceAuthAPIKey(t *testing.T) {
	key, hash, err := utils.GenerateAPIKey()
	require.NoError(t, err)
	r := newRouter(ServiceAuth(config.AuthConfig{APIKeyHashes: []string{hash}}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-API-Key", key)
	rec := serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "api-key", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-API-Key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	// no token secret configured, so bearer tokens are refused
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer anything")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	given := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, given)
	assert.Equal(t, given, serve(r, req).Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	assert.NotEqual(t, "<script>", serve(r, req).Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}}
	r := newRouter(CORS(cfg), Metrics())

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := serve(r, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, X-API-Key, X-Request-ID", rec.Header().Get("Access-Control-Allow-Headers"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSUsesConfiguredMethodsAndHeaders(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{
		AllowedOrigins: []string{"https://reception.example.org"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Content-Type", "X-API-Key"},
	}}
	r := newRouter(CORS(cfg))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://reception.example.org")
	rec := serve(r, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-API-Key", rec.Header().Get("Access-Control-Allow-Headers"))
}

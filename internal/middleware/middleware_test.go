package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sacvietnam/storefront/internal/apiclient"
	"github.com/sacvietnam/storefront/internal/metrics"
	"github.com/sacvietnam/storefront/internal/pricing"
	"github.com/sacvietnam/storefront/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", service.ValidationErrors{{Field: "name", Message: "Please input Product Name"}}, http.StatusBadRequest, "validation failed"},
		{"invalid discount", fmt.Errorf("preview: %w", pricing.ErrInvalidArgument), http.StatusBadRequest, "invalid price or discount"},
		{"remote not found", &service.RemoteError{Message: "failed to load product", Err: &apiclient.APIError{Status: 404}}, http.StatusNotFound, "product not found"},
		{"remote failure", &service.RemoteError{Message: "Failed to create product", Err: errors.New("dial tcp")}, http.StatusBadGateway, "Failed to create product"},
		{"remote bad pricing", &service.RemoteError{Message: "product has invalid pricing", Err: fmt.Errorf("preview: %w", pricing.ErrInvalidArgument)}, http.StatusBadGateway, "product has invalid pricing"},
		{"key reused", service.ErrIdempotencyConflict, http.StatusConflict, service.ErrIdempotencyConflict.Error()},
		{"key in flight", fmt.Errorf("create: %w", service.ErrSubmissionInFlight), http.StatusConflict, "create: " + service.ErrSubmissionInFlight.Error()},
		{"no rows", fmt.Errorf("latest release: %w", pgx.ErrNoRows), http.StatusNotFound, "resource not found"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "resource already exists"},
		{"check violation", &pgconn.PgError{Code: "23514"}, http.StatusBadRequest, "constraint violation"},
		{"misuse", apiclient.ErrConstructionForbidden, http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, resp.Error)
		})
	}
}

func TestErrorHandler_WritesMappedError(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.POST("/products", func(c *gin.Context) {
		_ = c.Error(service.ValidationErrors{
			{Field: "name", Message: "Please input Product Name"},
			{Field: "description", Message: "Please input Product Description"},
		})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "description", body.Errors[1].Field)
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		_ = c.Error(errors.New("after write"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestLogger_LevelsByStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	router := gin.New()
	router.Use(Logger())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	levels := map[string]string{}
	for _, path := range []string{"/ok", "/missing", "/broken"} {
		buf.Reset()
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path+"?lang=vi", nil))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, path, entry["path"])
		assert.Equal(t, "lang=vi", entry["query"])
		levels[path] = entry["level"].(string)
	}

	assert.Equal(t, map[string]string{"/ok": "info", "/missing": "warn", "/broken": "error"}, levels)
}

func TestLogger_RequestID(t *testing.T) {
	prev := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = prev })

	router := gin.New()
	router.Use(Logger())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetrics_CountsByRoute(t *testing.T) {
	m := metrics.NewServerMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/api/v1/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	var out dto.Metric
	require.NoError(t, m.Requests.WithLabelValues("/api/v1/products/:id", "200").Write(&out))
	assert.Equal(t, 2.0, out.GetCounter().GetValue())

	require.NoError(t, m.Requests.WithLabelValues("unmatched", "404").Write(&out))
	assert.Equal(t, 1.0, out.GetCounter().GetValue())
}

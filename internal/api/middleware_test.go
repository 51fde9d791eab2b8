package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMiddleware(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/me", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]interface{}](t, rec)
	assert.Equal(t, false, me["authenticated"])

	rec = s.do(t, http.MethodGet, "/api/v1/me", tokenFor(t, "user-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me = decode[map[string]interface{}](t, rec)
	assert.Equal(t, "user-1", me["subject"])
	assert.Equal(t, true, me["authenticated"])

	rec = s.do(t, http.MethodGet, "/api/v1/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: login", service.ErrUnauthenticated), http.StatusUnauthorized},
		{fmt.Errorf("%w: plan", service.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: plan", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: name", service.ErrInvalidArgument), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondServiceError(c, tt.err)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}

	// internal details are not leaked
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondServiceError(c, errors.New("mongo: secret topology detail"))
	assert.NotContains(t, rec.Body.String(), "topology")
}

func TestRequestMetricsAndID(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/ping", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	s.do(t, http.MethodGet, "/api/v1/plans", "", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CounterRequests.WithLabelValues(http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.CounterDenied.WithLabelValues("unauthenticated")))

	rec = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "backend_test_server_request"))
}

func TestMalformedIDs(t *testing.T) {
	s := newTestServer(t, nil)
	token := tokenFor(t, "user-1")

	for _, path := range []string{"/api/v1/plans/nope", "/api/v1/weeks/123/summary", "/api/v1/periods/x/progress"} {
		rec := s.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

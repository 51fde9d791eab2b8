package api

import (
	"alcyxob/fitness-tracker/internal/auth"
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Constants for context keys
const (
	ContextCallerKey    = "caller"
	ContextRequestIDKey = "requestID"

	requestIDHeader = "X-Request-ID"
)

// IdentityMiddleware resolves the bearer token into a domain.Caller.
// Requests without an Authorization header continue as an anonymous caller and
// the services decide what anonymous callers may do. A header that is present
// but does not hold a valid token is rejected.
func IdentityMiddleware(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(ContextCallerKey, domain.Caller{})
			c.Next()
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		caller, err := resolver.Resolve(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		c.Set(ContextCallerKey, caller)
		c.Next()
	}
}

// callerFromContext returns the caller set by IdentityMiddleware, or an anonymous caller.
func callerFromContext(c *gin.Context) domain.Caller {
	raw, exists := c.Get(ContextCallerKey)
	if !exists {
		return domain.Caller{}
	}
	caller, _ := raw.(domain.Caller)
	return caller
}

// RequestMetrics records request counts and durations.
func RequestMetrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.GaugeRequests.Inc()
		defer func(begin time.Time) {
			m.GaugeRequests.Dec()
			m.HistRequestDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		c.Next()

		status := c.Writer.Status()
		m.CounterRequests.With(prometheus.Labels{
			"method": c.Request.Method,
			"status": strconv.Itoa(status),
		}).Inc()
		switch status {
		case http.StatusUnauthorized:
			m.CounterDenied.WithLabelValues("unauthenticated").Inc()
		case http.StatusForbidden:
			m.CounterDenied.WithLabelValues("forbidden").Inc()
		}
	}
}

// RequestLogger tags each request with an ID and logs it once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		begin := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(begin).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondServiceError maps service errors onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.WithFields(log.Fields{
			"request_id": c.GetString(ContextRequestIDKey),
			"path":       c.FullPath(),
		}).WithError(err).Error("request failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// objectIDParam parses a hex ObjectID path parameter, aborting with 400 if it is malformed.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	return objectIDField(c, name, c.Param(name))
}

// objectIDField parses a hex ObjectID from a request body field.
func objectIDField(c *gin.Context, name, value string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// dateField parses an ISO-8601 date from a request body field.
func dateField(c *gin.Context, name, value string) (time.Time, bool) {
	t, err := domain.ParseDate(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+": "+err.Error())
		return time.Time{}, false
	}
	return t, true
}

// bindJSON binds the request body, aborting with 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}

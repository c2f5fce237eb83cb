// internal/api/middleware.go
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"unihub-api/internal/common/logger"
	"unihub-api/internal/common/metrics"
	"unihub-api/internal/common/observability"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWrapper captures the status code for logging and metrics.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// requestIDMiddleware tags each request with a short unique id.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs every request with its status and duration, and
// records the request metrics.
func loggingMiddleware(log logger.Logger, obs *observability.Observability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			status := strconv.Itoa(wrapper.statusCode)

			metrics.HTTPRequestsTotal.WithLabelValues(r.URL.Path, r.Method, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.URL.Path, r.Method).Observe(duration.Seconds())
			obs.RecordRequest(r.Context(), r.URL.Path, status)
			obs.RecordRequestDuration(r.Context(), r.URL.Path, duration)

			log.Info("request handled", map[string]interface{}{
				"requestId": r.Context().Value(requestIDKey),
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    wrapper.statusCode,
				"duration":  duration.String(),
				"remote":    r.RemoteAddr,
			})
		})
	}
}

// timeoutMiddleware bounds each request by the configured deadline.
func timeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// jsonContentTypeMiddleware sets the default response content type.
func jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

package middlewares

import (
	"net/http"
	"time"

	"gest35bi/logger"
)

const RequestIDHeader = "X-Request-ID"

const slowRequestThreshold = 500 * time.Millisecond

// RequestLogging tags each request with an id (reusing X-Request-ID when the
// caller sends one) and logs its outcome.
func RequestLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, requestID := logger.WithRequestID(r.Context(), r.Header.Get(RequestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, requestID)

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			duration := time.Since(start)
			entry := logger.ForContext(ctx).WithFields(logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				entry.Error("request failed")
			case lrw.statusCode >= http.StatusBadRequest:
				entry.Warn("request rejected")
			default:
				entry.Info("request completed")
			}

			if duration > slowRequestThreshold {
				entry.Warnf("slow request: %s", duration)
			}
		})
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

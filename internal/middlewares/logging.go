package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/metrics"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id LoggingMiddleware assigned to the request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LoggingMiddleware writes one access log entry and one metric sample per
// request. An incoming X-Request-ID is kept so the front-end can correlate
// a conversion with its logs; otherwise a UUID is generated.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" || len(reqID) > 64 {
			reqID = uuid.NewString()
		}

		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID))
		w.Header().Set(RequestIDHeader, reqID)

		next.ServeHTTP(rw, r)

		elapsed := time.Since(start)
		route := routePattern(r)
		metrics.ObserveHTTPRequest(route, r.Method, rw.status, elapsed)

		fields := []any{
			"request_id", reqID,
			"method", r.Method,
			"route", route,
			"uri", r.RequestURI,
			"status", rw.status,
			"bytes", rw.size,
			"duration", elapsed,
		}
		switch {
		case rw.status >= http.StatusInternalServerError:
			logger.Log.Errorw("request", fields...)
		case rw.status >= http.StatusBadRequest:
			logger.Log.Warnw("request", fields...)
		default:
			logger.Log.Infow("request", fields...)
		}
	})
}

// routePattern returns the chi route pattern, or "unmatched" outside a router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"cosmossdk.io/log"
	"github.com/armon/go-metrics"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/polypuls3/polypulse/types"
)

// HeaderRequestID carries the id of a request in both directions
const HeaderRequestID = "X-Request-Id"

type requestIDKey struct{}

// RequestID returns the id assigned to the request handled under ctx
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger assigns every request an id, unless the caller sent a valid one, and logs its outcome
func requestLogger(logger log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(HeaderRequestID, id)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

			route := "unknown"
			if current := mux.CurrentRoute(r); current != nil && current.GetName() != "" {
				route = current.GetName()
			}

			labels := []metrics.Label{{Name: "route", Value: route}, {Name: "status", Value: strconv.Itoa(rec.status)}}
			metrics.IncrCounterWithLabels([]string{types.ModuleName, "gateway", "requests"}, 1, labels)
			metrics.MeasureSinceWithLabels([]string{types.ModuleName, "gateway", "latency"}, start, labels)

			logger.Debug("handled request",
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

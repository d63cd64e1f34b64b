package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
)

var durationBuckets = metrics.ExponentialBuckets(1e-3, 5, 6)

// withMetrics counts requests and their durations per route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		labels := fmt.Sprintf(`{method=%q,path=%q,status="%d"}`, r.Method, routePattern(r), rec.Status())
		h.metrics.GetOrCreatePrometheusHistogramExt(`http_request_duration_seconds`+labels, durationBuckets).UpdateDuration(start)
		h.metrics.GetOrCreateCounter(`http_requests_total` + labels).Inc()
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func (h *Handler) writeMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	h.metrics.WritePrometheus(w)
	metrics.WriteProcessMetrics(w)
}

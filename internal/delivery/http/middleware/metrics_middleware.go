package middleware

import (
	"net/http"
	"strconv"
	"time"

	"maareeye-hospital/pkg/metrics"

	"github.com/gorilla/mux"
)

type MetricsMiddleware struct {
	metrics *metrics.Manager
}

func NewMetricsMiddleware(metrics *metrics.Manager) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle labels requests by route template, so it has to be installed with
// mux.Router.Use.
func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		m.metrics.IncInFlight()
		defer m.metrics.DecInFlight()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.metrics.RecordHTTPRequest(route, r.Method, strconv.Itoa(rec.status), time.Since(start))
	})
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/recommender/internal/metrics"
)

// accessLog logs each request and counts it by route pattern. Request
// bodies are never logged since they carry credentials.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()

		s.Logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"route":      route,
			"status":     status,
			"duration":   time.Since(start),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("Handled request")
	})
}

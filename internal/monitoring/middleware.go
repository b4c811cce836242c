// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/workflow-service/internal/logging"
)

type Middleware struct {
	monitor MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(monitor MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.monitor = monitor
	m.logger = logger

	return m
}

// ResponseTime records the duration of each request tagged with the chi
// route pattern and response status.
func (m *Middleware) ResponseTime() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(rw, r)
			elapsed := time.Since(start)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}

			tags := map[string]string{
				"route":  route,
				"method": r.Method,
				"status": strconv.Itoa(rw.statusCode),
			}

			if err := m.monitor.SetResponseTimeMetric(tags, elapsed.Seconds()); err != nil {
				m.logger.Errorf("failed to record response time: %v", err)
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

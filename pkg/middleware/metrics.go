package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/bakery-dashboard/internal/metrics"
)

// Instrument registra contagem e duração das requisições de uma rota.
// O label path é o padrão da rota, nunca o caminho recebido.
func Instrument(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(startTime).Seconds())
		})
	}
}

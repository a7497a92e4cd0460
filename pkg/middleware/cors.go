package middleware

import (
	"net/http"
)

// Origens sempre aceitas em desenvolvimento local
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8050",
}

func isOriginAllowed(allowedOrigins []string, origin string) bool {
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}
	return false
}

// Cors libera o painel e os endpoints operacionais para as origens configuradas em ALLOWED_ORIGINS
func Cors(origins []string) func(http.Handler) http.Handler {
	allowedOrigins := append(append([]string{}, defaultAllowedOrigins...), origins...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && isOriginAllowed(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, If-None-Match, X-Requested-With")
				w.Header().Set("Access-Control-Expose-Headers", "ETag, "+CorrelationIDHeader)
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/bakery-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/bakery-dashboard/pkg/apiErrors"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// GetDashboard serve a página do painel. O ETag é o ID do snapshot, que não muda
// enquanto o processo estiver de pé. Em modo debug a página é sempre renderizada de novo.
func GetDashboard(renderer rendering.Renderer, analyzer analyzing.Analyzer, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if debug {
			w.Header().Set("Cache-Control", "no-store")
		} else {
			etag := `"` + analyzer.Stats().ID + `"`
			w.Header().Set("ETag", etag)
			w.Header().Set("Cache-Control", "no-cache")

			if etagMatches(r.Header.Get("If-None-Match"), etag) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}

		page, err := renderer.Page()
		if err != nil {
			logger.WithError(err).Error("Erro ao renderizar o painel")

			// A causa só é exposta em modo debug
			apiErr := apiErrors.APIError{Code: apiErrors.ErrRenderDashboard, Message: "Erro ao renderizar o painel"}
			if debug {
				apiErr = apiErrors.FromError(err, apiErrors.ErrRenderDashboard)
			}
			apiErrors.WriteAPIError(w, apiErr)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		if _, err := w.Write(page); err != nil {
			logger.WithError(err).Warn("Erro ao enviar a página do painel")
		}
	}
}

// etagMatches aceita a lista separada por vírgulas do If-None-Match, com ou sem prefixo fraco
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}

	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

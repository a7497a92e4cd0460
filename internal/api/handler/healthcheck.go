package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/bakery-dashboard/pkg/apiErrors"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type healthcheckResponse struct {
	Status   string               `json:"status"`
	Time     time.Time            `json:"time"`
	Snapshot domain.SnapshotStats `json:"snapshot"`
}

func HealthcheckHandler(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		err := json.NewEncoder(w).Encode(healthcheckResponse{
			Status:   "ok",
			Time:     time.Now().UTC(),
			Snapshot: analyzer.Stats(),
		})
		if err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// NotFound responde rotas inexistentes no formato padrão de erro
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", r.URL.Path)
	})
}

func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", r.Method)
	})
}

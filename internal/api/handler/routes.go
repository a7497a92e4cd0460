package handler

import (
	"net/http"

	"github.com/vfg2006/bakery-dashboard/internal/api/handler/router"
	"github.com/vfg2006/bakery-dashboard/internal/metrics"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/bakery-dashboard/pkg/middleware"
)

func Healthcheck(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/healthcheck",
			Method:      http.MethodGet,
			Handler:     HealthcheckHandler(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.Instrument("/healthcheck")},
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(renderer rendering.Renderer, analyzer analyzing.Analyzer, debug bool) []router.Route {
	page := GetDashboard(renderer, analyzer, debug)

	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     page,
			Middlewares: []func(http.Handler) http.Handler{middleware.Instrument("/")},
		},
		{
			Path:        "/",
			Method:      http.MethodHead,
			Handler:     page,
			Middlewares: []func(http.Handler) http.Handler{middleware.Instrument("/")},
		},
	}
}

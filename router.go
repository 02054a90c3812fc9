package main

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.yaml
var openapiYAML []byte

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Use(a.datasetWarnings)

		api.Get("/sites", a.handleSites)
		api.Get("/overview", a.handleOverview)

		api.Route("/environment", func(er chi.Router) {
			er.Get("/summary", a.handleEnvironmentSummary)
			er.Get("/series", a.handleEnvironmentSeries)
			er.Get("/records", a.handleEnvironmentRecords)
		})

		api.Route("/growth", func(gr chi.Router) {
			gr.Get("/summary", a.handleGrowthSummary)
			gr.Get("/best", a.handleGrowthBest)
			gr.Get("/records", a.handleGrowthRecords)
		})

		api.Route("/export", func(xr chi.Router) {
			xr.Get("/environment.csv", a.handleExportEnvironmentCSV)
			xr.Get("/growth.xlsx", a.handleExportGrowthXLSX)
		})
	})

	return r
}

package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(s *Server, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))

	r.Get("/", s.Home)

	r.Route("/surveys", func(r chi.Router) {
		r.Get("/", s.List)

		r.Get("/create", s.CreateForm)
		r.Post("/create", s.Create)
		r.Get("/import", s.ImportForm)
		r.Post("/import", s.Import)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.Profile)
			r.Delete("/", s.Delete)
			r.Post("/delete", s.Delete)
			r.Post("/experts", s.SubmitExpert)
			r.Get("/export", s.Export)
			r.Get("/ranking", s.Ranking)
			r.Get("/ranking.xlsx", s.RankingXLSX)
		})
	})

	r.NotFound(s.NotFound)

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

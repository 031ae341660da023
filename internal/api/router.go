package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
	"github.com/MikeSquared-Agency/RentWise/internal/config"
	"github.com/MikeSquared-Agency/RentWise/internal/events"
)

func NewRouter(c *catalog.Catalog, p events.Publisher, m *Metrics, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger, m))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimit, m))

	neighborhoods := NewNeighborhoodsHandler(c)
	weights := NewWeightsHandler(p, m, cfg.Scoring.TopDriverCount, logger)
	scores := NewScoringHandler(c, p, m, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dimensions", neighborhoods.Dimensions)
		r.Get("/neighborhoods", neighborhoods.List)
		r.Get("/neighborhoods/{name}", neighborhoods.Get)

		r.Get("/weights/default", weights.Default)
		r.Post("/weights/normalize", weights.Normalize)
		r.Post("/weights/recommend", weights.Recommend)
		r.Post("/weights/adjust", weights.Adjust)
		r.Post("/drivers", weights.Drivers)

		r.Post("/score", scores.Score)
		r.Post("/compare", scores.Compare)
	})

	return r
}

func NewMetricsRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}

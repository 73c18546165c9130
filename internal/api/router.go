package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/mood-tracker/docs"
	"github.com/blaisecz/mood-tracker/internal/api/handler"
	"github.com/blaisecz/mood-tracker/internal/api/middleware"
	"github.com/blaisecz/mood-tracker/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	User         *handler.UserHandler
	MoodEntry    *handler.MoodEntryHandler
	JournalEntry *handler.JournalEntryHandler
	Mood         *handler.MoodHandler
	Insights     *handler.InsightsHandler
}

type Router struct {
	handlers Handlers
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// NewRouter creates a Router. A nil metrics disables request metrics and the
// /metrics endpoint.
func NewRouter(handlers Handlers, log *zap.Logger, m *metrics.Metrics) *Router {
	return &Router{
		handlers: handlers,
		log:      log,
		metrics:  m,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Tracing)
	r.Use(middleware.RequestLogger(rt.log))
	if rt.metrics != nil {
		r.Use(middleware.Metrics(rt.metrics))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if rt.metrics != nil {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.handlers.User.Create)
			r.Get("/{userId}", rt.handlers.User.GetByID)

			r.Route("/{userId}/mood-entries", func(r chi.Router) {
				r.Post("/", rt.handlers.MoodEntry.Create)
				r.Get("/", rt.handlers.MoodEntry.List)
				r.Patch("/{entryId}", rt.handlers.MoodEntry.Update)
			})

			r.Route("/{userId}/journal-entries", func(r chi.Router) {
				r.Post("/", rt.handlers.JournalEntry.Create)
				r.Get("/", rt.handlers.JournalEntry.List)
				r.Get("/{entryId}", rt.handlers.JournalEntry.GetByID)
			})

			r.Route("/{userId}/mood", func(r chi.Router) {
				r.Get("/data", rt.handlers.Mood.GetData)
				r.Get("/stats", rt.handlers.Mood.GetStats)
				r.Get("/insights", rt.handlers.Insights.GetInsights)
				r.Get("/insights/summary", rt.handlers.Insights.GetSummary)
				r.Post("/insights/feedback", rt.handlers.Insights.PostFeedback)
			})
		})
	})

	return r
}

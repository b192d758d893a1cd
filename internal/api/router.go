package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/doxalab/doxa/internal/api/handlers"
	mw "github.com/doxalab/doxa/internal/api/middleware"
	"github.com/doxalab/doxa/internal/buildconfig"
	"github.com/doxalab/doxa/internal/config"
	"github.com/doxalab/doxa/internal/domain"
	"github.com/doxalab/doxa/internal/events"
	"github.com/doxalab/doxa/internal/service"
	"github.com/doxalab/doxa/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and shared engine state for lifecycle management.
type App struct {
	Router    *chi.Mux
	Bus       *events.Bus
	graph     domain.GraphStore
	metrics   *mw.MetricsCollector
	startTime time.Time
}

func NewApp(logger *zap.Logger) *App {
	graphStore := store.NewGraphStore()
	bus := events.NewBus(logger)

	// Services
	beliefSvc := service.NewBeliefService(graphStore, bus, logger)
	querySvc := service.NewQueryService(graphStore, logger)
	reliabilitySvc := service.NewReliabilityService(graphStore, logger)

	// Handlers
	beliefHandler := handlers.NewBeliefHandler(beliefSvc)
	edgeHandler := handlers.NewEdgeHandler(beliefSvc)
	queryHandler := handlers.NewQueryHandler(querySvc)
	reliabilityHandler := handlers.NewReliabilityHandler(reliabilitySvc)
	graphHandler := handlers.NewGraphHandler(querySvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Bus:       bus,
		graph:     graphStore,
		metrics:   mw.NewMetricsCollector(),
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)                                                 // Generate/extract request ID first
	r.Use(middleware.RealIP)                                            // Extract real IP
	r.Use(app.metrics.Middleware)                                       // Collect metrics
	r.Use(mw.Logging(logger))                                           // Log all requests
	r.Use(middleware.Recoverer)                                         // Recover from panics
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst())) // Rate limiting

	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/beliefs", func(r chi.Router) {
			r.Post("/", beliefHandler.Create)
			r.Post("/{id}/archive", beliefHandler.Archive)
		})

		r.Post("/edges", edgeHandler.Create)
		r.Get("/query", queryHandler.Ask)
		r.Get("/reliability", reliabilityHandler.Get)

		r.Route("/graph", func(r chi.Router) {
			r.Get("/", graphHandler.Snapshot)
			r.Get("/dot", graphHandler.DOT)
		})
	})

	return app
}

// NewRouter returns just the chi.Mux for callers that do not need
// lifecycle state.
func NewRouter(logger *zap.Logger) *chi.Mux {
	return NewApp(logger).Router
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"version":        buildconfig.Version(),
			"uptime_seconds": time.Since(app.startTime).Seconds(),
		})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		beliefs, edges, err := app.graph.Counts(r.Context())
		if err != nil {
			writeErrorJSON(w, http.StatusInternalServerError, "failed to read graph counts")
			return
		}

		response := map[string]any{
			"build":          buildconfig.VersionInfo(),
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.metrics.Requests(),
			"error_count":    app.metrics.Errors(),
			"belief_count":   beliefs,
			"edge_count":     edges,
			"events_dropped": app.Bus.Dropped(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/bedtime-estimator/docs"
	"github.com/blaisecz/bedtime-estimator/internal/api/handler"
	"github.com/blaisecz/bedtime-estimator/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	estimateHandler *handler.EstimateHandler
	modelHandler    *handler.ModelHandler
	mcpHandler      *handler.MCPHandler
	log             *zap.Logger
}

func NewRouter(estimateHandler *handler.EstimateHandler, modelHandler *handler.ModelHandler, mcpHandler *handler.MCPHandler, log *zap.Logger) *Router {
	return &Router{
		estimateHandler: estimateHandler,
		modelHandler:    modelHandler,
		mcpHandler:      mcpHandler,
		log:             log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/estimate", func(r chi.Router) {
			r.Post("/", rt.estimateHandler.Create)
			r.Get("/defaults", rt.estimateHandler.Defaults)
		})

		r.Route("/models", func(r chi.Router) {
			r.Get("/", rt.modelHandler.List)
			r.Get("/active", rt.modelHandler.Active)
		})
	})

	r.Post("/mcp", rt.mcpHandler.Call)

	return r
}

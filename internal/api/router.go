package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/gstrauss42/life-tracker/docs"
	"github.com/gstrauss42/life-tracker/internal/api/handler"
	"github.com/gstrauss42/life-tracker/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler           *handler.UserHandler
	recordHandler         *handler.RecordHandler
	analyticsHandler      *handler.AnalyticsHandler
	recommendationHandler *handler.RecommendationHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	recordHandler *handler.RecordHandler,
	analyticsHandler *handler.AnalyticsHandler,
	recommendationHandler *handler.RecommendationHandler,
) *Router {
	return &Router{
		userHandler:           userHandler,
		recordHandler:         recordHandler,
		analyticsHandler:      analyticsHandler,
		recommendationHandler: recommendationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
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
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)
				r.Get("/goals", rt.userHandler.GetGoals)
				r.Put("/goals", rt.userHandler.UpdateGoals)

				// Daily records
				r.Route("/records", func(r chi.Router) {
					r.Get("/", rt.recordHandler.List)
					r.Delete("/", rt.recordHandler.BulkClear)
					r.Put("/{date}", rt.recordHandler.Upsert)
					r.Get("/{date}", rt.recordHandler.GetByDate)
					r.Post("/{date}/food-entries", rt.recordHandler.AddFoodEntry)
				})

				// Derived analytics
				r.Route("/analytics", func(r chi.Router) {
					r.Get("/nutrition/today", rt.analyticsHandler.GetTodayNutrition)
					r.Get("/nutrition/overview", rt.analyticsHandler.GetNutritionOverview)
					r.Get("/streaks", rt.analyticsHandler.GetStreaks)
					r.Get("/patterns", rt.analyticsHandler.GetPatterns)
					r.Get("/summary", rt.analyticsHandler.GetSummary)
				})

				// AI recommendations
				r.Route("/recommendations", func(r chi.Router) {
					r.Post("/", rt.recommendationHandler.Generate)
					r.Get("/latest", rt.recommendationHandler.GetLatest)
					r.Post("/feedback", rt.recommendationHandler.PostFeedback)
				})
			})
		})
	})

	return r
}

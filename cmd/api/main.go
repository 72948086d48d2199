// Life Tracker API
//
// REST API for logging daily health data and deriving analytics.
//
//	@title			Life Tracker API
//	@version		1.0
//	@description	Log daily records and food entries, track goals, and derive nutrition, streak, and pattern analytics with AI recommendations.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			goals
//	@tag.description	Per-metric goal configuration
//
//	@tag.name			records
//	@tag.description	Daily record and food entry logging
//
//	@tag.name			analytics
//	@tag.description	Derived nutrition, streak, and pattern analytics
//
//	@tag.name			recommendations
//	@tag.description	AI-generated habit recommendations
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gstrauss42/life-tracker/internal/api"
	"github.com/gstrauss42/life-tracker/internal/api/handler"
	"github.com/gstrauss42/life-tracker/internal/config"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/langfuse"
	"github.com/gstrauss42/life-tracker/internal/llm"
	"github.com/gstrauss42/life-tracker/internal/repository"
	"github.com/gstrauss42/life-tracker/internal/seed"
	"github.com/gstrauss42/life-tracker/internal/service"
	"github.com/gstrauss42/life-tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize OpenTelemetry (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "life-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserGoals{},
		&domain.DailyRecord{},
		&domain.FoodEntry{},
		&domain.StoredAnalysis{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Langfuse client for feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewDailyRecordRepository(db)
	goalsRepo := repository.NewGoalsRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, goalsRepo)
	recordService := service.NewRecordService(recordRepo, userRepo)
	nutritionService := service.NewNutritionService(recordRepo, goalsRepo, userRepo)
	overviewService := service.NewOverviewService(recordRepo, userRepo)
	streakService := service.NewStreakService(recordRepo, goalsRepo, userRepo)
	patternService := service.NewPatternService(recordRepo, userRepo)
	aggregateService := service.NewAggregateService(recordRepo, goalsRepo, userRepo)

	// System prompt may be managed in Langfuse; fall back to the built-in one
	systemPrompt := ""
	if cfg.LangfusePromptName != "" || cfg.LangfusePromptFile != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    cfg.LangfusePromptFile,
		})
		if err != nil {
			log.Printf("Prompt load failed, using built-in system prompt: %v", err)
		} else {
			systemPrompt = prompt
		}
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIRecommendationsModel, systemPrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, recommendation endpoints will be unavailable")
	}

	recommendationService := service.NewRecommendationService(aggregateService, openaiClient, analysisRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	recordHandler := handler.NewRecordHandler(recordService)
	analyticsHandler := handler.NewAnalyticsHandler(nutritionService, overviewService, streakService, patternService, aggregateService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, recordHandler, analyticsHandler, recommendationHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

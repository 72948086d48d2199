package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/llm"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

// RecommendationService generates and stores AI habit analyses.
type RecommendationService interface {
	// Generate builds the analytics context, asks the LLM for an
	// analysis, stores it, and returns it.
	Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AIAnalysis, error)
	// Latest returns the most recently stored analysis.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error)
}

type recommendationService struct {
	aggregateService AggregateService
	llmClient        llm.RecommendationLLM
	analysisRepo     repository.AnalysisRepository
	userRepo         repository.UserRepository
	now              func() time.Time
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(
	aggregateService AggregateService,
	llmClient llm.RecommendationLLM,
	analysisRepo repository.AnalysisRepository,
	userRepo repository.UserRepository,
) RecommendationService {
	return &recommendationService{
		aggregateService: aggregateService,
		llmClient:        llmClient,
		analysisRepo:     analysisRepo,
		userRepo:         userRepo,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *recommendationService) Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AIAnalysis, error) {
	aiContext, err := s.aggregateService.AIContext(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	analysis, err := s.llmClient.GenerateRecommendations(ctx, aiContext)
	if err != nil {
		return nil, err
	}
	analysis.GeneratedAt = s.now()

	if err := s.analysisRepo.Save(ctx, userID, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

func (s *recommendationService) Latest(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.analysisRepo.GetLatest(ctx, userID)
}

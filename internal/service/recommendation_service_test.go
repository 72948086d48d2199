package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
)

func TestRecommendationService_Generate(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	recordRepo := NewMockDailyRecordRepository()
	recordRepo.add(domain.DailyRecord{UserID: userID, Date: "2024-03-15", WaterLiters: 2.0})
	goalsRepo := NewMockGoalsRepository()
	aggregateService := NewAggregateService(recordRepo, goalsRepo, userRepo)

	t.Run("stores and returns analysis", func(t *testing.T) {
		llmMock := &MockRecommendationLLM{analysis: &domain.AIAnalysis{
			Working:         []string{"Water goal hit regularly"},
			Attention:       []string{"Low protein"},
			Recommendations: []string{"Add a protein source to lunch"},
		}}
		analysisRepo := NewMockAnalysisRepository()
		svc := NewRecommendationService(aggregateService, llmMock, analysisRepo, userRepo)

		analysis, err := svc.Generate(context.Background(), userID, 14)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if analysis.GeneratedAt.IsZero() {
			t.Error("GeneratedAt should be set")
		}
		if llmMock.lastContext == "" {
			t.Error("LLM should receive the rendered context")
		}

		stored, err := analysisRepo.GetLatest(context.Background(), userID)
		if err != nil {
			t.Fatalf("analysis was not stored: %v", err)
		}
		if len(stored.Recommendations) != 1 {
			t.Errorf("stored recommendations = %v", stored.Recommendations)
		}
	})

	t.Run("LLM failure is not stored", func(t *testing.T) {
		wantErr := errors.New("boom")
		analysisRepo := NewMockAnalysisRepository()
		svc := NewRecommendationService(aggregateService, &MockRecommendationLLM{err: wantErr}, analysisRepo, userRepo)

		if _, err := svc.Generate(context.Background(), userID, 14); !errors.Is(err, wantErr) {
			t.Fatalf("Generate() error = %v, want %v", err, wantErr)
		}
		if _, err := analysisRepo.GetLatest(context.Background(), userID); !errors.Is(err, domain.ErrNotFound) {
			t.Error("failed generation must not be stored")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewRecommendationService(aggregateService, &MockRecommendationLLM{}, NewMockAnalysisRepository(), userRepo)
		if _, err := svc.Generate(context.Background(), uuid.New(), 14); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestRecommendationService_Latest(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	aggregateService := NewAggregateService(NewMockDailyRecordRepository(), NewMockGoalsRepository(), userRepo)

	t.Run("no stored analysis", func(t *testing.T) {
		svc := NewRecommendationService(aggregateService, &MockRecommendationLLM{}, NewMockAnalysisRepository(), userRepo)
		if _, err := svc.Latest(context.Background(), userID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("returns most recent", func(t *testing.T) {
		analysisRepo := NewMockAnalysisRepository()
		analysisRepo.Save(context.Background(), userID, &domain.AIAnalysis{Recommendations: []string{"old"}})
		analysisRepo.Save(context.Background(), userID, &domain.AIAnalysis{Recommendations: []string{"new"}})

		svc := NewRecommendationService(aggregateService, &MockRecommendationLLM{}, analysisRepo, userRepo)
		analysis, err := svc.Latest(context.Background(), userID)
		if err != nil {
			t.Fatalf("Latest() error = %v", err)
		}
		if analysis.Recommendations[0] != "new" {
			t.Errorf("got %v, want newest analysis", analysis.Recommendations)
		}
	})
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

// NutritionService exposes single-day nutrition summaries.
type NutritionService interface {
	// Today returns totals, deficiencies, and goal progress for the
	// current calendar date. A day with nothing logged yields all-zero
	// totals and the full tracked-nutrient deficiency list.
	Today(ctx context.Context, userID uuid.UUID) (*domain.TodayNutrition, error)
}

type nutritionService struct {
	recordRepo repository.DailyRecordRepository
	goalsRepo  repository.GoalsRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewNutritionService creates a new NutritionService.
func NewNutritionService(recordRepo repository.DailyRecordRepository, goalsRepo repository.GoalsRepository, userRepo repository.UserRepository) NutritionService {
	return &nutritionService{
		recordRepo: recordRepo,
		goalsRepo:  goalsRepo,
		userRepo:   userRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *nutritionService) Today(ctx context.Context, userID uuid.UUID) (*domain.TodayNutrition, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	goals, err := s.goalsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(domain.DateLayout)

	var totals domain.NutritionTotals
	record, err := s.recordRepo.GetByDate(ctx, userID, today)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if record != nil {
		totals = SummarizeRecord(*record)
	}

	deficiencies := NutrientDeficiencies(totals)
	if deficiencies == nil {
		deficiencies = []domain.Deficiency{}
	}

	return &domain.TodayNutrition{
		Date:           today,
		Totals:         totals,
		Deficiencies:   deficiencies,
		CaloriePercent: GoalPercentage(totals.Calories, goals.Calories),
		ProteinPercent: GoalPercentage(totals.Protein, goals.ProteinGrams),
	}, nil
}

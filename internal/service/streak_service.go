package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

// DefaultStreakWindowDays is the default lookback for streak queries.
const DefaultStreakWindowDays = 30

// StreakService computes streak and goal-hit statistics per metric.
type StreakService interface {
	// Compute calculates streaks for a named metric (water, exercise,
	// sunlight, sleep, social, nutrition, overall) over the trailing
	// window. Unknown metrics yield ErrInvalidInput.
	Compute(ctx context.Context, userID uuid.UUID, metric string, windowDays int) (*domain.StreakResult, error)
}

type streakService struct {
	recordRepo repository.DailyRecordRepository
	goalsRepo  repository.GoalsRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewStreakService creates a new StreakService.
func NewStreakService(recordRepo repository.DailyRecordRepository, goalsRepo repository.GoalsRepository, userRepo repository.UserRepository) StreakService {
	return &streakService{
		recordRepo: recordRepo,
		goalsRepo:  goalsRepo,
		userRepo:   userRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *streakService) Compute(ctx context.Context, userID uuid.UUID, metric string, windowDays int) (*domain.StreakResult, error) {
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

	value, goal, ok := MetricValue(metric, *goals)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	if windowDays <= 0 {
		windowDays = DefaultStreakWindowDays
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	from := now.AddDate(0, 0, -(windowDays - 1)).Format(domain.DateLayout)

	records, err := s.recordRepo.ListByDateRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	result := ComputeStreaks(records, value, goal)
	return &result, nil
}

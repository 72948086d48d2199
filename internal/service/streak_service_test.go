package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
)

func TestStreakService_Compute(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	goalsRepo := NewMockGoalsRepository()

	recordRepo := NewMockDailyRecordRepository()
	// Default water goal is 2.0 L: miss, hit, hit (oldest first)
	recordRepo.add(domain.DailyRecord{UserID: userID, Date: "2024-03-13", WaterLiters: 0.5})
	recordRepo.add(domain.DailyRecord{UserID: userID, Date: "2024-03-14", WaterLiters: 2.5})
	recordRepo.add(domain.DailyRecord{UserID: userID, Date: "2024-03-15", WaterLiters: 2.0})

	newService := func() *streakService {
		svc := NewStreakService(recordRepo, goalsRepo, userRepo).(*streakService)
		svc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
		return svc
	}

	t.Run("water streak", func(t *testing.T) {
		result, err := newService().Compute(context.Background(), userID, "water", 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.CurrentStreak != 2 || result.LongestStreak != 2 {
			t.Errorf("streaks = %d/%d, want 2/2", result.CurrentStreak, result.LongestStreak)
		}
	})

	t.Run("unknown metric", func(t *testing.T) {
		if _, err := newService().Compute(context.Background(), userID, "steps", 30); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := newService().Compute(context.Background(), uuid.New(), "water", 30); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("window excludes old records", func(t *testing.T) {
		repo := NewMockDailyRecordRepository()
		repo.add(domain.DailyRecord{UserID: userID, Date: "2024-01-01", WaterLiters: 2.5})
		svc := NewStreakService(repo, goalsRepo, userRepo).(*streakService)
		svc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

		result, err := svc.Compute(context.Background(), userID, "water", 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.LongestStreak != 0 || result.GoalHitRate != 0 {
			t.Errorf("out-of-window record leaked into result: %+v", result)
		}
	})
}

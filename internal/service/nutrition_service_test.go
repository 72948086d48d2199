package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
)

func TestNutritionService_Today(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
	goalsRepo := NewMockGoalsRepository()

	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("nothing logged yields zeros and full deficiency list", func(t *testing.T) {
		svc := NewNutritionService(NewMockDailyRecordRepository(), goalsRepo, userRepo).(*nutritionService)
		svc.now = func() time.Time { return today }

		result, err := svc.Today(context.Background(), userID)
		if err != nil {
			t.Fatalf("Today() error = %v", err)
		}
		if result.Date != "2024-03-15" {
			t.Errorf("date = %s", result.Date)
		}
		if result.Totals.Calories != 0 {
			t.Errorf("Calories = %v, want 0", result.Totals.Calories)
		}
		if len(result.Deficiencies) != len(domain.TrackedNutrients) {
			t.Errorf("got %d deficiencies, want all %d tracked nutrients", len(result.Deficiencies), len(domain.TrackedNutrients))
		}
		if result.CaloriePercent != 0 || result.ProteinPercent != 0 {
			t.Errorf("percentages = %v/%v, want 0/0", result.CaloriePercent, result.ProteinPercent)
		}
	})

	t.Run("logged day computes totals and goal progress", func(t *testing.T) {
		recordRepo := NewMockDailyRecordRepository()
		recordRepo.add(domain.DailyRecord{
			UserID: userID, Date: "2024-03-15",
			FoodEntries: []domain.FoodEntry{
				{Calories: floatPtr(1000), Protein: floatPtr(25)},
			},
		})
		svc := NewNutritionService(recordRepo, goalsRepo, userRepo).(*nutritionService)
		svc.now = func() time.Time { return today }

		result, err := svc.Today(context.Background(), userID)
		if err != nil {
			t.Fatalf("Today() error = %v", err)
		}
		// Default goals: 2000 kcal, 50 g protein
		if result.CaloriePercent != 50 {
			t.Errorf("CaloriePercent = %v, want 50", result.CaloriePercent)
		}
		if result.ProteinPercent != 50 {
			t.Errorf("ProteinPercent = %v, want 50", result.ProteinPercent)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewNutritionService(NewMockDailyRecordRepository(), goalsRepo, userRepo)
		if _, err := svc.Today(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users, goals, and daily records.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.UserGoals{}, &domain.DailyRecord{}, &domain.FoodEntry{}, &domain.StoredAnalysis{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), DisplayName: "Anna", Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), DisplayName: "Ben", Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), DisplayName: "Chiyo", Timezone: "Asia/Tokyo"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		goals := domain.DefaultGoals(user.ID)
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&goals).Error; err != nil {
			return fmt.Errorf("failed to create goals for %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedRecordsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

var seedWorkoutTypes = []domain.WorkoutType{
	domain.WorkoutTypeCardio,
	domain.WorkoutTypeStrength,
	domain.WorkoutTypeWalking,
	domain.WorkoutTypeSports,
}

var seedSocialCategories = []domain.SocialCategory{
	domain.SocialCategoryFamily,
	domain.SocialCategoryFriends,
	domain.SocialCategoryCommunity,
}

var seedFoods = []struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	fiber    float64
}{
	{"Oatmeal with berries", 320, 11, 55, 7, 8},
	{"Chicken salad", 450, 38, 12, 26, 5},
	{"Lentil soup", 280, 16, 40, 5, 12},
	{"Salmon with rice", 610, 42, 52, 22, 3},
	{"Greek yogurt", 150, 15, 10, 5, 0},
	{"Pasta bolognese", 680, 30, 78, 24, 6},
}

func seedRecordsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format(domain.DateLayout)

		// Leave occasional gaps so sparse-data paths get exercised
		if rng.Float32() < 0.1 {
			continue
		}

		record := domain.DailyRecord{
			UserID:          user.ID,
			Date:            date,
			WaterLiters:     1.0 + rng.Float64()*2.0,
			ExerciseMinutes: rng.Intn(60),
			SunlightMinutes: rng.Intn(45),
			SleepHours:      6.0 + rng.Float64()*3.0,
			SocialMinutes:   rng.Intn(90),
		}
		if record.ExerciseMinutes > 10 {
			record.WorkoutType = seedWorkoutTypes[rng.Intn(len(seedWorkoutTypes))]
		}
		if record.SocialMinutes > 15 {
			record.SocialCategory = seedSocialCategories[rng.Intn(len(seedSocialCategories))]
		}

		if err := db.Where("user_id = ? AND date = ?", user.ID, date).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create record for %s on %s: %w", user.ID, date, err)
		}

		var count int64
		if err := db.Model(&domain.FoodEntry{}).Where("record_id = ?", record.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count food entries: %w", err)
		}
		if count > 0 {
			continue
		}

		meals := 2 + rng.Intn(2)
		day, _ := time.Parse(domain.DateLayout, date)
		for m := 0; m < meals; m++ {
			food := seedFoods[rng.Intn(len(seedFoods))]
			entry := domain.FoodEntry{
				RecordID: record.ID,
				Name:     food.name,
				LoggedAt: day.Add(time.Duration(8+m*5) * time.Hour),
				Calories: ptr(food.calories),
				Protein:  ptr(food.protein),
				Carbs:    ptr(food.carbs),
				Fat:      ptr(food.fat),
				Fiber:    ptr(food.fiber),
			}
			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create food entry: %w", err)
			}
		}
	}
	return nil
}

func ptr(v float64) *float64 {
	return &v
}

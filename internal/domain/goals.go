package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default per-metric goal values, used until the user configures their
// own targets.
const (
	DefaultWaterGoalLiters     = 2.0
	DefaultExerciseGoalMinutes = 30
	DefaultSunlightGoalMinutes = 20
	DefaultSleepGoalHours      = 8.0
	DefaultSocialGoalMinutes   = 30
	DefaultCalorieGoal         = 2000.0
	DefaultProteinGoalGrams    = 50.0
)

// UserGoals holds the per-user targets consumed by the streak and
// goal-hit calculations. The engine reads goals, never writes them.
type UserGoals struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	WaterLiters     float64   `gorm:"not null" json:"water_liters"`
	ExerciseMinutes int       `gorm:"not null" json:"exercise_minutes"`
	SunlightMinutes int       `gorm:"not null" json:"sunlight_minutes"`
	SleepHours      float64   `gorm:"not null" json:"sleep_hours"`
	SocialMinutes   int       `gorm:"not null" json:"social_minutes"`
	Calories        float64   `gorm:"not null" json:"calories"`
	ProteinGrams    float64   `gorm:"not null" json:"protein_g"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserGoals) TableName() string {
	return "user_goals"
}

// DefaultGoals returns the default goal set for a user.
func DefaultGoals(userID uuid.UUID) UserGoals {
	return UserGoals{
		UserID:          userID,
		WaterLiters:     DefaultWaterGoalLiters,
		ExerciseMinutes: DefaultExerciseGoalMinutes,
		SunlightMinutes: DefaultSunlightGoalMinutes,
		SleepHours:      DefaultSleepGoalHours,
		SocialMinutes:   DefaultSocialGoalMinutes,
		Calories:        DefaultCalorieGoal,
		ProteinGrams:    DefaultProteinGoalGrams,
	}
}

// UpdateGoalsRequest is the request body for setting goals. Omitted
// fields keep their current value.
// @Description Request payload for updating per-metric goals.
type UpdateGoalsRequest struct {
	WaterLiters     *float64 `json:"water_liters,omitempty" validate:"omitempty,gt=0" example:"2.5"`
	ExerciseMinutes *int     `json:"exercise_minutes,omitempty" validate:"omitempty,gt=0" example:"45"`
	SunlightMinutes *int     `json:"sunlight_minutes,omitempty" validate:"omitempty,gt=0" example:"20"`
	SleepHours      *float64 `json:"sleep_hours,omitempty" validate:"omitempty,gt=0,max=24" example:"8"`
	SocialMinutes   *int     `json:"social_minutes,omitempty" validate:"omitempty,gt=0" example:"30"`
	Calories        *float64 `json:"calories,omitempty" validate:"omitempty,gt=0" example:"2200"`
	ProteinGrams    *float64 `json:"protein_g,omitempty" validate:"omitempty,gt=0" example:"90"`
}

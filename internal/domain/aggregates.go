package domain

import "time"

// TrendDirection classifies a metric's short-term movement.
// @Description Trend direction: increasing, decreasing, stable, or unknown.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
	TrendUnknown    TrendDirection = "unknown"
)

// StreakResult holds streak and goal-hit statistics for one metric.
// @Description Consecutive-day streaks and goal-hit rate for a metric.
type StreakResult struct {
	// Consecutive trailing days meeting the goal
	CurrentStreak int `json:"current_streak" example:"4"`
	// Longest run of consecutive days meeting the goal in the window
	LongestStreak int `json:"longest_streak" example:"9"`
	// Fraction of days in the window meeting the goal (0-1)
	GoalHitRate float64 `json:"goal_hit_rate" example:"0.64"`
}

// NutritionAggregates summarizes nutrition over the analysis window.
// @Description Window-level nutrition aggregates.
type NutritionAggregates struct {
	DaysWithData           int             `json:"days_with_data" example:"11"`
	AverageIntake          NutritionTotals `json:"average_intake"`
	TodayIntake            NutritionTotals `json:"today_intake"`
	ConsistentDeficiencies []NutrientTrend `json:"consistent_deficiencies"`
	CalorieGoalHitRate     float64         `json:"calorie_goal_hit_rate" example:"0.55"`
	ProteinGoalHitRate     float64         `json:"protein_goal_hit_rate" example:"0.45"`
}

// Empty returns the zero-state aggregate.
func (NutritionAggregates) Empty() NutritionAggregates { return NutritionAggregates{} }

func (a NutritionAggregates) HasData() bool { return a.DaysWithData > 0 }

// ExerciseAggregates summarizes exercise over the analysis window.
// @Description Window-level exercise aggregates.
type ExerciseAggregates struct {
	// Days with any exercise logged
	TotalSessions int `json:"total_sessions" example:"8"`
	TotalMinutes  int `json:"total_minutes" example:"360"`
	// Average minutes across all days in the window
	AvgMinutesPerDay float64 `json:"avg_minutes_per_day" example:"25.7"`
	// Average minutes across days with exercise
	AvgMinutesPerSession float64 `json:"avg_minutes_per_session" example:"45"`
	// Workout types ranked by frequency, most frequent first
	PreferredWorkoutTypes []WorkoutType `json:"preferred_workout_types"`
	Streak                StreakResult  `json:"streak"`
}

func (ExerciseAggregates) Empty() ExerciseAggregates { return ExerciseAggregates{} }

func (a ExerciseAggregates) HasData() bool { return a.TotalSessions > 0 }

// SocialAggregates summarizes social activity over the analysis window.
// @Description Window-level social activity aggregates.
type SocialAggregates struct {
	// Days with any social time logged
	ActiveDays   int `json:"active_days" example:"6"`
	TotalMinutes int `json:"total_minutes" example:"420"`
	// Average minutes across all days in the window
	AvgMinutesPerDay float64 `json:"avg_minutes_per_day" example:"30"`
	// Social categories ranked by frequency, most frequent first
	PreferredCategories []SocialCategory `json:"preferred_categories"`
	Streak              StreakResult     `json:"streak"`
}

func (SocialAggregates) Empty() SocialAggregates { return SocialAggregates{} }

func (a SocialAggregates) HasData() bool { return a.ActiveDays > 0 }

// SimpleMetricsAggregates summarizes water, sunlight, and sleep.
// @Description Window-level aggregates for water, sunlight, and sleep.
type SimpleMetricsAggregates struct {
	AvgWaterLiters     float64      `json:"avg_water_liters" example:"2.1"`
	AvgSunlightMinutes float64      `json:"avg_sunlight_minutes" example:"24"`
	AvgSleepHours      float64      `json:"avg_sleep_hours" example:"7.2"`
	WaterStreak        StreakResult `json:"water_streak"`
	SunlightStreak     StreakResult `json:"sunlight_streak"`
	SleepStreak        StreakResult `json:"sleep_streak"`
	// Streak where the day's overall completion score was >= 0.5
	OverallStreak StreakResult `json:"overall_streak"`
	DaysWithData  int          `json:"days_with_data" example:"12"`
}

func (SimpleMetricsAggregates) Empty() SimpleMetricsAggregates { return SimpleMetricsAggregates{} }

func (a SimpleMetricsAggregates) HasData() bool { return a.DaysWithData > 0 }

// PatternData holds day-of-week patterns, cross-metric correlations,
// and short-term trend directions. Weekday keys are ISO (1=Monday..
// 7=Sunday); weekdays without observations are omitted.
// @Description Day-of-week patterns, correlations, and trends.
type PatternData struct {
	ExerciseByDayOfWeek map[int]float64 `json:"exercise_by_day_of_week"`
	CaloriesByDayOfWeek map[int]float64 `json:"calories_by_day_of_week"`
	SleepByDayOfWeek    map[int]float64 `json:"sleep_by_day_of_week"`
	// Pearson r in [-1,1]; nil when undefined (too few paired days or
	// zero variance in either series)
	SleepExerciseCorrelation    *float64 `json:"sleep_exercise_correlation,omitempty"`
	ExerciseCaloriesCorrelation *float64 `json:"exercise_calories_correlation,omitempty"`
	ExerciseTrend               TrendDirection `json:"exercise_trend" example:"increasing"`
	NutritionTrend              TrendDirection `json:"nutrition_trend" example:"stable"`
	SleepTrend                  TrendDirection `json:"sleep_trend" example:"unknown"`
	// ISO weekday with the highest exercise average; 0 when unknown
	MostActiveDay int `json:"most_active_day,omitempty" example:"6"`
	// ISO weekday with the highest calorie average; 0 when unknown
	HighestCalorieDay int `json:"highest_calorie_day,omitempty" example:"7"`
}

// Empty returns the zero-state pattern data with unknown trends.
func (PatternData) Empty() PatternData {
	return PatternData{
		ExerciseByDayOfWeek: map[int]float64{},
		CaloriesByDayOfWeek: map[int]float64{},
		SleepByDayOfWeek:    map[int]float64{},
		ExerciseTrend:       TrendUnknown,
		NutritionTrend:      TrendUnknown,
		SleepTrend:          TrendUnknown,
	}
}

func (p PatternData) HasData() bool {
	return len(p.ExerciseByDayOfWeek) > 0 || len(p.CaloriesByDayOfWeek) > 0 || len(p.SleepByDayOfWeek) > 0
}

// AggregatedUserData is the top-level analytics snapshot consumed by
// presentation collaborators and the recommendation generator.
// @Description Complete analytics snapshot over the analysis window.
type AggregatedUserData struct {
	LastUpdated   time.Time               `json:"last_updated"`
	DaysAnalyzed  int                     `json:"days_analyzed" example:"14"`
	Nutrition     NutritionAggregates     `json:"nutrition"`
	Exercise      ExerciseAggregates      `json:"exercise"`
	Social        SocialAggregates        `json:"social"`
	SimpleMetrics SimpleMetricsAggregates `json:"simple_metrics"`
	Patterns      PatternData             `json:"patterns"`
}

// Empty returns the zero-state snapshot.
func (AggregatedUserData) Empty() AggregatedUserData {
	return AggregatedUserData{Patterns: PatternData{}.Empty()}
}

func (d AggregatedUserData) HasData() bool {
	return d.Nutrition.HasData() || d.Exercise.HasData() || d.Social.HasData() || d.SimpleMetrics.HasData()
}

// HasEnoughDataForPatterns reports whether pattern and correlation
// results should be presented.
func (d AggregatedUserData) HasEnoughDataForPatterns() bool {
	return d.DaysAnalyzed >= 3
}

// AggregateSummaryResponse is the response for the summary endpoint.
// @Description Full analytics snapshot plus its text rendering.
type AggregateSummaryResponse struct {
	Data AggregatedUserData `json:"data"`
	// Deterministic human-readable rendering passed to the
	// recommendation generator
	AIContext string `json:"ai_context"`
}

package service

import (
	"github.com/gstrauss42/life-tracker/internal/domain"
)

// OverallCompletionGoal is the completion score a day must reach to
// count toward the nutrition and overall streaks.
const OverallCompletionGoal = 0.5

// MetricValueFunc extracts one metric's value from a daily record.
type MetricValueFunc func(domain.DailyRecord) float64

// ComputeStreaks calculates streak and goal-hit statistics for one
// metric over an oldest-to-newest window of records. An empty window
// yields all zeros.
func ComputeStreaks(records []domain.DailyRecord, value MetricValueFunc, goal float64) domain.StreakResult {
	var result domain.StreakResult
	if len(records) == 0 {
		return result
	}

	hits := 0
	run := 0
	for _, r := range records {
		if value(r) >= goal {
			hits++
			run++
			if run > result.LongestStreak {
				result.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	// Trailing streak: walk back from the most recent day until the
	// first day below the goal.
	for i := len(records) - 1; i >= 0; i-- {
		if value(records[i]) < goal {
			break
		}
		result.CurrentStreak++
	}

	result.GoalHitRate = float64(hits) / float64(len(records))
	return result
}

// CompletionScore is the unweighted mean of the day's water, exercise,
// sleep, and social progress ratios, each clamped to [0,1]. A zero
// goal contributes a zero ratio.
func CompletionScore(record domain.DailyRecord, goals domain.UserGoals) float64 {
	ratios := []float64{
		progressRatio(record.WaterLiters, goals.WaterLiters),
		progressRatio(float64(record.ExerciseMinutes), float64(goals.ExerciseMinutes)),
		progressRatio(record.SleepHours, goals.SleepHours),
		progressRatio(float64(record.SocialMinutes), float64(goals.SocialMinutes)),
	}

	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	return sum / float64(len(ratios))
}

func progressRatio(value, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	ratio := value / goal
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// MetricValue returns the value function and goal for a named metric.
// The nutrition and overall metrics score a day by its completion
// score against the 0.5 completion goal.
func MetricValue(metric string, goals domain.UserGoals) (MetricValueFunc, float64, bool) {
	switch metric {
	case "water":
		return func(r domain.DailyRecord) float64 { return r.WaterLiters }, goals.WaterLiters, true
	case "exercise":
		return func(r domain.DailyRecord) float64 { return float64(r.ExerciseMinutes) }, float64(goals.ExerciseMinutes), true
	case "sunlight":
		return func(r domain.DailyRecord) float64 { return float64(r.SunlightMinutes) }, float64(goals.SunlightMinutes), true
	case "sleep":
		return func(r domain.DailyRecord) float64 { return r.SleepHours }, goals.SleepHours, true
	case "social":
		return func(r domain.DailyRecord) float64 { return float64(r.SocialMinutes) }, float64(goals.SocialMinutes), true
	case "nutrition", "overall":
		return func(r domain.DailyRecord) float64 { return CompletionScore(r, goals) }, OverallCompletionGoal, true
	}
	return nil, 0, false
}

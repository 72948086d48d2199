package service

import (
	"fmt"
	"math"
	"testing"

	"github.com/gstrauss42/life-tracker/internal/domain"
)

// recordsFromHits builds one record per flag, oldest first, where a
// true flag means the day met the 2.0 L water goal.
func recordsFromHits(hits []bool) []domain.DailyRecord {
	records := make([]domain.DailyRecord, len(hits))
	for i, hit := range hits {
		records[i] = domain.DailyRecord{Date: fmt.Sprintf("2024-03-%02d", i+1)}
		if hit {
			records[i].WaterLiters = 2.5
		} else {
			records[i].WaterLiters = 0.5
		}
	}
	return records
}

func TestComputeStreaks(t *testing.T) {
	waterValue := func(r domain.DailyRecord) float64 { return r.WaterLiters }

	tests := []struct {
		name        string
		hits        []bool
		wantCurrent int
		wantLongest int
		wantRate    float64
	}{
		{
			name:        "trailing streak counts from newest day",
			hits:        []bool{false, false, true, true, true},
			wantCurrent: 3,
			wantLongest: 3,
			wantRate:    0.6,
		},
		{
			name:        "miss resets current but not longest",
			hits:        []bool{true, false, true, true},
			wantCurrent: 2,
			wantLongest: 2,
			wantRate:    0.75,
		},
		{
			name:        "longest in middle, newest day missed",
			hits:        []bool{true, true, true, false},
			wantCurrent: 0,
			wantLongest: 3,
			wantRate:    0.75,
		},
		{
			name:        "all hits",
			hits:        []bool{true, true},
			wantCurrent: 2,
			wantLongest: 2,
			wantRate:    1,
		},
		{
			name: "empty window yields zeros",
			hits: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeStreaks(recordsFromHits(tt.hits), waterValue, 2.0)
			if result.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", result.CurrentStreak, tt.wantCurrent)
			}
			if result.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", result.LongestStreak, tt.wantLongest)
			}
			if math.Abs(result.GoalHitRate-tt.wantRate) > 1e-9 {
				t.Errorf("GoalHitRate = %v, want %v", result.GoalHitRate, tt.wantRate)
			}
		})
	}
}

func TestComputeStreaks_GoalBoundary(t *testing.T) {
	// Meeting the goal exactly counts as a hit
	records := []domain.DailyRecord{{Date: "2024-03-01", WaterLiters: 2.0}}
	result := ComputeStreaks(records, func(r domain.DailyRecord) float64 { return r.WaterLiters }, 2.0)
	if result.CurrentStreak != 1 || result.GoalHitRate != 1 {
		t.Errorf("exact goal should count as hit: %+v", result)
	}
}

func TestCompletionScore(t *testing.T) {
	goals := domain.UserGoals{
		WaterLiters:     2.0,
		ExerciseMinutes: 30,
		SleepHours:      8.0,
		SocialMinutes:   30,
	}

	tests := []struct {
		name   string
		record domain.DailyRecord
		want   float64
	}{
		{
			name: "all goals met scores 1",
			record: domain.DailyRecord{
				WaterLiters: 2.0, ExerciseMinutes: 30, SleepHours: 8.0, SocialMinutes: 30,
			},
			want: 1.0,
		},
		{
			name:   "nothing logged scores 0",
			record: domain.DailyRecord{},
			want:   0,
		},
		{
			name: "overshoot is clamped per metric",
			record: domain.DailyRecord{
				WaterLiters: 10.0, ExerciseMinutes: 0, SleepHours: 0, SocialMinutes: 0,
			},
			want: 0.25,
		},
		{
			name: "half everywhere scores 0.5",
			record: domain.DailyRecord{
				WaterLiters: 1.0, ExerciseMinutes: 15, SleepHours: 4.0, SocialMinutes: 15,
			},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionScore(tt.record, goals); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CompletionScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletionScore_ZeroGoal(t *testing.T) {
	// A zero goal contributes a zero ratio instead of dividing by zero
	goals := domain.UserGoals{WaterLiters: 0, ExerciseMinutes: 30, SleepHours: 8.0, SocialMinutes: 30}
	record := domain.DailyRecord{WaterLiters: 3.0, ExerciseMinutes: 30, SleepHours: 8.0, SocialMinutes: 30}
	if got := CompletionScore(record, goals); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("CompletionScore() = %v, want 0.75", got)
	}
}

func TestMetricValue(t *testing.T) {
	goals := domain.UserGoals{
		WaterLiters:     2.0,
		ExerciseMinutes: 30,
		SunlightMinutes: 20,
		SleepHours:      8.0,
		SocialMinutes:   30,
	}

	known := []string{"water", "exercise", "sunlight", "sleep", "social", "nutrition", "overall"}
	for _, metric := range known {
		if _, _, ok := MetricValue(metric, goals); !ok {
			t.Errorf("MetricValue(%q) not recognized", metric)
		}
	}

	if _, _, ok := MetricValue("steps", goals); ok {
		t.Error("MetricValue should reject unknown metrics")
	}

	// nutrition and overall both score by completion vs the 0.5 goal
	value, goal, _ := MetricValue("overall", goals)
	if goal != OverallCompletionGoal {
		t.Errorf("overall goal = %v, want %v", goal, OverallCompletionGoal)
	}
	full := domain.DailyRecord{WaterLiters: 2.0, ExerciseMinutes: 30, SleepHours: 8.0, SocialMinutes: 30}
	if got := value(full); got != 1.0 {
		t.Errorf("overall value for full day = %v, want 1.0", got)
	}
}

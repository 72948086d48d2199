package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAggregateWindowDays is the default window for the full
// analytics snapshot.
const DefaultAggregateWindowDays = 14

// AggregateService composes the full analytics snapshot.
type AggregateService interface {
	// Build computes (or returns the cached) AggregatedUserData for
	// the trailing window ending today.
	Build(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AggregatedUserData, error)
	// AIContext renders the snapshot as the deterministic text handed
	// to the recommendation generator.
	AIContext(ctx context.Context, userID uuid.UUID, windowDays int) (string, error)
}

// cacheKey identifies one consistent snapshot: any write to the user's
// records changes the stamp and so the key.
type cacheKey struct {
	userID     uuid.UUID
	windowDays int
	count      int64
	modified   int64
}

type aggregateService struct {
	recordRepo repository.DailyRecordRepository
	goalsRepo  repository.GoalsRepository
	userRepo   repository.UserRepository
	now        func() time.Time

	mu    sync.Mutex
	cache map[cacheKey]*domain.AggregatedUserData
}

// NewAggregateService creates a new AggregateService.
func NewAggregateService(recordRepo repository.DailyRecordRepository, goalsRepo repository.GoalsRepository, userRepo repository.UserRepository) AggregateService {
	return &aggregateService{
		recordRepo: recordRepo,
		goalsRepo:  goalsRepo,
		userRepo:   userRepo,
		now:        func() time.Time { return time.Now().UTC() },
		cache:      make(map[cacheKey]*domain.AggregatedUserData),
	}
}

func (s *aggregateService) Build(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AggregatedUserData, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = DefaultAggregateWindowDays
	}

	tracer := otel.Tracer("life-tracker-api/aggregates")
	ctx, span := tracer.Start(ctx, "AggregateService.Build",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	stamp, err := s.recordRepo.Stamp(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := cacheKey{
		userID:     userID,
		windowDays: windowDays,
		count:      stamp.RecordCount,
		modified:   stamp.LastModified.UnixNano(),
	}

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	goals, err := s.goalsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	from := now.AddDate(0, 0, -(windowDays - 1)).Format(domain.DateLayout)

	records, err := s.recordRepo.ListByDateRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	data := BuildAggregates(records, *goals, windowDays, today, now)

	if outputJSON, err := json.Marshal(data); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	s.mu.Lock()
	// One snapshot per (user, window) at a time: drop stale versions.
	for k := range s.cache {
		if k.userID == userID && k.windowDays == windowDays {
			delete(s.cache, k)
		}
	}
	s.cache[key] = &data
	s.mu.Unlock()

	return &data, nil
}

func (s *aggregateService) AIContext(ctx context.Context, userID uuid.UUID, windowDays int) (string, error) {
	data, err := s.Build(ctx, userID, windowDays)
	if err != nil {
		return "", err
	}
	return RenderAIContext(*data), nil
}

// BuildAggregates reduces a window of records (ordered oldest first)
// into the complete analytics snapshot.
func BuildAggregates(records []domain.DailyRecord, goals domain.UserGoals, windowDays int, today string, now time.Time) domain.AggregatedUserData {
	data := domain.AggregatedUserData{}.Empty()
	data.LastUpdated = now
	data.DaysAnalyzed = len(records)
	if len(records) == 0 {
		return data
	}

	overview := BuildOverview(records, windowDays, today)
	data.Nutrition = domain.NutritionAggregates{
		DaysWithData:           overview.DaysWithData,
		AverageIntake:          overview.AverageIntake,
		TodayIntake:            overview.TodayIntake,
		ConsistentDeficiencies: overview.ConsistentDeficiencies,
		CalorieGoalHitRate: ComputeStreaks(records, func(r domain.DailyRecord) float64 {
			return SummarizeRecord(r).Calories
		}, goals.Calories).GoalHitRate,
		ProteinGoalHitRate: ComputeStreaks(records, func(r domain.DailyRecord) float64 {
			return SummarizeRecord(r).Protein
		}, goals.ProteinGrams).GoalHitRate,
	}

	data.Exercise = buildExerciseAggregates(records, goals)
	data.Social = buildSocialAggregates(records, goals)
	data.SimpleMetrics = buildSimpleMetricsAggregates(records, goals)
	data.Patterns = BuildPatterns(records)

	return data
}

func buildExerciseAggregates(records []domain.DailyRecord, goals domain.UserGoals) domain.ExerciseAggregates {
	agg := domain.ExerciseAggregates{}
	typeCounts := make(map[domain.WorkoutType]int)

	for _, r := range records {
		if r.ExerciseMinutes > 0 {
			agg.TotalSessions++
			agg.TotalMinutes += r.ExerciseMinutes
		}
		if r.WorkoutType != "" {
			typeCounts[r.WorkoutType]++
		}
	}

	agg.AvgMinutesPerDay = float64(agg.TotalMinutes) / float64(len(records))
	if agg.TotalSessions > 0 {
		agg.AvgMinutesPerSession = float64(agg.TotalMinutes) / float64(agg.TotalSessions)
	}
	agg.PreferredWorkoutTypes = rankByFrequency(typeCounts)
	agg.Streak = ComputeStreaks(records, func(r domain.DailyRecord) float64 {
		return float64(r.ExerciseMinutes)
	}, float64(goals.ExerciseMinutes))

	return agg
}

func buildSocialAggregates(records []domain.DailyRecord, goals domain.UserGoals) domain.SocialAggregates {
	agg := domain.SocialAggregates{}
	categoryCounts := make(map[domain.SocialCategory]int)

	for _, r := range records {
		if r.SocialMinutes > 0 {
			agg.ActiveDays++
			agg.TotalMinutes += r.SocialMinutes
		}
		if r.SocialCategory != "" {
			categoryCounts[r.SocialCategory]++
		}
	}

	agg.AvgMinutesPerDay = float64(agg.TotalMinutes) / float64(len(records))
	agg.PreferredCategories = rankByFrequency(categoryCounts)
	agg.Streak = ComputeStreaks(records, func(r domain.DailyRecord) float64 {
		return float64(r.SocialMinutes)
	}, float64(goals.SocialMinutes))

	return agg
}

func buildSimpleMetricsAggregates(records []domain.DailyRecord, goals domain.UserGoals) domain.SimpleMetricsAggregates {
	agg := domain.SimpleMetricsAggregates{DaysWithData: len(records)}

	var water, sunlight, sleep float64
	for _, r := range records {
		water += r.WaterLiters
		sunlight += float64(r.SunlightMinutes)
		sleep += r.SleepHours
	}
	days := float64(len(records))
	agg.AvgWaterLiters = water / days
	agg.AvgSunlightMinutes = sunlight / days
	agg.AvgSleepHours = sleep / days

	agg.WaterStreak = ComputeStreaks(records, func(r domain.DailyRecord) float64 {
		return r.WaterLiters
	}, goals.WaterLiters)
	agg.SunlightStreak = ComputeStreaks(records, func(r domain.DailyRecord) float64 {
		return float64(r.SunlightMinutes)
	}, float64(goals.SunlightMinutes))
	agg.SleepStreak = ComputeStreaks(records, func(r domain.DailyRecord) float64 {
		return r.SleepHours
	}, goals.SleepHours)
	agg.OverallStreak = ComputeStreaks(records, func(r domain.DailyRecord) float64 {
		return CompletionScore(r, goals)
	}, OverallCompletionGoal)

	return agg
}

// rankByFrequency orders keys by descending count, ties broken by key
// order so the ranking is deterministic.
func rankByFrequency[K ~string](counts map[K]int) []K {
	keys := make([]K, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

var weekdayNames = map[int]string{
	1: "Monday", 2: "Tuesday", 3: "Wednesday", 4: "Thursday",
	5: "Friday", 6: "Saturday", 7: "Sunday",
}

// RenderAIContext renders the snapshot as deterministic human-readable
// text for the recommendation generator. The prose is not a contract;
// the numeric facts are.
func RenderAIContext(data domain.AggregatedUserData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User health data over the last %d days.\n", data.DaysAnalyzed)
	if !data.HasData() {
		b.WriteString("\nNo data has been logged yet.\n")
		return b.String()
	}

	b.WriteString("\nNutrition:\n")
	n := data.Nutrition
	if n.HasData() {
		fmt.Fprintf(&b, "- Days with food logged: %d\n", n.DaysWithData)
		fmt.Fprintf(&b, "- Average daily intake: %.0f kcal, %.1f g protein, %.1f g carbs, %.1f g fat, %.1f g fiber\n",
			n.AverageIntake.Calories, n.AverageIntake.Protein, n.AverageIntake.Carbs, n.AverageIntake.Fat, n.AverageIntake.Fiber)
		fmt.Fprintf(&b, "- Today so far: %.0f kcal, %.1f g protein\n", n.TodayIntake.Calories, n.TodayIntake.Protein)
		fmt.Fprintf(&b, "- Calorie goal hit on %.0f%% of days, protein goal on %.0f%% of days\n",
			n.CalorieGoalHitRate*100, n.ProteinGoalHitRate*100)
		if len(n.ConsistentDeficiencies) > 0 {
			b.WriteString("- Consistent deficiencies (most severe first):\n")
			for _, d := range n.ConsistentDeficiencies {
				fmt.Fprintf(&b, "  - %s: avg %.1f %s vs %.1f %s recommended, deficient on %d of %d days\n",
					d.Nutrient, d.AverageIntake, d.Unit, d.Recommended, d.Unit, d.DeficientDays, d.TotalDays)
			}
		} else {
			b.WriteString("- No consistent nutrient deficiencies detected\n")
		}
	} else {
		b.WriteString("- No food logged in this window\n")
	}

	b.WriteString("\nExercise:\n")
	e := data.Exercise
	if e.HasData() {
		fmt.Fprintf(&b, "- %d sessions, %d minutes total (%.1f min/day, %.1f min/session)\n",
			e.TotalSessions, e.TotalMinutes, e.AvgMinutesPerDay, e.AvgMinutesPerSession)
		fmt.Fprintf(&b, "- Current streak %d days, longest %d, goal hit on %.0f%% of days\n",
			e.Streak.CurrentStreak, e.Streak.LongestStreak, e.Streak.GoalHitRate*100)
		if len(e.PreferredWorkoutTypes) > 0 {
			types := make([]string, len(e.PreferredWorkoutTypes))
			for i, t := range e.PreferredWorkoutTypes {
				types[i] = string(t)
			}
			fmt.Fprintf(&b, "- Preferred workout types: %s\n", strings.Join(types, ", "))
		}
	} else {
		b.WriteString("- No exercise logged in this window\n")
	}

	b.WriteString("\nSocial:\n")
	so := data.Social
	if so.HasData() {
		fmt.Fprintf(&b, "- Social time on %d days, %d minutes total (%.1f min/day)\n",
			so.ActiveDays, so.TotalMinutes, so.AvgMinutesPerDay)
		fmt.Fprintf(&b, "- Current streak %d days, goal hit on %.0f%% of days\n",
			so.Streak.CurrentStreak, so.Streak.GoalHitRate*100)
		if len(so.PreferredCategories) > 0 {
			cats := make([]string, len(so.PreferredCategories))
			for i, c := range so.PreferredCategories {
				cats[i] = string(c)
			}
			fmt.Fprintf(&b, "- Preferred social categories: %s\n", strings.Join(cats, ", "))
		}
	} else {
		b.WriteString("- No social activity logged in this window\n")
	}

	b.WriteString("\nDaily habits:\n")
	m := data.SimpleMetrics
	fmt.Fprintf(&b, "- Water: %.1f L/day average, current streak %d days\n", m.AvgWaterLiters, m.WaterStreak.CurrentStreak)
	fmt.Fprintf(&b, "- Sunlight: %.0f min/day average, current streak %d days\n", m.AvgSunlightMinutes, m.SunlightStreak.CurrentStreak)
	fmt.Fprintf(&b, "- Sleep: %.1f h/day average, current streak %d days\n", m.AvgSleepHours, m.SleepStreak.CurrentStreak)
	fmt.Fprintf(&b, "- Overall completion streak (all habits at half target or better): %d days\n", m.OverallStreak.CurrentStreak)

	b.WriteString("\nPatterns:\n")
	if !data.HasEnoughDataForPatterns() {
		b.WriteString("- Not enough days logged yet for reliable patterns\n")
		return b.String()
	}
	p := data.Patterns
	if p.MostActiveDay != 0 {
		fmt.Fprintf(&b, "- Most active day: %s\n", weekdayNames[p.MostActiveDay])
	}
	if p.HighestCalorieDay != 0 {
		fmt.Fprintf(&b, "- Highest calorie day: %s\n", weekdayNames[p.HighestCalorieDay])
	}
	if p.SleepExerciseCorrelation != nil {
		fmt.Fprintf(&b, "- Sleep/exercise correlation: %.2f\n", *p.SleepExerciseCorrelation)
	}
	if p.ExerciseCaloriesCorrelation != nil {
		fmt.Fprintf(&b, "- Exercise/calories correlation: %.2f\n", *p.ExerciseCaloriesCorrelation)
	}
	fmt.Fprintf(&b, "- Trends: exercise %s, nutrition %s, sleep %s\n",
		p.ExerciseTrend, p.NutritionTrend, p.SleepTrend)

	return b.String()
}

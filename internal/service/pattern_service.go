package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

const (
	// DefaultPatternWindowDays is the default lookback for pattern
	// analysis.
	DefaultPatternWindowDays = 30

	// MinCorrelationSamples is the minimum number of paired
	// observations for a correlation to be defined.
	MinCorrelationSamples = 3

	// MinTrendSamples is the minimum number of values for trend
	// classification. Below this the thirds comparison is too noisy,
	// so the trend stays unknown.
	MinTrendSamples = 4

	// TrendBand is the relative change beyond which a trend counts as
	// increasing or decreasing.
	TrendBand = 0.10
)

// PatternService builds day-of-week patterns, correlations, and trend
// classifications.
type PatternService interface {
	// Build computes pattern data over the trailing window ending
	// today.
	Build(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.PatternData, error)
}

type patternService struct {
	recordRepo repository.DailyRecordRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewPatternService creates a new PatternService.
func NewPatternService(recordRepo repository.DailyRecordRepository, userRepo repository.UserRepository) PatternService {
	return &patternService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *patternService) Build(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.PatternData, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = DefaultPatternWindowDays
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	from := now.AddDate(0, 0, -(windowDays - 1)).Format(domain.DateLayout)

	records, err := s.recordRepo.ListByDateRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	patterns := BuildPatterns(records)
	return &patterns, nil
}

// BuildPatterns reduces a window of records (ordered oldest first)
// into pattern data.
func BuildPatterns(records []domain.DailyRecord) domain.PatternData {
	patterns := domain.PatternData{}.Empty()
	if len(records) == 0 {
		return patterns
	}

	var exercise, sleep, calories []float64
	for _, r := range records {
		exercise = append(exercise, float64(r.ExerciseMinutes))
		sleep = append(sleep, r.SleepHours)
		calories = append(calories, SummarizeRecord(r).Calories)
	}

	patterns.ExerciseByDayOfWeek = groupByWeekday(records, func(r domain.DailyRecord) float64 {
		return float64(r.ExerciseMinutes)
	})
	patterns.CaloriesByDayOfWeek = groupByWeekday(records, func(r domain.DailyRecord) float64 {
		return SummarizeRecord(r).Calories
	})
	patterns.SleepByDayOfWeek = groupByWeekday(records, func(r domain.DailyRecord) float64 {
		return r.SleepHours
	})

	patterns.SleepExerciseCorrelation = PearsonCorrelation(sleep, exercise)
	patterns.ExerciseCaloriesCorrelation = PearsonCorrelation(exercise, calories)

	patterns.ExerciseTrend = ClassifyTrend(exercise)
	patterns.NutritionTrend = ClassifyTrend(calories)
	patterns.SleepTrend = ClassifyTrend(sleep)

	patterns.MostActiveDay = peakWeekday(patterns.ExerciseByDayOfWeek)
	patterns.HighestCalorieDay = peakWeekday(patterns.CaloriesByDayOfWeek)

	return patterns
}

// groupByWeekday averages a metric per ISO weekday. Weekdays without
// observations are omitted, not zero-filled.
func groupByWeekday(records []domain.DailyRecord, value MetricValueFunc) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range records {
		wd := r.Weekday()
		if wd == 0 {
			continue
		}
		sums[wd] += value(r)
		counts[wd]++
	}

	averages := make(map[int]float64, len(sums))
	for wd, sum := range sums {
		averages[wd] = sum / float64(counts[wd])
	}
	return averages
}

// peakWeekday returns the weekday with the highest average, preferring
// the earlier weekday on ties. Returns 0 for an empty mapping.
func peakWeekday(byDay map[int]float64) int {
	best := 0
	bestVal := math.Inf(-1)
	for wd := 1; wd <= 7; wd++ {
		if v, ok := byDay[wd]; ok && v > bestVal {
			best = wd
			bestVal = v
		}
	}
	return best
}

// PearsonCorrelation computes the Pearson correlation coefficient
// between two equal-length series. Returns nil when fewer than
// MinCorrelationSamples pairs are available or either series has zero
// variance — an undefined correlation is absent, never zero.
func PearsonCorrelation(x, y []float64) *float64 {
	n := len(x)
	if n != len(y) || n < MinCorrelationSamples {
		return nil
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return nil
	}

	r := numerator / math.Sqrt(denomX*denomY)
	return &r
}

// ClassifyTrend compares the mean of the most recent third of the
// values against the mean of the earliest third: more than 10% above
// is increasing, more than 10% below is decreasing, else stable.
// Fewer than MinTrendSamples values yields unknown.
func ClassifyTrend(values []float64) domain.TrendDirection {
	n := len(values)
	if n < MinTrendSamples {
		return domain.TrendUnknown
	}

	third := n / 3
	if third == 0 {
		third = 1
	}

	earlier := mean(values[:third])
	recent := mean(values[n-third:])

	if earlier == 0 {
		if recent > 0 {
			return domain.TrendIncreasing
		}
		return domain.TrendStable
	}

	change := (recent - earlier) / earlier
	switch {
	case change > TrendBand:
		return domain.TrendIncreasing
	case change < -TrendBand:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

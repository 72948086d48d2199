package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

const (
	// DefaultOverviewWindowDays is the default lookback for the
	// multi-day nutrition overview.
	DefaultOverviewWindowDays = 14

	// MaxWindowDays bounds every analytics lookback window.
	MaxWindowDays = 365
)

// OverviewService builds multi-day nutrition overviews.
type OverviewService interface {
	// Build computes the overview for the trailing lookback window
	// ending today.
	Build(ctx context.Context, userID uuid.UUID, lookbackDays int) (*domain.MultiDayNutritionOverview, error)
}

type overviewService struct {
	recordRepo repository.DailyRecordRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewOverviewService creates a new OverviewService.
func NewOverviewService(recordRepo repository.DailyRecordRepository, userRepo repository.UserRepository) OverviewService {
	return &overviewService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *overviewService) Build(ctx context.Context, userID uuid.UUID, lookbackDays int) (*domain.MultiDayNutritionOverview, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if lookbackDays <= 0 {
		lookbackDays = DefaultOverviewWindowDays
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	from := now.AddDate(0, 0, -(lookbackDays - 1)).Format(domain.DateLayout)

	records, err := s.recordRepo.ListByDateRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	overview := BuildOverview(records, lookbackDays, today)
	return &overview, nil
}

// BuildOverview reduces a window of records into the multi-day
// nutrition overview. Records must be ordered oldest first; today is
// the current calendar date in yyyy-MM-dd.
func BuildOverview(records []domain.DailyRecord, lookbackDays int, today string) domain.MultiDayNutritionOverview {
	overview := domain.MultiDayNutritionOverview{
		DaysAnalyzed:           lookbackDays,
		ConsistentDeficiencies: []domain.NutrientTrend{},
		PerNutrientTrend:       map[string]domain.NutrientTrend{},
	}

	// Today's intake comes from the unfiltered input: a record counts
	// even when it has no food entries.
	for _, r := range records {
		if r.Date == today {
			overview.TodayIntake = SummarizeRecord(r)
			break
		}
	}

	// Only days with at least one food entry carry nutrition signal.
	var dayTotals []domain.NutritionTotals
	for _, r := range records {
		if len(r.FoodEntries) == 0 {
			continue
		}
		dayTotals = append(dayTotals, SummarizeRecord(r))
	}

	overview.DaysWithData = len(dayTotals)
	if overview.DaysWithData == 0 {
		return overview
	}

	days := float64(overview.DaysWithData)
	var sum domain.NutritionTotals
	for _, t := range dayTotals {
		sum.Calories += t.Calories
		sum.Protein += t.Protein
		sum.Carbs += t.Carbs
		sum.Fat += t.Fat
		sum.Fiber += t.Fiber
		sum.VitaminC += t.VitaminC
		sum.VitaminD += t.VitaminD
		sum.Calcium += t.Calcium
		sum.Iron += t.Iron
		sum.Potassium += t.Potassium
	}
	overview.AverageIntake = domain.NutritionTotals{
		Calories:  sum.Calories / days,
		Protein:   sum.Protein / days,
		Carbs:     sum.Carbs / days,
		Fat:       sum.Fat / days,
		Fiber:     sum.Fiber / days,
		VitaminC:  sum.VitaminC / days,
		VitaminD:  sum.VitaminD / days,
		Calcium:   sum.Calcium / days,
		Iron:      sum.Iron / days,
		Potassium: sum.Potassium / days,
	}

	for _, name := range domain.TrackedNutrients {
		recommended := domain.RecommendedDailyValues[name]
		deficientDays := 0
		for _, t := range dayTotals {
			if t.NutrientValue(name) < recommended*MultiDayDeficiencyThreshold {
				deficientDays++
			}
		}

		trend := domain.NutrientTrend{
			Nutrient:      name,
			AverageIntake: overview.AverageIntake.NutrientValue(name),
			Recommended:   recommended,
			Unit:          domain.NutrientUnits[name],
			DeficientDays: deficientDays,
			TotalDays:     overview.DaysWithData,
		}
		overview.PerNutrientTrend[name] = trend

		if float64(deficientDays) >= days*ConsistencyThreshold {
			overview.ConsistentDeficiencies = append(overview.ConsistentDeficiencies, trend)
		}
	}

	// Most severe first; SliceStable keeps the declaration order for
	// equal rates.
	sort.SliceStable(overview.ConsistentDeficiencies, func(i, j int) bool {
		return overview.ConsistentDeficiencies[i].DeficiencyRate() > overview.ConsistentDeficiencies[j].DeficiencyRate()
	})

	return overview
}

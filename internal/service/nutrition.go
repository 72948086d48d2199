package service

import (
	"github.com/gstrauss42/life-tracker/internal/domain"
)

const (
	// SingleDayDeficiencyThreshold flags a nutrient on one day when
	// intake is below this fraction of the recommended value.
	SingleDayDeficiencyThreshold = 0.5

	// MultiDayDeficiencyThreshold counts a day as deficient in the
	// multi-day analysis. Softer than the single-day bar so recurring
	// mild shortfalls still surface.
	MultiDayDeficiencyThreshold = 0.7

	// ConsistencyThreshold is the fraction of data-bearing days a
	// nutrient must be deficient to count as a consistent deficiency.
	ConsistencyThreshold = 0.5

	// MaxGoalPercentage caps percentage-of-goal values.
	MaxGoalPercentage = 200.0
)

// SummarizeRecord sums all non-nil nutrient values across a record's
// food entries. Nil values count as zero; an empty entry list yields
// all-zero totals.
func SummarizeRecord(record domain.DailyRecord) domain.NutritionTotals {
	var totals domain.NutritionTotals
	for _, e := range record.FoodEntries {
		totals.Calories += deref(e.Calories)
		totals.Protein += deref(e.Protein)
		totals.Carbs += deref(e.Carbs)
		totals.Fat += deref(e.Fat)
		totals.Fiber += deref(e.Fiber)
		totals.Sugar += deref(e.Sugar)
		totals.Sodium += deref(e.Sodium)
		totals.VitaminA += deref(e.VitaminA)
		totals.VitaminC += deref(e.VitaminC)
		totals.VitaminD += deref(e.VitaminD)
		totals.VitaminE += deref(e.VitaminE)
		totals.VitaminK += deref(e.VitaminK)
		totals.VitaminB12 += deref(e.VitaminB12)
		totals.Folate += deref(e.Folate)
		totals.Calcium += deref(e.Calcium)
		totals.Iron += deref(e.Iron)
		totals.Potassium += deref(e.Potassium)
		totals.Magnesium += deref(e.Magnesium)
	}
	return totals
}

// NutrientDeficiencies returns one Deficiency per tracked nutrient
// whose total is below half the recommended daily value, in the fixed
// tracked-nutrient order.
func NutrientDeficiencies(totals domain.NutritionTotals) []domain.Deficiency {
	var deficiencies []domain.Deficiency
	for _, name := range domain.TrackedNutrients {
		recommended := domain.RecommendedDailyValues[name]
		current := totals.NutrientValue(name)
		if current < recommended*SingleDayDeficiencyThreshold {
			deficiencies = append(deficiencies, domain.Deficiency{
				Nutrient:    name,
				Current:     current,
				Recommended: recommended,
				Unit:        domain.NutrientUnits[name],
			})
		}
	}
	return deficiencies
}

// GoalPercentage returns current/recommended as a percentage clamped
// to [0, 200]. A recommended value of zero yields 0.
func GoalPercentage(current, recommended float64) float64 {
	if recommended == 0 {
		return 0
	}
	pct := current / recommended * 100
	if pct < 0 {
		return 0
	}
	if pct > MaxGoalPercentage {
		return MaxGoalPercentage
	}
	return pct
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

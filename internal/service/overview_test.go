package service

import (
	"fmt"
	"math"
	"testing"

	"github.com/gstrauss42/life-tracker/internal/domain"
)

// dayWithProtein builds a record for day i (oldest first) with one food
// entry carrying the given protein grams and a fixed calorie load.
func dayWithProtein(i int, protein float64) domain.DailyRecord {
	return domain.DailyRecord{
		Date: fmt.Sprintf("2024-03-%02d", i+1),
		FoodEntries: []domain.FoodEntry{
			{Calories: floatPtr(2000), Protein: floatPtr(protein)},
		},
	}
}

func TestBuildOverview_NoData(t *testing.T) {
	overview := BuildOverview(nil, 14, "2024-03-15")
	if overview.DaysAnalyzed != 14 {
		t.Errorf("DaysAnalyzed = %d, want 14", overview.DaysAnalyzed)
	}
	if overview.DaysWithData != 0 {
		t.Errorf("DaysWithData = %d, want 0", overview.DaysWithData)
	}
	if overview.HasEnoughData() {
		t.Error("zero data days should not count as enough data")
	}
	if overview.ConsistentDeficiencies == nil || len(overview.ConsistentDeficiencies) != 0 {
		t.Errorf("ConsistentDeficiencies = %v, want empty non-nil slice", overview.ConsistentDeficiencies)
	}
}

func TestBuildOverview_EmptyDaysCarryNoSignal(t *testing.T) {
	// A record without food entries still supplies today's intake but
	// does not count as a data day.
	records := []domain.DailyRecord{
		{Date: "2024-03-14", FoodEntries: []domain.FoodEntry{{Calories: floatPtr(1800)}}},
		{Date: "2024-03-15", WaterLiters: 2.0},
	}
	overview := BuildOverview(records, 14, "2024-03-15")
	if overview.DaysWithData != 1 {
		t.Errorf("DaysWithData = %d, want 1", overview.DaysWithData)
	}
	if overview.TodayIntake.Calories != 0 {
		t.Errorf("TodayIntake.Calories = %v, want 0 for foodless today", overview.TodayIntake.Calories)
	}
	if overview.AverageIntake.Calories != 1800 {
		t.Errorf("AverageIntake.Calories = %v, want 1800", overview.AverageIntake.Calories)
	}
}

func TestBuildOverview_ConsistentDeficiency(t *testing.T) {
	// Protein RDV 50, multi-day threshold 0.7 => deficient below 35 g.
	// 6 of 10 days deficient crosses the 0.5 consistency bar.
	var records []domain.DailyRecord
	for i := 0; i < 6; i++ {
		records = append(records, dayWithProtein(i, 20))
	}
	for i := 6; i < 10; i++ {
		records = append(records, dayWithProtein(i, 60))
	}

	overview := BuildOverview(records, 10, "2024-03-10")

	found := false
	for _, d := range overview.ConsistentDeficiencies {
		if d.Nutrient == "protein" {
			found = true
			if d.DeficientDays != 6 || d.TotalDays != 10 {
				t.Errorf("protein trend = %+v, want 6/10", d)
			}
		}
	}
	if !found {
		t.Error("protein deficient on 6 of 10 days should be consistent")
	}

	trend, ok := overview.PerNutrientTrend["protein"]
	if !ok {
		t.Fatal("protein missing from per-nutrient trends")
	}
	if math.Abs(trend.DeficiencyRate()-0.6) > 1e-9 {
		t.Errorf("DeficiencyRate = %v, want 0.6", trend.DeficiencyRate())
	}
}

func TestBuildOverview_BelowConsistencyBar(t *testing.T) {
	// 4 of 10 deficient days stays below the 0.5 consistency bar.
	var records []domain.DailyRecord
	for i := 0; i < 4; i++ {
		records = append(records, dayWithProtein(i, 20))
	}
	for i := 4; i < 10; i++ {
		records = append(records, dayWithProtein(i, 60))
	}

	overview := BuildOverview(records, 10, "2024-03-10")
	for _, d := range overview.ConsistentDeficiencies {
		if d.Nutrient == "protein" {
			t.Error("protein deficient on only 4 of 10 days should not be consistent")
		}
	}
}

func TestBuildOverview_SeverityOrdering(t *testing.T) {
	// Protein deficient every day, fiber deficient on 6 of 10: protein
	// (rate 1.0) must come before fiber (rate 0.6).
	var records []domain.DailyRecord
	for i := 0; i < 10; i++ {
		fiber := 30.0 // above the 19.6 threshold
		if i < 6 {
			fiber = 5.0
		}
		records = append(records, domain.DailyRecord{
			Date: fmt.Sprintf("2024-03-%02d", i+1),
			FoodEntries: []domain.FoodEntry{
				{Calories: floatPtr(2000), Protein: floatPtr(10), Fiber: floatPtr(fiber)},
			},
		})
	}

	overview := BuildOverview(records, 10, "2024-03-10")

	var order []string
	for _, d := range overview.ConsistentDeficiencies {
		if d.Nutrient == "protein" || d.Nutrient == "fiber" {
			order = append(order, d.Nutrient)
		}
	}
	if len(order) != 2 || order[0] != "protein" || order[1] != "fiber" {
		t.Errorf("severity order = %v, want [protein fiber]", order)
	}
}

func TestMultiDayNutritionOverview_HasEnoughData(t *testing.T) {
	overview := domain.MultiDayNutritionOverview{DaysWithData: 1}
	if overview.HasEnoughData() {
		t.Error("one data day should not be enough")
	}
	overview.DaysWithData = 2
	if !overview.HasEnoughData() {
		t.Error("two data days should be enough")
	}
}

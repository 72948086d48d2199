package domain

// NutritionTotals is the sum of all non-nil nutrient values across a
// record's food entries. Derived on demand, never persisted.
// @Description Summed nutrient intake for one day.
type NutritionTotals struct {
	Calories   float64 `json:"calories" example:"1850"`
	Protein    float64 `json:"protein_g" example:"62"`
	Carbs      float64 `json:"carbs_g" example:"210"`
	Fat        float64 `json:"fat_g" example:"70"`
	Fiber      float64 `json:"fiber_g" example:"22"`
	Sugar      float64 `json:"sugar_g" example:"48"`
	Sodium     float64 `json:"sodium_mg" example:"1900"`
	VitaminA   float64 `json:"vitamin_a_mcg"`
	VitaminC   float64 `json:"vitamin_c_mg" example:"75"`
	VitaminD   float64 `json:"vitamin_d_mcg" example:"12"`
	VitaminE   float64 `json:"vitamin_e_mg"`
	VitaminK   float64 `json:"vitamin_k_mcg"`
	VitaminB12 float64 `json:"vitamin_b12_mcg"`
	Folate     float64 `json:"folate_mcg"`
	Calcium    float64 `json:"calcium_mg" example:"820"`
	Iron       float64 `json:"iron_mg" example:"14"`
	Potassium  float64 `json:"potassium_mg" example:"3100"`
	Magnesium  float64 `json:"magnesium_mg"`
}

// RecommendedDailyValues is the fixed recommended daily intake table.
// Immutable and process-wide; shared freely across goroutines.
var RecommendedDailyValues = map[string]float64{
	"calories":  2000,
	"protein":   50,
	"carbs":     275,
	"fat":       78,
	"fiber":     28,
	"sugar":     50,   // upper bound
	"sodium":    2300, // upper bound
	"vitamin_c": 90,
	"vitamin_d": 20,
	"calcium":   1000,
	"iron":      18,
	"potassium": 4700,
}

// NutrientUnits maps tracked nutrient names to their display unit.
var NutrientUnits = map[string]string{
	"calories":  "kcal",
	"protein":   "g",
	"carbs":     "g",
	"fat":       "g",
	"fiber":     "g",
	"sugar":     "g",
	"sodium":    "mg",
	"vitamin_c": "mg",
	"vitamin_d": "mcg",
	"calcium":   "mg",
	"iron":      "mg",
	"potassium": "mg",
}

// TrackedNutrients is the fixed, ordered set of nutrients checked for
// deficiencies. Order is part of the contract: deficiency lists keep
// this order for equal severity.
var TrackedNutrients = []string{
	"protein",
	"fiber",
	"vitamin_c",
	"vitamin_d",
	"calcium",
	"iron",
	"potassium",
}

// NutrientValue returns the total for a tracked nutrient by name.
func (t NutritionTotals) NutrientValue(name string) float64 {
	switch name {
	case "calories":
		return t.Calories
	case "protein":
		return t.Protein
	case "carbs":
		return t.Carbs
	case "fat":
		return t.Fat
	case "fiber":
		return t.Fiber
	case "sugar":
		return t.Sugar
	case "sodium":
		return t.Sodium
	case "vitamin_c":
		return t.VitaminC
	case "vitamin_d":
		return t.VitaminD
	case "calcium":
		return t.Calcium
	case "iron":
		return t.Iron
	case "potassium":
		return t.Potassium
	}
	return 0
}

// Deficiency flags one nutrient falling below half its recommended
// daily value for a single day.
// @Description A nutrient intake shortfall for one day.
type Deficiency struct {
	Nutrient    string  `json:"nutrient" example:"iron"`
	Current     float64 `json:"current" example:"6.2"`
	Recommended float64 `json:"recommended" example:"18"`
	Unit        string  `json:"unit" example:"mg"`
}

// NutrientTrend summarizes one nutrient's intake over a multi-day
// window.
// @Description Multi-day intake trend for a single nutrient.
type NutrientTrend struct {
	Nutrient      string  `json:"nutrient" example:"protein"`
	AverageIntake float64 `json:"average_intake" example:"38.5"`
	Recommended   float64 `json:"recommended" example:"50"`
	Unit          string  `json:"unit" example:"g"`
	DeficientDays int     `json:"deficient_days" example:"6"`
	TotalDays     int     `json:"total_days" example:"10"`
}

// DeficiencyRate is the fraction of data-bearing days the nutrient was
// below the multi-day deficiency threshold.
func (n NutrientTrend) DeficiencyRate() float64 {
	if n.TotalDays == 0 {
		return 0
	}
	return float64(n.DeficientDays) / float64(n.TotalDays)
}

// MultiDayNutritionOverview is the derived nutrition snapshot over a
// lookback window. Recomputed fully on every request.
// @Description Aggregated nutrition analysis over a lookback window.
type MultiDayNutritionOverview struct {
	// Days in the lookback window
	DaysAnalyzed int `json:"days_analyzed" example:"14"`
	// Days that had at least one food entry
	DaysWithData int `json:"days_with_data" example:"11"`
	// Average intake across data-bearing days
	AverageIntake NutritionTotals `json:"average_intake"`
	// Totals for the current calendar date (zero if nothing logged)
	TodayIntake NutritionTotals `json:"today_intake"`
	// Nutrients deficient on at least half of data-bearing days,
	// sorted by deficiency rate descending
	ConsistentDeficiencies []NutrientTrend `json:"consistent_deficiencies"`
	// Per-nutrient trend for every tracked nutrient
	PerNutrientTrend map[string]NutrientTrend `json:"per_nutrient_trend"`
}

// HasEnoughData reports whether the window holds enough data-bearing
// days to draw multi-day conclusions.
func (o MultiDayNutritionOverview) HasEnoughData() bool {
	return o.DaysWithData >= 2
}

// MultiDayNutritionOverviewResponse is the response for the nutrition
// overview endpoint.
// @Description Multi-day nutrition overview with data-sufficiency flag.
type MultiDayNutritionOverviewResponse struct {
	MultiDayNutritionOverview
	HasEnoughData bool `json:"has_enough_data" example:"true"`
}

// TodayNutrition is the response for the single-day nutrition endpoint.
// @Description Today's nutrient totals, deficiencies, and goal progress.
type TodayNutrition struct {
	Date         string          `json:"date" example:"2024-03-15"`
	Totals       NutritionTotals `json:"totals"`
	Deficiencies []Deficiency    `json:"deficiencies"`
	// Percent of calorie goal reached, clamped to [0,200]
	CaloriePercent float64 `json:"calorie_percent" example:"82.5"`
	// Percent of protein goal reached, clamped to [0,200]
	ProteinPercent float64 `json:"protein_percent" example:"64"`
}

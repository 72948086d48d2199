package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical yyyy-MM-dd key for a daily record.
const DateLayout = "2006-01-02"

// WorkoutType categorizes a day's main exercise activity.
// @Description Workout category for the day's exercise.
type WorkoutType string

const (
	WorkoutTypeCardio      WorkoutType = "CARDIO"
	WorkoutTypeStrength    WorkoutType = "STRENGTH"
	WorkoutTypeFlexibility WorkoutType = "FLEXIBILITY"
	WorkoutTypeSports      WorkoutType = "SPORTS"
	WorkoutTypeWalking     WorkoutType = "WALKING"
)

// SocialCategory categorizes a day's main social activity.
// @Description Social activity category for the day.
type SocialCategory string

const (
	SocialCategoryFamily    SocialCategory = "FAMILY"
	SocialCategoryFriends   SocialCategory = "FRIENDS"
	SocialCategoryWork      SocialCategory = "WORK"
	SocialCategoryCommunity SocialCategory = "COMMUNITY"
)

// DailyRecord is one calendar day's logged health data. Exactly one
// record exists per (user, date); the date string is the key.
type DailyRecord struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_records_user_date" json:"user_id"`
	Date            string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_records_user_date" json:"date"`
	WaterLiters     float64        `gorm:"not null;default:0" json:"water_liters"`
	ExerciseMinutes int            `gorm:"not null;default:0" json:"exercise_minutes"`
	SunlightMinutes int            `gorm:"not null;default:0" json:"sunlight_minutes"`
	SleepHours      float64        `gorm:"not null;default:0" json:"sleep_hours"`
	SocialMinutes   int            `gorm:"not null;default:0" json:"social_minutes"`
	WorkoutType     WorkoutType    `gorm:"type:varchar(20)" json:"workout_type,omitempty"`
	SocialCategory  SocialCategory `gorm:"type:varchar(20)" json:"social_category,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes"`
	FoodEntries     []FoodEntry    `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE" json:"food_entries"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyRecord) TableName() string {
	return "daily_records"
}

// Weekday returns the ISO weekday (1=Monday..7=Sunday) of the record's
// date, or 0 if the date string does not parse.
func (r *DailyRecord) Weekday() int {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return 0
	}
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// FoodEntry is one logged meal or item belonging to a DailyRecord.
// Nutrient fields are nullable: nil means "not estimated", which the UI
// renders differently from zero. Summation treats nil as zero.
type FoodEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"record_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	LoggedAt time.Time `gorm:"not null" json:"logged_at"`

	Calories   *float64 `json:"calories,omitempty"`
	Protein    *float64 `json:"protein_g,omitempty"`
	Carbs      *float64 `json:"carbs_g,omitempty"`
	Fat        *float64 `json:"fat_g,omitempty"`
	Fiber      *float64 `json:"fiber_g,omitempty"`
	Sugar      *float64 `json:"sugar_g,omitempty"`
	Sodium     *float64 `json:"sodium_mg,omitempty"`
	VitaminA   *float64 `json:"vitamin_a_mcg,omitempty"`
	VitaminC   *float64 `json:"vitamin_c_mg,omitempty"`
	VitaminD   *float64 `json:"vitamin_d_mcg,omitempty"`
	VitaminE   *float64 `json:"vitamin_e_mg,omitempty"`
	VitaminK   *float64 `json:"vitamin_k_mcg,omitempty"`
	VitaminB12 *float64 `json:"vitamin_b12_mcg,omitempty"`
	Folate     *float64 `json:"folate_mcg,omitempty"`
	Calcium    *float64 `json:"calcium_mg,omitempty"`
	Iron       *float64 `json:"iron_mg,omitempty"`
	Potassium  *float64 `json:"potassium_mg,omitempty"`
	Magnesium  *float64 `json:"magnesium_mg,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FoodEntry) TableName() string {
	return "food_entries"
}

// UpsertDailyRecordRequest is the request body for creating or updating
// a day's record. All metric fields are optional; omitted fields keep
// their current value.
// @Description Request payload for logging a day's metrics.
type UpsertDailyRecordRequest struct {
	// Water intake in liters
	WaterLiters *float64 `json:"water_liters,omitempty" validate:"omitempty,min=0" example:"2.5"`
	// Exercise duration in minutes
	ExerciseMinutes *int `json:"exercise_minutes,omitempty" validate:"omitempty,min=0" example:"45"`
	// Sunlight exposure in minutes
	SunlightMinutes *int `json:"sunlight_minutes,omitempty" validate:"omitempty,min=0" example:"30"`
	// Sleep duration in hours
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24" example:"7.5"`
	// Social activity in minutes
	SocialMinutes *int `json:"social_minutes,omitempty" validate:"omitempty,min=0" example:"60"`
	// Workout category for the day
	WorkoutType *WorkoutType `json:"workout_type,omitempty" validate:"omitempty,oneof=CARDIO STRENGTH FLEXIBILITY SPORTS WALKING" example:"CARDIO"`
	// Social activity category
	SocialCategory *SocialCategory `json:"social_category,omitempty" validate:"omitempty,oneof=FAMILY FRIENDS WORK COMMUNITY" example:"FRIENDS"`
	// Free-form notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// CreateFoodEntryRequest is the request body for logging a food item.
// @Description Request payload for logging one meal or food item.
// Nutrient fields are optional; leave them out when not estimated.
type CreateFoodEntryRequest struct {
	// Food or meal name
	Name string `json:"name" validate:"required,max=255" example:"Oatmeal with berries"`
	// Time the food was logged (defaults to now)
	LoggedAt *time.Time `json:"logged_at,omitempty"`

	Calories   *float64 `json:"calories,omitempty" validate:"omitempty,min=0" example:"320"`
	Protein    *float64 `json:"protein_g,omitempty" validate:"omitempty,min=0" example:"12"`
	Carbs      *float64 `json:"carbs_g,omitempty" validate:"omitempty,min=0" example:"54"`
	Fat        *float64 `json:"fat_g,omitempty" validate:"omitempty,min=0" example:"6"`
	Fiber      *float64 `json:"fiber_g,omitempty" validate:"omitempty,min=0" example:"8"`
	Sugar      *float64 `json:"sugar_g,omitempty" validate:"omitempty,min=0" example:"14"`
	Sodium     *float64 `json:"sodium_mg,omitempty" validate:"omitempty,min=0" example:"120"`
	VitaminA   *float64 `json:"vitamin_a_mcg,omitempty" validate:"omitempty,min=0"`
	VitaminC   *float64 `json:"vitamin_c_mg,omitempty" validate:"omitempty,min=0" example:"24"`
	VitaminD   *float64 `json:"vitamin_d_mcg,omitempty" validate:"omitempty,min=0"`
	VitaminE   *float64 `json:"vitamin_e_mg,omitempty" validate:"omitempty,min=0"`
	VitaminK   *float64 `json:"vitamin_k_mcg,omitempty" validate:"omitempty,min=0"`
	VitaminB12 *float64 `json:"vitamin_b12_mcg,omitempty" validate:"omitempty,min=0"`
	Folate     *float64 `json:"folate_mcg,omitempty" validate:"omitempty,min=0"`
	Calcium    *float64 `json:"calcium_mg,omitempty" validate:"omitempty,min=0" example:"180"`
	Iron       *float64 `json:"iron_mg,omitempty" validate:"omitempty,min=0" example:"2.1"`
	Potassium  *float64 `json:"potassium_mg,omitempty" validate:"omitempty,min=0" example:"320"`
	Magnesium  *float64 `json:"magnesium_mg,omitempty" validate:"omitempty,min=0"`
}

// DailyRecordResponse is the response body for daily record endpoints.
// @Description One day's logged health data with food entries.
type DailyRecordResponse struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	Date            string         `json:"date" example:"2024-03-15"`
	WaterLiters     float64        `json:"water_liters" example:"2.5"`
	ExerciseMinutes int            `json:"exercise_minutes" example:"45"`
	SunlightMinutes int            `json:"sunlight_minutes" example:"30"`
	SleepHours      float64        `json:"sleep_hours" example:"7.5"`
	SocialMinutes   int            `json:"social_minutes" example:"60"`
	WorkoutType     WorkoutType    `json:"workout_type,omitempty" example:"CARDIO"`
	SocialCategory  SocialCategory `json:"social_category,omitempty" example:"FRIENDS"`
	Notes           string         `json:"notes"`
	FoodEntries     []FoodEntry    `json:"food_entries"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (r *DailyRecord) ToResponse() DailyRecordResponse {
	entries := r.FoodEntries
	if entries == nil {
		entries = []FoodEntry{}
	}
	return DailyRecordResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            r.Date,
		WaterLiters:     r.WaterLiters,
		ExerciseMinutes: r.ExerciseMinutes,
		SunlightMinutes: r.SunlightMinutes,
		SleepHours:      r.SleepHours,
		SocialMinutes:   r.SocialMinutes,
		WorkoutType:     r.WorkoutType,
		SocialCategory:  r.SocialCategory,
		Notes:           r.Notes,
		FoodEntries:     entries,
		UpdatedAt:       r.UpdatedAt,
	}
}

// DailyRecordListResponse is the response body for listing records.
// @Description Paginated list of daily records.
type DailyRecordListResponse struct {
	// Array of daily records, oldest first
	Data []DailyRecordResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DailyRecordFilter contains filter parameters for listing records
type DailyRecordFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}

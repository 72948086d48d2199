package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/langfuse"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	createFunc      func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getGoalsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error)
	updateGoalsFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.UserGoals, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), DisplayName: req.DisplayName, Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) GetGoals(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error) {
	if m.getGoalsFunc != nil {
		return m.getGoalsFunc(ctx, userID)
	}
	goals := domain.DefaultGoals(userID)
	return &goals, nil
}

func (m *MockUserService) UpdateGoals(ctx context.Context, userID uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.UserGoals, error) {
	if m.updateGoalsFunc != nil {
		return m.updateGoalsFunc(ctx, userID, req)
	}
	goals := domain.DefaultGoals(userID)
	return &goals, nil
}

// MockRecordService is a mock implementation of service.RecordService
type MockRecordService struct {
	upsertFunc       func(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error)
	getByDateFunc    func(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error)
	listFunc         func(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error)
	addFoodEntryFunc func(ctx context.Context, userID uuid.UUID, date string, req *domain.CreateFoodEntryRequest) (*domain.FoodEntry, error)
	bulkClearFunc    func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockRecordService) Upsert(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, date, req)
	}
	return &domain.DailyRecord{ID: uuid.New(), UserID: userID, Date: date}, nil
}

func (m *MockRecordService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, date)
	}
	return nil, domain.ErrNotFound
}

func (m *MockRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DailyRecordListResponse{
		Data:       []domain.DailyRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockRecordService) AddFoodEntry(ctx context.Context, userID uuid.UUID, date string, req *domain.CreateFoodEntryRequest) (*domain.FoodEntry, error) {
	if m.addFoodEntryFunc != nil {
		return m.addFoodEntryFunc(ctx, userID, date, req)
	}
	return &domain.FoodEntry{ID: uuid.New(), Name: req.Name}, nil
}

func (m *MockRecordService) BulkClear(ctx context.Context, userID uuid.UUID) error {
	if m.bulkClearFunc != nil {
		return m.bulkClearFunc(ctx, userID)
	}
	return nil
}

// MockNutritionService is a mock implementation of service.NutritionService
type MockNutritionService struct {
	todayFunc func(ctx context.Context, userID uuid.UUID) (*domain.TodayNutrition, error)
}

func (m *MockNutritionService) Today(ctx context.Context, userID uuid.UUID) (*domain.TodayNutrition, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID)
	}
	return &domain.TodayNutrition{Date: "2024-03-15", Deficiencies: []domain.Deficiency{}}, nil
}

// MockOverviewService is a mock implementation of service.OverviewService
type MockOverviewService struct {
	buildFunc func(ctx context.Context, userID uuid.UUID, lookbackDays int) (*domain.MultiDayNutritionOverview, error)
}

func (m *MockOverviewService) Build(ctx context.Context, userID uuid.UUID, lookbackDays int) (*domain.MultiDayNutritionOverview, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, userID, lookbackDays)
	}
	return &domain.MultiDayNutritionOverview{
		DaysAnalyzed:           lookbackDays,
		ConsistentDeficiencies: []domain.NutrientTrend{},
		PerNutrientTrend:       map[string]domain.NutrientTrend{},
	}, nil
}

// MockStreakService is a mock implementation of service.StreakService
type MockStreakService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID, metric string, windowDays int) (*domain.StreakResult, error)
}

func (m *MockStreakService) Compute(ctx context.Context, userID uuid.UUID, metric string, windowDays int) (*domain.StreakResult, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, metric, windowDays)
	}
	return &domain.StreakResult{}, nil
}

// MockPatternService is a mock implementation of service.PatternService
type MockPatternService struct {
	buildFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.PatternData, error)
}

func (m *MockPatternService) Build(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.PatternData, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, userID, windowDays)
	}
	patterns := domain.PatternData{}.Empty()
	return &patterns, nil
}

// MockAggregateService is a mock implementation of service.AggregateService
type MockAggregateService struct {
	buildFunc     func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AggregatedUserData, error)
	aiContextFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (string, error)
}

func (m *MockAggregateService) Build(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AggregatedUserData, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, userID, windowDays)
	}
	data := domain.AggregatedUserData{}.Empty()
	return &data, nil
}

func (m *MockAggregateService) AIContext(ctx context.Context, userID uuid.UUID, windowDays int) (string, error) {
	if m.aiContextFunc != nil {
		return m.aiContextFunc(ctx, userID, windowDays)
	}
	return "", nil
}

// MockRecommendationService is a mock implementation of service.RecommendationService
type MockRecommendationService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AIAnalysis, error)
	latestFunc   func(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error)
}

func (m *MockRecommendationService) Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AIAnalysis, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, windowDays)
	}
	return &domain.AIAnalysis{}, nil
}

func (m *MockRecommendationService) Latest(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

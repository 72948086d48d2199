package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockDailyRecordRepository is a mock implementation of DailyRecordRepository
type MockDailyRecordRepository struct {
	records map[string]*domain.DailyRecord // keyed by userID:date
	stamp   repository.ChangeStamp
	err     error
}

func NewMockDailyRecordRepository() *MockDailyRecordRepository {
	return &MockDailyRecordRepository{records: make(map[string]*domain.DailyRecord)}
}

func recordKey(userID uuid.UUID, date string) string {
	return userID.String() + ":" + date
}

func (m *MockDailyRecordRepository) add(record domain.DailyRecord) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records[recordKey(record.UserID, record.Date)] = &record
	m.stamp.RecordCount = int64(len(m.records))
	m.stamp.LastModified = time.Now()
}

func (m *MockDailyRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[recordKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockDailyRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DailyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyRecord
	for _, record := range m.records {
		if record.UserID == userID && record.Date >= from && record.Date <= to {
			result = append(result, *record)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *MockDailyRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) ([]domain.DailyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyRecord
	for _, record := range m.records {
		if record.UserID != userID {
			continue
		}
		if filter.From != "" && record.Date < filter.From {
			continue
		}
		if filter.To != "" && record.Date > filter.To {
			continue
		}
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *MockDailyRecordRepository) Upsert(ctx context.Context, record *domain.DailyRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records[recordKey(record.UserID, record.Date)] = record
	m.stamp.RecordCount = int64(len(m.records))
	m.stamp.LastModified = time.Now()
	return nil
}

func (m *MockDailyRecordRepository) AddFoodEntry(ctx context.Context, entry *domain.FoodEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	for _, record := range m.records {
		if record.ID == entry.RecordID {
			record.FoodEntries = append(record.FoodEntries, *entry)
			m.stamp.LastModified = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockDailyRecordRepository) BulkClear(ctx context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for key, record := range m.records {
		if record.UserID == userID {
			delete(m.records, key)
		}
	}
	m.stamp.RecordCount = int64(len(m.records))
	m.stamp.LastModified = time.Now()
	return nil
}

func (m *MockDailyRecordRepository) Stamp(ctx context.Context, userID uuid.UUID) (repository.ChangeStamp, error) {
	if m.err != nil {
		return repository.ChangeStamp{}, m.err
	}
	return m.stamp, nil
}

// MockGoalsRepository is a mock implementation of GoalsRepository
type MockGoalsRepository struct {
	goals map[uuid.UUID]*domain.UserGoals
	err   error
}

func NewMockGoalsRepository() *MockGoalsRepository {
	return &MockGoalsRepository{goals: make(map[uuid.UUID]*domain.UserGoals)}
}

func (m *MockGoalsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error) {
	if m.err != nil {
		return nil, m.err
	}
	if goals, ok := m.goals[userID]; ok {
		return goals, nil
	}
	defaults := domain.DefaultGoals(userID)
	return &defaults, nil
}

func (m *MockGoalsRepository) Put(ctx context.Context, goals *domain.UserGoals) error {
	if m.err != nil {
		return m.err
	}
	m.goals[goals.UserID] = goals
	return nil
}

// MockAnalysisRepository is a mock implementation of AnalysisRepository
type MockAnalysisRepository struct {
	analyses map[uuid.UUID][]*domain.AIAnalysis
	err      error
}

func NewMockAnalysisRepository() *MockAnalysisRepository {
	return &MockAnalysisRepository{analyses: make(map[uuid.UUID][]*domain.AIAnalysis)}
}

func (m *MockAnalysisRepository) Save(ctx context.Context, userID uuid.UUID, analysis *domain.AIAnalysis) error {
	if m.err != nil {
		return m.err
	}
	m.analyses[userID] = append(m.analyses[userID], analysis)
	return nil
}

func (m *MockAnalysisRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := m.analyses[userID]
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return list[len(list)-1], nil
}

// MockRecommendationLLM is a mock implementation of llm.RecommendationLLM
type MockRecommendationLLM struct {
	analysis    *domain.AIAnalysis
	err         error
	lastContext string
	calls       int
}

func (m *MockRecommendationLLM) GenerateRecommendations(ctx context.Context, aiContext string) (*domain.AIAnalysis, error) {
	m.calls++
	m.lastContext = aiContext
	if m.err != nil {
		return nil, m.err
	}
	return m.analysis, nil
}

func floatPtr(v float64) *float64 {
	return &v
}

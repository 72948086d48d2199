package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
	"github.com/gstrauss42/life-tracker/pkg/pagination"
)

type RecordService interface {
	// Upsert creates or patches the record for one date.
	Upsert(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error)
	// AddFoodEntry logs a food item on the date's record, creating the
	// record if the day has no entry yet.
	AddFoodEntry(ctx context.Context, userID uuid.UUID, date string, req *domain.CreateFoodEntryRequest) (*domain.FoodEntry, error)
	// BulkClear wipes the user's entire log history.
	BulkClear(ctx context.Context, userID uuid.UUID) error
}

type recordService struct {
	repo     repository.DailyRecordRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewRecordService(repo repository.DailyRecordRepository, userRepo repository.UserRepository) RecordService {
	return &recordService{
		repo:     repo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *recordService) Upsert(ctx context.Context, userID uuid.UUID, date string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Load the current record so omitted fields keep their values
	record, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		record = &domain.DailyRecord{UserID: userID, Date: date}
	}

	if req.WaterLiters != nil {
		record.WaterLiters = *req.WaterLiters
	}
	if req.ExerciseMinutes != nil {
		record.ExerciseMinutes = *req.ExerciseMinutes
	}
	if req.SunlightMinutes != nil {
		record.SunlightMinutes = *req.SunlightMinutes
	}
	if req.SleepHours != nil {
		record.SleepHours = *req.SleepHours
	}
	if req.SocialMinutes != nil {
		record.SocialMinutes = *req.SocialMinutes
	}
	if req.WorkoutType != nil {
		record.WorkoutType = *req.WorkoutType
	}
	if req.SocialCategory != nil {
		record.SocialCategory = *req.SocialCategory
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *recordService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyRecord, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.GetByDate(ctx, userID, date)
}

func (s *recordService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error) {
	if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
		return nil, domain.ErrInvalidCursor
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.DailyRecordListResponse{
		Data: make([]domain.DailyRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *recordService) AddFoodEntry(ctx context.Context, userID uuid.UUID, date string, req *domain.CreateFoodEntryRequest) (*domain.FoodEntry, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	record, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		record = &domain.DailyRecord{UserID: userID, Date: date}
		if err := s.repo.Upsert(ctx, record); err != nil {
			return nil, err
		}
		record, err = s.repo.GetByDate(ctx, userID, date)
		if err != nil {
			return nil, err
		}
	}

	loggedAt := s.now()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}

	entry := &domain.FoodEntry{
		RecordID:   record.ID,
		Name:       req.Name,
		LoggedAt:   loggedAt,
		Calories:   req.Calories,
		Protein:    req.Protein,
		Carbs:      req.Carbs,
		Fat:        req.Fat,
		Fiber:      req.Fiber,
		Sugar:      req.Sugar,
		Sodium:     req.Sodium,
		VitaminA:   req.VitaminA,
		VitaminC:   req.VitaminC,
		VitaminD:   req.VitaminD,
		VitaminE:   req.VitaminE,
		VitaminK:   req.VitaminK,
		VitaminB12: req.VitaminB12,
		Folate:     req.Folate,
		Calcium:    req.Calcium,
		Iron:       req.Iron,
		Potassium:  req.Potassium,
		Magnesium:  req.Magnesium,
	}

	if err := s.repo.AddFoodEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *recordService) BulkClear(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	return s.repo.BulkClear(ctx, userID)
}

package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"gorm.io/gorm"
)

type AnalysisRepository interface {
	// Save persists a generated analysis for later retrieval.
	Save(ctx context.Context, userID uuid.UUID, analysis *domain.AIAnalysis) error
	// GetLatest returns the most recently stored analysis, or
	// ErrNotFound when none exists.
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Save(ctx context.Context, userID uuid.UUID, analysis *domain.AIAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	stored := domain.StoredAnalysis{
		UserID:  userID,
		Payload: payload,
	}
	return r.db.WithContext(ctx).Create(&stored).Error
}

func (r *analysisRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.AIAnalysis, error) {
	var stored domain.StoredAnalysis
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&stored).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var analysis domain.AIAnalysis
	if err := json.Unmarshal(stored.Payload, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

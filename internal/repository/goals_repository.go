package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalsRepository interface {
	// Get returns the user's goals, falling back to defaults when the
	// user has never configured any.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error)
	// Put creates or replaces the user's goals.
	Put(ctx context.Context, goals *domain.UserGoals) error
}

type goalsRepository struct {
	db *gorm.DB
}

func NewGoalsRepository(db *gorm.DB) GoalsRepository {
	return &goalsRepository{db: db}
}

func (r *goalsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error) {
	var goals domain.UserGoals
	err := r.db.WithContext(ctx).First(&goals, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			defaults := domain.DefaultGoals(userID)
			return &defaults, nil
		}
		return nil, err
	}
	return &goals, nil
}

func (r *goalsRepository) Put(ctx context.Context, goals *domain.UserGoals) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(goals).Error
}

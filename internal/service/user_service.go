package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstrauss42/life-tracker/internal/domain"
	"github.com/gstrauss42/life-tracker/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetGoals(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error)
	UpdateGoals(ctx context.Context, userID uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.UserGoals, error)
}

type userService struct {
	repo      repository.UserRepository
	goalsRepo repository.GoalsRepository
}

func NewUserService(repo repository.UserRepository, goalsRepo repository.GoalsRepository) UserService {
	return &userService{repo: repo, goalsRepo: goalsRepo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:          uuid.New(),
		DisplayName: req.DisplayName,
		Timezone:    req.Timezone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetGoals(ctx context.Context, userID uuid.UUID) (*domain.UserGoals, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.goalsRepo.Get(ctx, userID)
}

func (s *userService) UpdateGoals(ctx context.Context, userID uuid.UUID, req *domain.UpdateGoalsRequest) (*domain.UserGoals, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Start from the current goals (or defaults) and apply the patch
	goals, err := s.goalsRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.WaterLiters != nil {
		goals.WaterLiters = *req.WaterLiters
	}
	if req.ExerciseMinutes != nil {
		goals.ExerciseMinutes = *req.ExerciseMinutes
	}
	if req.SunlightMinutes != nil {
		goals.SunlightMinutes = *req.SunlightMinutes
	}
	if req.SleepHours != nil {
		goals.SleepHours = *req.SleepHours
	}
	if req.SocialMinutes != nil {
		goals.SocialMinutes = *req.SocialMinutes
	}
	if req.Calories != nil {
		goals.Calories = *req.Calories
	}
	if req.ProteinGrams != nil {
		goals.ProteinGrams = *req.ProteinGrams
	}

	if err := s.goalsRepo.Put(ctx, goals); err != nil {
		return nil, err
	}

	return goals, nil
}

package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrTrainerExists   = errors.New("user already has a trainer profile")
)

// TrainerInput carries the editable fields of a trainer profile.
type TrainerInput struct {
	Specialty       string
	ExperienceYears int
}

type TrainerService interface {
	CreateTrainer(ctx context.Context, userID primitive.ObjectID, input TrainerInput) (*domain.Trainer, error)
	GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	UpdateTrainer(ctx context.Context, id primitive.ObjectID, input TrainerInput) (*domain.Trainer, error)
	// DeleteTrainer removes the trainer, its workout sessions and their attendance.
	DeleteTrainer(ctx context.Context, id primitive.ObjectID) error
}

// trainerService implements the TrainerService interface.
type trainerService struct {
	repos Repositories
	rules deleteRules
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(repos Repositories) TrainerService {
	return &trainerService{repos: repos, rules: deleteRules{repos: repos}}
}

func (s *trainerService) CreateTrainer(ctx context.Context, userID primitive.ObjectID, input TrainerInput) (*domain.Trainer, error) {
	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	_, err := s.repos.Trainers.GetByUserID(ctx, userID)
	if err == nil {
		return nil, ErrTrainerExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	trainer := &domain.Trainer{
		UserID:          userID,
		Specialty:       strings.TrimSpace(input.Specialty),
		ExperienceYears: input.ExperienceYears,
	}
	trainerID, err := s.repos.Trainers.Create(ctx, trainer)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrTrainerExists
		}
		return nil, err
	}
	return s.GetTrainer(ctx, trainerID)
}

// GetTrainer retrieves a trainer with its user loaded.
func (s *trainerService) GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.repos.Trainers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if err := newRelations(s.repos).fillTrainer(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	trainers, err := s.repos.Trainers.List(ctx)
	if err != nil {
		return nil, err
	}
	rel := newRelations(s.repos)
	for i := range trainers {
		if err := rel.fillTrainer(ctx, &trainers[i]); err != nil {
			return nil, err
		}
	}
	return trainers, nil
}

func (s *trainerService) UpdateTrainer(ctx context.Context, id primitive.ObjectID, input TrainerInput) (*domain.Trainer, error) {
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	trainer.Specialty = strings.TrimSpace(input.Specialty)
	trainer.ExperienceYears = input.ExperienceYears

	if err := s.repos.Trainers.Update(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) DeleteTrainer(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repos.Trainers.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	if err := s.rules.deleteTrainer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound = errors.New("workout session not found")
)

// SessionInput carries the fields of a workout session.
type SessionInput struct {
	Name            string
	TrainerID       primitive.ObjectID
	StartTime       time.Time
	DurationMinutes int
	MaxParticipants int
}

type SessionService interface {
	CreateSession(ctx context.Context, input SessionInput) (*domain.WorkoutSession, error)
	GetSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	// ListSessions returns matching sessions, earliest start first.
	ListSessions(ctx context.Context, filter repository.SessionFilter) ([]domain.WorkoutSession, error)
	UpdateSession(ctx context.Context, id primitive.ObjectID, input SessionInput) (*domain.WorkoutSession, error)
	// DeleteSession removes the session together with its attendance records.
	DeleteSession(ctx context.Context, id primitive.ObjectID) error
}

// sessionService implements the SessionService interface.
type sessionService struct {
	repos Repositories
	rules deleteRules
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(repos Repositories) SessionService {
	return &sessionService{repos: repos, rules: deleteRules{repos: repos}}
}

func (in SessionInput) apply(session *domain.WorkoutSession) {
	session.Name = strings.TrimSpace(in.Name)
	session.TrainerID = in.TrainerID
	session.StartTime = in.StartTime.UTC()
	session.DurationMinutes = in.DurationMinutes
	session.MaxParticipants = in.MaxParticipants
}

func (s *sessionService) CreateSession(ctx context.Context, input SessionInput) (*domain.WorkoutSession, error) {
	session := &domain.WorkoutSession{}
	input.apply(session)
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireTrainer(ctx, session.TrainerID); err != nil {
		return nil, err
	}

	sessionID, err := s.repos.Sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.GetSession(ctx, sessionID)
}

// GetSession retrieves a session with its trainer loaded.
func (s *sessionService) GetSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.repos.Sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if err := newRelations(s.repos).fillSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, filter repository.SessionFilter) ([]domain.WorkoutSession, error) {
	sessions, err := s.repos.Sessions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rel := newRelations(s.repos)
	for i := range sessions {
		if err := rel.fillSession(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id primitive.ObjectID, input SessionInput) (*domain.WorkoutSession, error) {
	session, err := s.repos.Sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	input.apply(session)
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireTrainer(ctx, session.TrainerID); err != nil {
		return nil, err
	}

	if err := s.repos.Sessions.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s.GetSession(ctx, id)
}

func (s *sessionService) DeleteSession(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repos.Sessions.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	if err := s.rules.deleteSession(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

func (s *sessionService) requireTrainer(ctx context.Context, trainerID primitive.ObjectID) error {
	if _, err := s.repos.Trainers.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	return nil
}

package repository

import (
	"alcyxob/gym-membership/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	// ErrConflict is returned when a write would break a uniqueness constraint
	// (username, one client/trainer profile per user, one attendance per client and session).
	ErrConflict = RepositoryError("unique constraint violated")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MembershipPlanRepository defines the interface for interacting with membership plans.
type MembershipPlanRepository interface {
	Create(ctx context.Context, plan *domain.MembershipPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MembershipPlan, error)
	List(ctx context.Context) ([]domain.MembershipPlan, error)
	Update(ctx context.Context, plan *domain.MembershipPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ClientRepository defines the interface for interacting with client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ClearMembershipPlan removes the plan reference from every client holding
	// planID and returns how many clients were changed.
	ClearMembershipPlan(ctx context.Context, planID primitive.ObjectID) (int64, error)
}

// TrainerRepository defines the interface for interacting with trainer profiles.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SessionFilter narrows WorkoutSessionRepository.List. Zero fields match everything.
type SessionFilter struct {
	TrainerID *primitive.ObjectID
	From      *time.Time // StartTime >= From
	To        *time.Time // StartTime < To
}

// WorkoutSessionRepository defines the interface for interacting with workout sessions.
// Lists are ordered by start time, earliest first.
type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	List(ctx context.Context, filter SessionFilter) ([]domain.WorkoutSession, error)
	Update(ctx context.Context, session *domain.WorkoutSession) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListIDsByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]primitive.ObjectID, error)
	DeleteByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error)
}

// AttendanceRepository defines the interface for interacting with attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *domain.Attendance) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Attendance, error)
	GetByClientAndSession(ctx context.Context, clientID, sessionID primitive.ObjectID) (*domain.Attendance, error)
	ListBySession(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Attendance, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Attendance, error)
	Update(ctx context.Context, attendance *domain.Attendance) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) (int64, error)
	DeleteBySessionIDs(ctx context.Context, sessionIDs []primitive.ObjectID) (int64, error)
}

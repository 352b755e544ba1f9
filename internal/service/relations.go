package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// relations loads the records a rendering refers to and caches them for the
// duration of one call. A missing related record is not an error: the record
// then renders with the referenced id instead.
type relations struct {
	repos    Repositories
	users    map[primitive.ObjectID]*domain.User
	plans    map[primitive.ObjectID]*domain.MembershipPlan
	clients  map[primitive.ObjectID]*domain.Client
	trainers map[primitive.ObjectID]*domain.Trainer
	sessions map[primitive.ObjectID]*domain.WorkoutSession
}

func newRelations(repos Repositories) *relations {
	return &relations{
		repos:    repos,
		users:    map[primitive.ObjectID]*domain.User{},
		plans:    map[primitive.ObjectID]*domain.MembershipPlan{},
		clients:  map[primitive.ObjectID]*domain.Client{},
		trainers: map[primitive.ObjectID]*domain.Trainer{},
		sessions: map[primitive.ObjectID]*domain.WorkoutSession{},
	}
}

// tolerateMissing drops repository.ErrNotFound.
func tolerateMissing(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func (r *relations) user(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	user, err := r.repos.Users.GetByID(ctx, id)
	if err = tolerateMissing(err); err != nil {
		return nil, err
	}
	if user != nil {
		user.PasswordHash = ""
	}
	r.users[id] = user
	return user, nil
}

func (r *relations) plan(ctx context.Context, id primitive.ObjectID) (*domain.MembershipPlan, error) {
	if plan, ok := r.plans[id]; ok {
		return plan, nil
	}
	plan, err := r.repos.Plans.GetByID(ctx, id)
	if err = tolerateMissing(err); err != nil {
		return nil, err
	}
	r.plans[id] = plan
	return plan, nil
}

func (r *relations) client(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	if client, ok := r.clients[id]; ok {
		return client, nil
	}
	client, err := r.repos.Clients.GetByID(ctx, id)
	if err = tolerateMissing(err); err != nil {
		return nil, err
	}
	if client != nil {
		if err := r.fillClient(ctx, client); err != nil {
			return nil, err
		}
	}
	r.clients[id] = client
	return client, nil
}

func (r *relations) trainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	if trainer, ok := r.trainers[id]; ok {
		return trainer, nil
	}
	trainer, err := r.repos.Trainers.GetByID(ctx, id)
	if err = tolerateMissing(err); err != nil {
		return nil, err
	}
	if trainer != nil {
		if err := r.fillTrainer(ctx, trainer); err != nil {
			return nil, err
		}
	}
	r.trainers[id] = trainer
	return trainer, nil
}

func (r *relations) session(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	if session, ok := r.sessions[id]; ok {
		return session, nil
	}
	session, err := r.repos.Sessions.GetByID(ctx, id)
	if err = tolerateMissing(err); err != nil {
		return nil, err
	}
	if session != nil {
		if err := r.fillSession(ctx, session); err != nil {
			return nil, err
		}
	}
	r.sessions[id] = session
	return session, nil
}

func (r *relations) fillClient(ctx context.Context, client *domain.Client) error {
	user, err := r.user(ctx, client.UserID)
	if err != nil {
		return err
	}
	client.User = user
	client.MembershipPlan = nil
	if client.MembershipPlanID != nil {
		plan, err := r.plan(ctx, *client.MembershipPlanID)
		if err != nil {
			return err
		}
		client.MembershipPlan = plan
	}
	return nil
}

func (r *relations) fillTrainer(ctx context.Context, trainer *domain.Trainer) error {
	user, err := r.user(ctx, trainer.UserID)
	if err != nil {
		return err
	}
	trainer.User = user
	return nil
}

func (r *relations) fillSession(ctx context.Context, session *domain.WorkoutSession) error {
	trainer, err := r.trainer(ctx, session.TrainerID)
	if err != nil {
		return err
	}
	session.Trainer = trainer
	return nil
}

func (r *relations) fillAttendance(ctx context.Context, attendance *domain.Attendance) error {
	client, err := r.client(ctx, attendance.ClientID)
	if err != nil {
		return err
	}
	session, err := r.session(ctx, attendance.WorkoutSessionID)
	if err != nil {
		return err
	}
	attendance.Client = client
	attendance.WorkoutSession = session
	return nil
}

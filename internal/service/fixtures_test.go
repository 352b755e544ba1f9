package service

import (
	"alcyxob/gym-membership/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// gym wires every service to one fake store.
type gym struct {
	store      *fakeStore
	users      UserService
	plans      PlanService
	clients    ClientService
	trainers   TrainerService
	sessions   SessionService
	attendance AttendanceService
}

func newGym() *gym {
	store := newFakeStore()
	repos := store.repos()
	return &gym{
		store:      store,
		users:      NewUserService(repos),
		plans:      NewPlanService(repos),
		clients:    NewClientService(repos),
		trainers:   NewTrainerService(repos),
		sessions:   NewSessionService(repos),
		attendance: NewAttendanceService(repos),
	}
}

func (g *gym) user(t *testing.T, username, first, last string) *domain.User {
	t.Helper()
	u, err := g.users.Register(context.Background(), RegisterUserInput{
		Username:  username,
		Password:  "password-" + username,
		FirstName: first,
		LastName:  last,
	})
	require.NoError(t, err)
	return u
}

func (g *gym) plan(t *testing.T, name string, days int, price string) *domain.MembershipPlan {
	t.Helper()
	p, err := g.plans.CreatePlan(context.Background(), PlanInput{Name: name, DurationDays: days, Price: price})
	require.NoError(t, err)
	return p
}

func (g *gym) client(t *testing.T, userID primitive.ObjectID) *domain.Client {
	t.Helper()
	c, err := g.clients.CreateClient(context.Background(), userID, MembershipInput{})
	require.NoError(t, err)
	return c
}

func (g *gym) trainer(t *testing.T, userID primitive.ObjectID) *domain.Trainer {
	t.Helper()
	tr, err := g.trainers.CreateTrainer(context.Background(), userID, TrainerInput{Specialty: "Strength", ExperienceYears: 5})
	require.NoError(t, err)
	return tr
}

func (g *gym) session(t *testing.T, trainerID primitive.ObjectID, name string, start time.Time) *domain.WorkoutSession {
	t.Helper()
	s, err := g.sessions.CreateSession(context.Background(), SessionInput{
		Name:            name,
		TrainerID:       trainerID,
		StartTime:       start,
		DurationMinutes: 60,
		MaxParticipants: 10,
	})
	require.NoError(t, err)
	return s
}

func (g *gym) attend(t *testing.T, clientID, sessionID primitive.ObjectID) *domain.Attendance {
	t.Helper()
	a, err := g.attendance.RecordAttendance(context.Background(), clientID, sessionID)
	require.NoError(t, err)
	return a
}

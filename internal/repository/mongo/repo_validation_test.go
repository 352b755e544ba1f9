package mongo

import (
	"alcyxob/gym-membership/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// lazyDatabase returns a database handle whose client never dials: the
// assertions below must fail before any command is sent.
func lazyDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("gym_membership_test")
}

func TestRepositoriesRejectInvalidRecordsBeforeWriting(t *testing.T) {
	ctx := context.Background()
	db := lazyDatabase(t)

	_, err := NewMongoUserRepository(db).Create(ctx, &domain.User{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewMongoMembershipPlanRepository(db).Create(ctx, &domain.MembershipPlan{Name: "Broken", DurationDays: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewMongoClientRepository(db).Create(ctx, &domain.Client{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewMongoTrainerRepository(db).Create(ctx, &domain.Trainer{UserID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = NewMongoWorkoutSessionRepository(db).Update(ctx, &domain.WorkoutSession{
		ID:              primitive.NewObjectID(),
		Name:            "Spin",
		TrainerID:       primitive.NewObjectID(),
		StartTime:       time.Now(),
		DurationMinutes: 5,
		MaxParticipants: 10,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewMongoAttendanceRepository(db).Create(ctx, &domain.Attendance{ClientID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

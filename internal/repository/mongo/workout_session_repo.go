// internal/repository/mongo/workout_session_repo.go
package mongo

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutSessionCollectionName = "workout_sessions"

// mongoWorkoutSessionRepository implements repository.WorkoutSessionRepository
type mongoWorkoutSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutSessionRepository creates a new WorkoutSession repository.
func NewMongoWorkoutSessionRepository(db *mongo.Database) repository.WorkoutSessionRepository {
	return &mongoWorkoutSessionRepository{
		collection: db.Collection(workoutSessionCollectionName),
	}
}

func (r *mongoWorkoutSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if err := session.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	session.ID = primitive.NilObjectID // The driver generates _id on insert
	session.StartTime = session.StartTime.UTC()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	id, err := insertOne(ctx, r.collection, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	session.ID = id
	return id, nil
}

func (r *mongoWorkoutSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return findOne[domain.WorkoutSession](ctx, r.collection, bson.M{"_id": id})
}

// List returns the sessions matching filter, earliest start first.
func (r *mongoWorkoutSessionRepository) List(ctx context.Context, filter repository.SessionFilter) ([]domain.WorkoutSession, error) {
	return findAll[domain.WorkoutSession](ctx, r.collection, sessionFilterDoc(filter), sessionOrdering())
}

func (r *mongoWorkoutSessionRepository) Update(ctx context.Context, session *domain.WorkoutSession) error {
	if err := session.Validate(); err != nil {
		return err
	}
	update := bson.M{
		"$set": bson.M{
			"name":            session.Name,
			"trainerId":       session.TrainerID,
			"startTime":       session.StartTime.UTC(),
			"durationMinutes": session.DurationMinutes,
			"maxParticipants": session.MaxParticipants,
			"updatedAt":       time.Now().UTC(),
		},
	}
	return updateByID(ctx, r.collection, session.ID, update)
}

func (r *mongoWorkoutSessionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

// ListIDsByTrainer returns the ids of every session led by trainerID.
func (r *mongoWorkoutSessionRepository) ListIDsByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	type idOnly struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	docs, err := findAll[idOnly](ctx, r.collection, bson.M{"trainerId": trainerID}, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids, nil
}

func (r *mongoWorkoutSessionRepository) DeleteByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"trainerId": trainerID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func sessionFilterDoc(f repository.SessionFilter) bson.M {
	filter := bson.M{}
	if f.TrainerID != nil {
		filter["trainerId"] = *f.TrainerID
	}
	window := bson.M{}
	if f.From != nil {
		window["$gte"] = f.From.UTC()
	}
	if f.To != nil {
		window["$lt"] = f.To.UTC()
	}
	if len(window) > 0 {
		filter["startTime"] = window
	}
	return filter
}

// sessionOrdering is the default ordering of workout sessions: start time
// ascending, ties broken by creation.
func sessionOrdering() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}, {Key: "_id", Value: 1}})
}

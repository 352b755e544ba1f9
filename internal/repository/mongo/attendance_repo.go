package mongo

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const attendanceCollectionName = "attendances"

// mongoAttendanceRepository implements repository.AttendanceRepository
type mongoAttendanceRepository struct {
	collection *mongo.Collection
}

// NewMongoAttendanceRepository creates a new Attendance repository backed by MongoDB.
func NewMongoAttendanceRepository(db *mongo.Database) repository.AttendanceRepository {
	return &mongoAttendanceRepository{
		collection: db.Collection(attendanceCollectionName),
	}
}

// Create inserts an attendance record. A second record for the same client and
// session yields repository.ErrConflict through the unique compound index.
func (r *mongoAttendanceRepository) Create(ctx context.Context, attendance *domain.Attendance) (primitive.ObjectID, error) {
	if err := attendance.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	attendance.ID = primitive.NilObjectID // The driver generates _id on insert
	now := time.Now().UTC()
	attendance.CreatedAt = now
	attendance.UpdatedAt = now

	id, err := insertOne(ctx, r.collection, attendance)
	if err != nil {
		return primitive.NilObjectID, err
	}
	attendance.ID = id
	return id, nil
}

func (r *mongoAttendanceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Attendance, error) {
	return findOne[domain.Attendance](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoAttendanceRepository) GetByClientAndSession(ctx context.Context, clientID, sessionID primitive.ObjectID) (*domain.Attendance, error) {
	return findOne[domain.Attendance](ctx, r.collection, bson.M{"clientId": clientID, "workoutSessionId": sessionID})
}

func (r *mongoAttendanceRepository) ListBySession(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Attendance, error) {
	return findAll[domain.Attendance](ctx, r.collection, bson.M{"workoutSessionId": sessionID}, byCreation())
}

func (r *mongoAttendanceRepository) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Attendance, error) {
	return findAll[domain.Attendance](ctx, r.collection, bson.M{"clientId": clientID}, byCreation())
}

// Update rewrites the presence fields. The client and session of a record are fixed.
func (r *mongoAttendanceRepository) Update(ctx context.Context, attendance *domain.Attendance) error {
	if err := attendance.Validate(); err != nil {
		return err
	}

	set := bson.M{
		"attended":  attendance.Attended,
		"updatedAt": time.Now().UTC(),
	}
	unset := bson.M{}
	setOptional(set, unset, "checkInTime", attendance.CheckInTime)

	return updateByID(ctx, r.collection, attendance.ID, setAndUnset(set, unset))
}

func (r *mongoAttendanceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

func (r *mongoAttendanceRepository) DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *mongoAttendanceRepository) DeleteBySessionIDs(ctx context.Context, sessionIDs []primitive.ObjectID) (int64, error) {
	if len(sessionIDs) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"workoutSessionId": bson.M{"$in": sessionIDs}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

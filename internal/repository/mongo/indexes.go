package mongo

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes lists, per collection, the indexes that back the schema's
// uniqueness rules and the lookups the delete rules depend on.
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		userCollectionName: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("username_unique"),
			},
		},
		membershipPlanCollectionName: {
			{
				Keys:    bson.D{{Key: "durationDays", Value: 1}, {Key: "name", Value: 1}},
				Options: options.Index().SetName("duration_name"),
			},
		},
		clientCollectionName: {
			{
				// At most one client profile per user.
				Keys:    bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("user_unique"),
			},
			{
				// Used when a plan is deleted and its clients are cleared.
				Keys:    bson.D{{Key: "membershipPlanId", Value: 1}},
				Options: options.Index().SetSparse(true).SetName("membership_plan"),
			},
		},
		trainerCollectionName: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("user_unique"),
			},
		},
		workoutSessionCollectionName: {
			{
				Keys:    bson.D{{Key: "startTime", Value: 1}},
				Options: options.Index().SetName("start_time"),
			},
			{
				Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "startTime", Value: 1}},
				Options: options.Index().SetName("trainer_start_time"),
			},
		},
		attendanceCollectionName: {
			{
				// One attendance record per client and session. Also serves lookups by client.
				Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "workoutSessionId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("client_session_unique"),
			},
			{
				Keys:    bson.D{{Key: "workoutSessionId", Value: 1}},
				Options: options.Index().SetName("workout_session"),
			},
		},
	}
}

// EnsureIndexes creates every schema index in db. It is idempotent and is run
// by cmd/migrate before the application uses the database.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collectionName, indexes := range collectionIndexes() {
		names, err := db.Collection(collectionName).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return fmt.Errorf("create indexes for collection %s: %w", collectionName, err)
		}
		log.Printf("INFO: Ensured indexes %v on collection %s", names, collectionName)
	}
	return nil
}

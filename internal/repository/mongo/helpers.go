package mongo

import (
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mapWriteError turns unique index violations into repository.ErrConflict.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", repository.ErrConflict, err)
	}
	return err
}

func insertOne(ctx context.Context, collection *mongo.Collection, doc any) (primitive.ObjectID, error) {
	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, mapWriteError(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func findOne[T any](ctx context.Context, collection *mongo.Collection, filter any) (*T, error) {
	var doc T
	if err := collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// findAll decodes every match. It returns an empty slice, never nil, when
// nothing matches.
func findAll[T any](ctx context.Context, collection *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func updateByID(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID, update bson.M) error {
	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return mapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, collection *mongo.Collection, id primitive.ObjectID) error {
	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// setOptional puts key in set when value is present and in unset otherwise,
// so that clearing an optional field removes it from the document.
func setOptional[T any](set, unset bson.M, key string, value *T) {
	if value != nil {
		set[key] = *value
		return
	}
	unset[key] = ""
}

func setAndUnset(set, unset bson.M) bson.M {
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// byCreation orders documents by insertion (ObjectIDs grow over time).
func byCreation() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

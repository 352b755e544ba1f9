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

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements repository.TrainerRepository
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new Trainer repository backed by MongoDB.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if err := trainer.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	trainer.ID = primitive.NilObjectID // The driver generates _id on insert
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	id, err := insertOne(ctx, r.collection, trainer)
	if err != nil {
		return primitive.NilObjectID, err
	}
	trainer.ID = id
	return id, nil
}

func (r *mongoTrainerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	return findOne[domain.Trainer](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoTrainerRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Trainer, error) {
	return findOne[domain.Trainer](ctx, r.collection, bson.M{"userId": userID})
}

func (r *mongoTrainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	return findAll[domain.Trainer](ctx, r.collection, bson.M{}, byCreation())
}

func (r *mongoTrainerRepository) Update(ctx context.Context, trainer *domain.Trainer) error {
	if err := trainer.Validate(); err != nil {
		return err
	}
	update := bson.M{
		"$set": bson.M{
			"specialty":       trainer.Specialty,
			"experienceYears": trainer.ExperienceYears,
			"updatedAt":       time.Now().UTC(),
		},
	}
	return updateByID(ctx, r.collection, trainer.ID, update)
}

func (r *mongoTrainerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

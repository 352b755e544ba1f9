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

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create validates and inserts a new user. A taken username yields repository.ErrConflict.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if err := user.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	user.ID = primitive.NilObjectID // The driver generates _id on insert
	now := time.Now().UTC()
	if user.DateJoined.IsZero() {
		user.DateJoined = now
	}
	user.UpdatedAt = now

	id, err := insertOne(ctx, r.collection, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	user.ID = id
	return id, nil
}

// GetByID retrieves a user by their MongoDB ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return findOne[domain.User](ctx, r.collection, bson.M{"_id": id})
}

// GetByUsername retrieves a user by their unique username.
func (r *mongoUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.collection, bson.M{"username": username})
}

// List returns all users ordered by username.
func (r *mongoUserRepository) List(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, r.collection, bson.M{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
}

// Update replaces the mutable fields of an existing user.
func (r *mongoUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	set := bson.M{
		"username":     user.Username,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"isStaff":      user.IsStaff,
		"isActive":     user.IsActive,
		"phone":        user.Phone,
		"updatedAt":    time.Now().UTC(),
	}
	unset := bson.M{}
	setOptional(set, unset, "lastLogin", user.LastLogin)
	setOptional(set, unset, "dateOfBirth", user.DateOfBirth)

	return updateByID(ctx, r.collection, user.ID, setAndUnset(set, unset))
}

// Delete removes only the user document; dependent profiles are removed by the caller.
func (r *mongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

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

const clientCollectionName = "clients"

// mongoClientRepository implements repository.ClientRepository
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new Client repository backed by MongoDB.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a client profile. A second profile for the same user yields
// repository.ErrConflict through the unique userId index.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	if err := client.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	client.ID = primitive.NilObjectID // The driver generates _id on insert
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	id, err := insertOne(ctx, r.collection, client)
	if err != nil {
		return primitive.NilObjectID, err
	}
	client.ID = id
	return id, nil
}

func (r *mongoClientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	return findOne[domain.Client](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoClientRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Client, error) {
	return findOne[domain.Client](ctx, r.collection, bson.M{"userId": userID})
}

func (r *mongoClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return findAll[domain.Client](ctx, r.collection, bson.M{}, byCreation())
}

// Update rewrites the membership fields. The owning user cannot change.
func (r *mongoClientRepository) Update(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}
	setOptional(set, unset, "membershipPlanId", client.MembershipPlanID)
	setOptional(set, unset, "membershipStart", client.MembershipStart)
	setOptional(set, unset, "membershipEnd", client.MembershipEnd)

	return updateByID(ctx, r.collection, client.ID, setAndUnset(set, unset))
}

func (r *mongoClientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

// ClearMembershipPlan unsets membershipPlanId on every client holding planID.
func (r *mongoClientRepository) ClearMembershipPlan(ctx context.Context, planID primitive.ObjectID) (int64, error) {
	filter := bson.M{"membershipPlanId": planID}
	update := bson.M{
		"$unset": bson.M{"membershipPlanId": ""},
		"$set":   bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

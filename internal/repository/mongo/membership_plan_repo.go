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

const membershipPlanCollectionName = "membership_plans"

// mongoMembershipPlanRepository implements repository.MembershipPlanRepository
type mongoMembershipPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoMembershipPlanRepository creates a new MembershipPlan repository backed by MongoDB.
func NewMongoMembershipPlanRepository(db *mongo.Database) repository.MembershipPlanRepository {
	return &mongoMembershipPlanRepository{
		collection: db.Collection(membershipPlanCollectionName),
	}
}

func (r *mongoMembershipPlanRepository) Create(ctx context.Context, plan *domain.MembershipPlan) (primitive.ObjectID, error) {
	if err := plan.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	plan.ID = primitive.NilObjectID // The driver generates _id on insert
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	id, err := insertOne(ctx, r.collection, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	plan.ID = id
	return id, nil
}

func (r *mongoMembershipPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MembershipPlan, error) {
	return findOne[domain.MembershipPlan](ctx, r.collection, bson.M{"_id": id})
}

// List returns all plans, shortest duration first.
func (r *mongoMembershipPlanRepository) List(ctx context.Context) ([]domain.MembershipPlan, error) {
	sort := bson.D{{Key: "durationDays", Value: 1}, {Key: "name", Value: 1}}
	return findAll[domain.MembershipPlan](ctx, r.collection, bson.M{}, options.Find().SetSort(sort))
}

func (r *mongoMembershipPlanRepository) Update(ctx context.Context, plan *domain.MembershipPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	update := bson.M{
		"$set": bson.M{
			"name":         plan.Name,
			"durationDays": plan.DurationDays,
			"price":        plan.Price,
			"description":  plan.Description,
			"updatedAt":    time.Now().UTC(),
		},
	}
	return updateByID(ctx, r.collection, plan.ID, update)
}

// Delete removes the plan document. Clients referencing it must be cleared first.
func (r *mongoMembershipPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}

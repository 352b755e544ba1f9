package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipPlan is a purchasable subscription tier.
type MembershipPlan struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required,max=100"`
	DurationDays int                `bson:"durationDays" json:"durationDays" validate:"gt=0"`
	Price        Price              `bson:"price" json:"price" validate:"-"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the field constraints of the plan, including price precision.
func (p *MembershipPlan) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	return p.Price.Validate()
}

func (p *MembershipPlan) String() string {
	return fmt.Sprintf("%s (%d days)", p.Name, p.DurationDays)
}

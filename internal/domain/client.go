package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is the gym-member profile of a User. A user has at most one.
type Client struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID  `bson:"userId" json:"userId" validate:"required"`                              // Unique; deleted with the user
	MembershipPlanID *primitive.ObjectID `bson:"membershipPlanId,omitempty" json:"membershipPlanId,omitempty"`         // Cleared when the plan is deleted
	MembershipStart  *time.Time          `bson:"membershipStart,omitempty" json:"membershipStart,omitempty"`           // Date only
	MembershipEnd    *time.Time          `bson:"membershipEnd,omitempty" json:"membershipEnd,omitempty"`               // Date only, inclusive
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`

	// Loaded on demand, never persisted.
	User           *User           `bson:"-" json:"user,omitempty" validate:"-"`
	MembershipPlan *MembershipPlan `bson:"-" json:"membershipPlan,omitempty" validate:"-"`
}

// Validate checks the field constraints of the client record.
func (c *Client) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.MembershipStart != nil && c.MembershipEnd != nil && c.MembershipEnd.Before(*c.MembershipStart) {
		return fmt.Errorf("%w: membershipEnd must not precede membershipStart", ErrValidation)
	}
	return nil
}

// MembershipActive reports whether the client holds a plan covering the
// calendar day of on.
func (c *Client) MembershipActive(on time.Time) bool {
	if c.MembershipPlanID == nil || c.MembershipStart == nil {
		return false
	}
	day := DateOf(on)
	if day.Before(*c.MembershipStart) {
		return false
	}
	return c.MembershipEnd == nil || !day.After(*c.MembershipEnd)
}

func (c *Client) String() string {
	return "Client: " + personLabel(c.User, c.UserID)
}

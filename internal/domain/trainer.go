package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trainer is the staff profile of a User who runs workout sessions.
type Trainer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId" validate:"required"` // Unique; deleted with the user
	Specialty       string             `bson:"specialty" json:"specialty" validate:"required,max=100"`
	ExperienceYears int                `bson:"experienceYears" json:"experienceYears" validate:"gte=0"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`

	User *User `bson:"-" json:"user,omitempty" validate:"-"`
}

// Validate checks the field constraints of the trainer record.
func (t *Trainer) Validate() error {
	return validateStruct(t)
}

func (t *Trainer) String() string {
	return "Trainer: " + personLabel(t.User, t.UserID)
}

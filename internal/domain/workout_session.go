package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MinSessionMinutes is the shortest workout session that can be scheduled.
const MinSessionMinutes = 10

// SessionTimeLayout is how a session's start time is rendered (DD.MM.YYYY HH:MM).
const SessionTimeLayout = "02.01.2006 15:04"

// WorkoutSession is a scheduled class led by a trainer. Sessions are listed by
// start time, earliest first.
type WorkoutSession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name" validate:"required,max=100"`
	TrainerID       primitive.ObjectID `bson:"trainerId" json:"trainerId" validate:"required"` // Deleted with the trainer
	StartTime       time.Time          `bson:"startTime" json:"startTime" validate:"required"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes" validate:"gte=10"`
	MaxParticipants int                `bson:"maxParticipants" json:"maxParticipants" validate:"gt=0"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`

	Trainer *Trainer `bson:"-" json:"trainer,omitempty" validate:"-"`
}

// Validate checks the field constraints of the session record.
func (s *WorkoutSession) Validate() error {
	return validateStruct(s)
}

// EndTime is the start time plus the session duration.
func (s *WorkoutSession) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

func (s *WorkoutSession) String() string {
	trainer := "Trainer: #" + s.TrainerID.Hex()
	if s.Trainer != nil {
		trainer = s.Trainer.String()
	}
	return fmt.Sprintf("%s with %s (%s)", s.Name, trainer, s.StartTime.Format(SessionTimeLayout))
}

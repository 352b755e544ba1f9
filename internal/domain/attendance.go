package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance records a client's presence at a workout session. There is at
// most one record per (client, session) pair.
type Attendance struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID         primitive.ObjectID `bson:"clientId" json:"clientId" validate:"required"`                 // Deleted with the client
	WorkoutSessionID primitive.ObjectID `bson:"workoutSessionId" json:"workoutSessionId" validate:"required"` // Deleted with the session
	Attended         bool               `bson:"attended" json:"attended"`
	CheckInTime      *time.Time         `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`

	Client         *Client         `bson:"-" json:"client,omitempty" validate:"-"`
	WorkoutSession *WorkoutSession `bson:"-" json:"workoutSession,omitempty" validate:"-"`
}

// Validate checks the field constraints of the attendance record.
func (a *Attendance) Validate() error {
	return validateStruct(a)
}

// CheckIn marks the client as present at the given time.
func (a *Attendance) CheckIn(at time.Time) {
	t := at.UTC()
	a.Attended = true
	a.CheckInTime = &t
}

func (a *Attendance) String() string {
	client := "Client: #" + a.ClientID.Hex()
	if a.Client != nil {
		client = a.Client.String()
	}
	session := "Session #" + a.WorkoutSessionID.Hex()
	if a.WorkoutSession != nil {
		session = a.WorkoutSession.String()
	}
	status := "absent"
	if a.Attended {
		status = "attended"
	}
	return fmt.Sprintf("%s — %s (%s)", client, session, status)
}

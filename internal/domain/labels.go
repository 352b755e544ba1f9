package domain

// Labels are the human-readable names of a record type and of its fields,
// for use in exports, forms and admin listings.
type Labels struct {
	Name       string
	PluralName string
	Fields     map[string]string // Keyed by the field's JSON name
}

// Field returns the label of the field with the given JSON name, or the name
// itself when the field has none.
func (l Labels) Field(name string) string {
	if label, ok := l.Fields[name]; ok {
		return label
	}
	return name
}

// Fields shared by every stored record.
var recordFieldLabels = map[string]string{
	"id":        "ID",
	"createdAt": "Created at",
	"updatedAt": "Updated at",
}

func withRecordFields(fields map[string]string) map[string]string {
	for name, label := range recordFieldLabels {
		fields[name] = label
	}
	return fields
}

var (
	UserLabels = Labels{
		Name:       "User",
		PluralName: "Users",
		Fields: withRecordFields(map[string]string{
			"username":    "Username",
			"firstName":   "First name",
			"lastName":    "Last name",
			"email":       "Email address",
			"isStaff":     "Staff status",
			"isActive":    "Active",
			"dateJoined":  "Date joined",
			"lastLogin":   "Last login",
			"phone":       "Phone number",
			"dateOfBirth": "Date of birth",
		}),
	}

	MembershipPlanLabels = Labels{
		Name:       "Membership plan",
		PluralName: "Membership plans",
		Fields: withRecordFields(map[string]string{
			"name":         "Plan name",
			"durationDays": "Duration (days)",
			"price":        "Price",
			"description":  "Description",
		}),
	}

	ClientLabels = Labels{
		Name:       "Client",
		PluralName: "Clients",
		Fields: withRecordFields(map[string]string{
			"userId":           "User",
			"user":             "User",
			"membershipPlanId": "Membership plan",
			"membershipPlan":   "Membership plan",
			"membershipStart":  "Membership start",
			"membershipEnd":    "Membership end",
		}),
	}

	TrainerLabels = Labels{
		Name:       "Trainer",
		PluralName: "Trainers",
		Fields: withRecordFields(map[string]string{
			"userId":          "User",
			"user":            "User",
			"specialty":       "Specialty",
			"experienceYears": "Experience (years)",
		}),
	}

	WorkoutSessionLabels = Labels{
		Name:       "Workout session",
		PluralName: "Workout sessions",
		Fields: withRecordFields(map[string]string{
			"name":            "Workout name",
			"trainerId":       "Trainer",
			"trainer":         "Trainer",
			"startTime":       "Start time",
			"durationMinutes": "Duration (minutes)",
			"maxParticipants": "Max participants",
		}),
	}

	AttendanceLabels = Labels{
		Name:       "Attendance",
		PluralName: "Attendance records",
		Fields: withRecordFields(map[string]string{
			"clientId":         "Client",
			"client":           "Client",
			"workoutSessionId": "Workout session",
			"workoutSession":   "Workout session",
			"attended":         "Attended",
			"checkInTime":      "Check-in time",
		}),
	}
)

// Labels returns the labels of the user record.
func (*User) Labels() Labels { return UserLabels }

func (*MembershipPlan) Labels() Labels { return MembershipPlanLabels }

func (*Client) Labels() Labels { return ClientLabels }

func (*Trainer) Labels() Labels { return TrainerLabels }

func (*WorkoutSession) Labels() Labels { return WorkoutSessionLabels }

func (*Attendance) Labels() Labels { return AttendanceLabels }

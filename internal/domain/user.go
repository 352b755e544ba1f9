package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the base identity and credential record every User extends.
type Identity struct {
	Username     string     `bson:"username" json:"username" validate:"required,max=150"` // Unique
	FirstName    string     `bson:"firstName,omitempty" json:"firstName,omitempty" validate:"max=150"`
	LastName     string     `bson:"lastName,omitempty" json:"lastName,omitempty" validate:"max=150"`
	Email        string     `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email,max=254"`
	PasswordHash string     `bson:"passwordHash,omitempty" json:"-"` // Never expose this via JSON
	IsStaff      bool       `bson:"isStaff" json:"isStaff"`
	IsActive     bool       `bson:"isActive" json:"isActive"`
	DateJoined   time.Time  `bson:"dateJoined" json:"dateJoined"`
	LastLogin    *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

// FullName returns "first last" with surrounding whitespace removed. It is
// empty when neither name is set.
func (i *Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// SetPassword stores a bcrypt hash of raw. An empty raw password marks the
// identity as having no usable password.
func (i *Identity) SetPassword(raw string) error {
	if raw == "" {
		i.PasswordHash = ""
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	i.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash.
func (i *Identity) CheckPassword(raw string) bool {
	if !i.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(i.PasswordHash), []byte(raw)) == nil
}

// HasUsablePassword is false for identities created without a password.
func (i *Identity) HasUsablePassword() bool {
	return i.PasswordHash != ""
}

// User is a gym account: the base identity plus contact details.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Identity    `bson:",inline"`
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty" validate:"max=15"`
	DateOfBirth *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"` // Date only
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the field constraints of the user record.
func (u *User) Validate() error {
	return validateStruct(u)
}

// DisplayName is the full name, or the username when no name is set.
func (u *User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Username
}

func (u *User) String() string {
	return u.Username
}

// personLabel renders the person behind a Client or Trainer profile, falling
// back to the referenced user id when the user was not loaded.
func personLabel(u *User, userID primitive.ObjectID) string {
	if u != nil {
		return u.DisplayName()
	}
	return "#" + userID.Hex()
}

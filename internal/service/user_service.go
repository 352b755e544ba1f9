package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

// RegisterUserInput carries the fields of a new user account.
type RegisterUserInput struct {
	Username    string
	Password    string // Optional; an empty password leaves the account without a usable one
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth *time.Time
	IsStaff     bool
}

// UpdateProfileInput carries the editable personal fields of a user.
type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth *time.Time
}

type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, input UpdateProfileInput) (*domain.User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, password string) error
	// DeleteUser removes the user together with its client and trainer profiles.
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// userService implements the UserService interface.
type userService struct {
	repos Repositories
	rules deleteRules
}

// NewUserService creates a new instance of userService.
func NewUserService(repos Repositories) UserService {
	return &userService{repos: repos, rules: deleteRules{repos: repos}}
}

// Register creates an active user account. The returned user carries no password hash.
func (s *userService) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)

	_, err := s.repos.Users.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		Identity: domain.Identity{
			Username:  username,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Email:     strings.TrimSpace(input.Email),
			IsStaff:   input.IsStaff,
			IsActive:  true,
		},
		Phone:       strings.TrimSpace(input.Phone),
		DateOfBirth: domain.DatePtr(input.DateOfBirth),
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, fmt.Errorf("set password: %w", err)
	}

	userID, err := s.repos.Users.Create(ctx, user)
	if err != nil {
		// Another registration may have taken the username since the check above.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, nil
}

// GetUser retrieves a user without its password hash.
func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id primitive.ObjectID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Email = strings.TrimSpace(input.Email)
	user.Phone = strings.TrimSpace(input.Phone)
	user.DateOfBirth = domain.DatePtr(input.DateOfBirth)

	if err := s.repos.Users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) SetPassword(ctx context.Context, id primitive.ObjectID, password string) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	if err := s.repos.Users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.rules.deleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// load fetches the full user record, password hash included.
func (s *userService) load(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

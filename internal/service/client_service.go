package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientExists   = errors.New("user already has a client profile")
)

// MembershipInput describes the membership a client holds. A nil PlanID
// leaves the client without a plan. When Start is given without End, the end
// date is derived from the plan duration (inclusive of the start day).
type MembershipInput struct {
	PlanID *primitive.ObjectID
	Start  *time.Time
	End    *time.Time
}

type ClientService interface {
	CreateClient(ctx context.Context, userID primitive.ObjectID, membership MembershipInput) (*domain.Client, error)
	GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	AssignMembership(ctx context.Context, clientID primitive.ObjectID, membership MembershipInput) (*domain.Client, error)
	// DeleteClient removes the client together with its attendance records.
	DeleteClient(ctx context.Context, id primitive.ObjectID) error
}

// clientService implements the ClientService interface.
type clientService struct {
	repos Repositories
	rules deleteRules
}

// NewClientService creates a new instance of clientService.
func NewClientService(repos Repositories) ClientService {
	return &clientService{repos: repos, rules: deleteRules{repos: repos}}
}

func (s *clientService) CreateClient(ctx context.Context, userID primitive.ObjectID, membership MembershipInput) (*domain.Client, error) {
	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	_, err := s.repos.Clients.GetByUserID(ctx, userID)
	if err == nil {
		return nil, ErrClientExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	client := &domain.Client{UserID: userID}
	if err := s.applyMembership(ctx, client, membership); err != nil {
		return nil, err
	}

	clientID, err := s.repos.Clients.Create(ctx, client)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrClientExists
		}
		return nil, err
	}
	return s.GetClient(ctx, clientID)
}

// GetClient retrieves a client with its user and membership plan loaded.
func (s *clientService) GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.repos.Clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if err := newRelations(s.repos).fillClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repos.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	rel := newRelations(s.repos)
	for i := range clients {
		if err := rel.fillClient(ctx, &clients[i]); err != nil {
			return nil, err
		}
	}
	return clients, nil
}

func (s *clientService) AssignMembership(ctx context.Context, clientID primitive.ObjectID, membership MembershipInput) (*domain.Client, error) {
	client, err := s.repos.Clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if err := s.applyMembership(ctx, client, membership); err != nil {
		return nil, err
	}
	if err := s.repos.Clients.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.GetClient(ctx, clientID)
}

func (s *clientService) DeleteClient(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repos.Clients.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	if err := s.rules.deleteClient(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

// applyMembership copies membership onto client, checking that the plan exists.
func (s *clientService) applyMembership(ctx context.Context, client *domain.Client, membership MembershipInput) error {
	client.MembershipPlanID = membership.PlanID
	client.MembershipStart = domain.DatePtr(membership.Start)
	client.MembershipEnd = domain.DatePtr(membership.End)
	if membership.PlanID == nil {
		return nil
	}

	plan, err := s.repos.Plans.GetByID(ctx, *membership.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	if client.MembershipStart != nil && client.MembershipEnd == nil {
		end := client.MembershipStart.AddDate(0, 0, plan.DurationDays-1)
		client.MembershipEnd = &end
	}
	return nil
}

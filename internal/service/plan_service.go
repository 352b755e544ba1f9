package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("membership plan not found")
)

// PlanInput carries the fields of a membership plan. Price is a decimal string such as "49.90".
type PlanInput struct {
	Name         string
	DurationDays int
	Price        string
	Description  string
}

type PlanService interface {
	CreatePlan(ctx context.Context, input PlanInput) (*domain.MembershipPlan, error)
	GetPlan(ctx context.Context, id primitive.ObjectID) (*domain.MembershipPlan, error)
	ListPlans(ctx context.Context) ([]domain.MembershipPlan, error)
	UpdatePlan(ctx context.Context, id primitive.ObjectID, input PlanInput) (*domain.MembershipPlan, error)
	// DeletePlan removes the plan; clients holding it keep their profile with no plan.
	DeletePlan(ctx context.Context, id primitive.ObjectID) error
}

// planService implements the PlanService interface.
type planService struct {
	repos Repositories
	rules deleteRules
}

// NewPlanService creates a new instance of planService.
func NewPlanService(repos Repositories) PlanService {
	return &planService{repos: repos, rules: deleteRules{repos: repos}}
}

func (in PlanInput) apply(plan *domain.MembershipPlan) error {
	price, err := domain.NewPrice(strings.TrimSpace(in.Price))
	if err != nil {
		return err
	}
	plan.Name = strings.TrimSpace(in.Name)
	plan.DurationDays = in.DurationDays
	plan.Price = price
	plan.Description = in.Description
	return nil
}

func (s *planService) CreatePlan(ctx context.Context, input PlanInput) (*domain.MembershipPlan, error) {
	plan := &domain.MembershipPlan{}
	if err := input.apply(plan); err != nil {
		return nil, err
	}

	planID, err := s.repos.Plans.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, id primitive.ObjectID) (*domain.MembershipPlan, error) {
	plan, err := s.repos.Plans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context) ([]domain.MembershipPlan, error) {
	return s.repos.Plans.List(ctx)
}

func (s *planService) UpdatePlan(ctx context.Context, id primitive.ObjectID, input PlanInput) (*domain.MembershipPlan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.apply(plan); err != nil {
		return nil, err
	}
	if err := s.repos.Plans.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *planService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.GetPlan(ctx, id); err != nil {
		return err
	}
	if err := s.rules.deletePlan(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"alcyxob/gym-membership/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatePlan(t *testing.T) {
	g := newGym()
	plan := g.plan(t, " Monthly ", 30, "49.9")

	assert.Equal(t, "Monthly (30 days)", plan.String())
	assert.Equal(t, "49.90", plan.Price.String())
}

func TestCreatePlanValidation(t *testing.T) {
	tests := []struct {
		name  string
		input PlanInput
	}{
		{"zero duration", PlanInput{Name: "Broken", DurationDays: 0, Price: "10"}},
		{"too precise price", PlanInput{Name: "Broken", DurationDays: 30, Price: "10.005"}},
		{"unparsable price", PlanInput{Name: "Broken", DurationDays: 30, Price: "ten"}},
		{"missing name", PlanInput{DurationDays: 30, Price: "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGym()
			_, err := g.plans.CreatePlan(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, g.store.plans.plans)
		})
	}
}

func TestUpdatePlan(t *testing.T) {
	g := newGym()
	ctx := context.Background()
	plan := g.plan(t, "Monthly", 30, "49.90")

	updated, err := g.plans.UpdatePlan(ctx, plan.ID, PlanInput{Name: "Monthly Plus", DurationDays: 31, Price: "59.00", Description: "Includes sauna"})
	require.NoError(t, err)
	assert.Equal(t, "Monthly Plus (31 days)", updated.String())

	stored, err := g.plans.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Includes sauna", stored.Description)

	_, err = g.plans.UpdatePlan(ctx, primitive.NewObjectID(), PlanInput{Name: "X", DurationDays: 1, Price: "1"})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestListPlansOrderedByDuration(t *testing.T) {
	g := newGym()
	g.plan(t, "Annual", 365, "399")
	g.plan(t, "Monthly", 30, "49")
	g.plan(t, "Quarterly", 90, "129")

	plans, err := g.plans.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, []string{"Monthly", "Quarterly", "Annual"}, []string{plans[0].Name, plans[1].Name, plans[2].Name})
}

func TestDeletePlanClearsClientMembership(t *testing.T) {
	g := newGym()
	ctx := context.Background()
	plan := g.plan(t, "Monthly", 30, "49.90")
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	u := g.user(t, "member", "", "")
	client, err := g.clients.CreateClient(ctx, u.ID, MembershipInput{PlanID: &plan.ID, Start: &start})
	require.NoError(t, err)
	require.NotNil(t, client.MembershipPlanID)

	require.NoError(t, g.plans.DeletePlan(ctx, plan.ID))

	survivor, err := g.clients.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.MembershipPlanID)
	assert.Nil(t, survivor.MembershipPlan)
	assert.Equal(t, start, *survivor.MembershipStart, "dates are kept")

	assert.ErrorIs(t, g.plans.DeletePlan(ctx, plan.ID), ErrPlanNotFound)
}

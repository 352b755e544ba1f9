package service

import (
	"alcyxob/gym-membership/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// deleteRules applies the relation delete rules of the schema:
//
//	User           -> Client, Trainer        cascade
//	MembershipPlan -> Client.membershipPlan  set null
//	Trainer        -> WorkoutSession         cascade
//	WorkoutSession -> Attendance             cascade
//	Client         -> Attendance             cascade
//
// Dependents are removed before their parent, so a failed step leaves the
// parent in place and the delete can simply be retried.
type deleteRules struct {
	repos Repositories
}

func (d deleteRules) deleteUser(ctx context.Context, userID primitive.ObjectID) error {
	client, err := d.repos.Clients.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := d.deleteClient(ctx, client.ID); err != nil {
			return err
		}
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	trainer, err := d.repos.Trainers.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := d.deleteTrainer(ctx, trainer.ID); err != nil {
			return err
		}
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	return d.repos.Users.Delete(ctx, userID)
}

func (d deleteRules) deletePlan(ctx context.Context, planID primitive.ObjectID) error {
	cleared, err := d.repos.Clients.ClearMembershipPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("clear membership plan %s from clients: %w", planID.Hex(), err)
	}
	if cleared > 0 {
		log.Printf("INFO: Cleared membership plan %s from %d clients", planID.Hex(), cleared)
	}
	return d.repos.Plans.Delete(ctx, planID)
}

func (d deleteRules) deleteClient(ctx context.Context, clientID primitive.ObjectID) error {
	removed, err := d.repos.Attendances.DeleteByClientID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("delete attendance of client %s: %w", clientID.Hex(), err)
	}
	if removed > 0 {
		log.Printf("INFO: Deleted %d attendance records of client %s", removed, clientID.Hex())
	}
	return d.repos.Clients.Delete(ctx, clientID)
}

func (d deleteRules) deleteTrainer(ctx context.Context, trainerID primitive.ObjectID) error {
	sessionIDs, err := d.repos.Sessions.ListIDsByTrainer(ctx, trainerID)
	if err != nil {
		return fmt.Errorf("list sessions of trainer %s: %w", trainerID.Hex(), err)
	}
	if len(sessionIDs) > 0 {
		if _, err := d.repos.Attendances.DeleteBySessionIDs(ctx, sessionIDs); err != nil {
			return fmt.Errorf("delete attendance of trainer %s: %w", trainerID.Hex(), err)
		}
		removed, err := d.repos.Sessions.DeleteByTrainerID(ctx, trainerID)
		if err != nil {
			return fmt.Errorf("delete sessions of trainer %s: %w", trainerID.Hex(), err)
		}
		log.Printf("INFO: Deleted %d workout sessions of trainer %s", removed, trainerID.Hex())
	}
	return d.repos.Trainers.Delete(ctx, trainerID)
}

func (d deleteRules) deleteSession(ctx context.Context, sessionID primitive.ObjectID) error {
	if _, err := d.repos.Attendances.DeleteBySessionIDs(ctx, []primitive.ObjectID{sessionID}); err != nil {
		return fmt.Errorf("delete attendance of session %s: %w", sessionID.Hex(), err)
	}
	return d.repos.Sessions.Delete(ctx, sessionID)
}

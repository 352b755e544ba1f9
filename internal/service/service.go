package service

import "alcyxob/gym-membership/internal/repository"

// Repositories bundles the stores the services read and write. Every service
// receives the full set because the delete rules span collections.
type Repositories struct {
	Users       repository.UserRepository
	Plans       repository.MembershipPlanRepository
	Clients     repository.ClientRepository
	Trainers    repository.TrainerRepository
	Sessions    repository.WorkoutSessionRepository
	Attendances repository.AttendanceRepository
}

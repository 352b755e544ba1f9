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
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("client already has an attendance record for this session")
)

type AttendanceService interface {
	// RecordAttendance registers a client for a session. The record starts as not attended.
	RecordAttendance(ctx context.Context, clientID, sessionID primitive.ObjectID) (*domain.Attendance, error)
	CheckIn(ctx context.Context, id primitive.ObjectID, at time.Time) (*domain.Attendance, error)
	GetAttendance(ctx context.Context, id primitive.ObjectID) (*domain.Attendance, error)
	ListForSession(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Attendance, error)
	ListForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Attendance, error)
	DeleteAttendance(ctx context.Context, id primitive.ObjectID) error
}

// attendanceService implements the AttendanceService interface.
type attendanceService struct {
	repos Repositories
}

// NewAttendanceService creates a new instance of attendanceService.
func NewAttendanceService(repos Repositories) AttendanceService {
	return &attendanceService{repos: repos}
}

func (s *attendanceService) RecordAttendance(ctx context.Context, clientID, sessionID primitive.ObjectID) (*domain.Attendance, error) {
	if _, err := s.repos.Clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if _, err := s.repos.Sessions.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	_, err := s.repos.Attendances.GetByClientAndSession(ctx, clientID, sessionID)
	if err == nil {
		return nil, ErrAttendanceExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	attendance := &domain.Attendance{
		ClientID:         clientID,
		WorkoutSessionID: sessionID,
	}
	attendanceID, err := s.repos.Attendances.Create(ctx, attendance)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrAttendanceExists
		}
		return nil, err
	}
	return s.GetAttendance(ctx, attendanceID)
}

// CheckIn marks the client present at the given time. Checking in again
// moves the check-in time.
func (s *attendanceService) CheckIn(ctx context.Context, id primitive.ObjectID, at time.Time) (*domain.Attendance, error) {
	attendance, err := s.repos.Attendances.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}

	attendance.CheckIn(at)
	if err := s.repos.Attendances.Update(ctx, attendance); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return s.GetAttendance(ctx, id)
}

// GetAttendance retrieves a record with its client and session loaded.
func (s *attendanceService) GetAttendance(ctx context.Context, id primitive.ObjectID) (*domain.Attendance, error) {
	attendance, err := s.repos.Attendances.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	if err := newRelations(s.repos).fillAttendance(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *attendanceService) ListForSession(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Attendance, error) {
	if _, err := s.repos.Sessions.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	records, err := s.repos.Attendances.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.fill(ctx, records)
}

func (s *attendanceService) ListForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Attendance, error) {
	if _, err := s.repos.Clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	records, err := s.repos.Attendances.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.fill(ctx, records)
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repos.Attendances.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAttendanceNotFound
		}
		return err
	}
	return nil
}

func (s *attendanceService) fill(ctx context.Context, records []domain.Attendance) ([]domain.Attendance, error) {
	rel := newRelations(s.repos)
	for i := range records {
		if err := rel.fillAttendance(ctx, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

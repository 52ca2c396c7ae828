package service

import (
	"context"
	"errors"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
)

var (
	ErrInvalidPIN = errors.New("invalid PIN")
)

// StaffService handles the employee time-clock portal. The PIN check is a
// convenience lookup for the break-room terminal, not an access-control
// boundary.
type StaffService struct {
	repo repository.EmployeeRepository
}

// NewStaffService creates a new staff service
func NewStaffService(repo repository.EmployeeRepository) *StaffService {
	return &StaffService{
		repo: repo,
	}
}

// Login returns the employee matching a PIN
func (s *StaffService) Login(ctx context.Context, pin string) (*models.Employee, error) {
	emp, err := s.repo.GetByPIN(ctx, pin)
	if err != nil {
		return nil, ErrInvalidPIN
	}
	return emp, nil
}

// ToggleClock flips an employee's clock state, stamping the clock-in time
// when they clock in
func (s *StaffService) ToggleClock(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp.IsClockedIn = !emp.IsClockedIn
	if emp.IsClockedIn {
		now := time.Now()
		emp.LastClockIn = &now
	}

	if err := s.repo.Update(ctx, *emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Schedule returns an employee's shift list
func (s *StaffService) Schedule(ctx context.Context, id string) ([]models.Shift, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return emp.Schedule, nil
}

package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// EmployeeRepository defines the interface for staff data access
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByPIN(ctx context.Context, pin string) (*models.Employee, error)
	Update(ctx context.Context, emp models.Employee) error
}

// InMemoryEmployeeRepository implements EmployeeRepository with in-memory
// storage. Unlike the catalog, employee records mutate (clock state), so
// access is mutex guarded.
type InMemoryEmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]models.Employee
}

// NewInMemoryEmployeeRepository creates an employee repository with the
// demo roster
func NewInMemoryEmployeeRepository() *InMemoryEmployeeRepository {
	now := time.Now()
	fourHoursAgo := now.Add(-4 * time.Hour)

	employees := map[string]models.Employee{
		"e1": {
			ID:          "e1",
			Name:        "Tony LaRosa",
			Role:        models.RoleManager,
			PIN:         "1985",
			IsClockedIn: true,
			LastClockIn: &now,
			Schedule: []models.Shift{
				{ID: "sh1", Day: "Monday", Start: "10:00 AM", End: "8:00 PM"},
				{ID: "sh2", Day: "Tuesday", Start: "10:00 AM", End: "8:00 PM"},
				{ID: "sh3", Day: "Friday", Start: "12:00 PM", End: "11:00 PM"},
			},
		},
		"e2": {
			ID:   "e2",
			Name: "Maria Rossi",
			Role: models.RoleServer,
			PIN:  "1234",
			Schedule: []models.Shift{
				{ID: "sh4", Day: "Wednesday", Start: "4:00 PM", End: "10:00 PM"},
				{ID: "sh5", Day: "Saturday", Start: "4:00 PM", End: "11:00 PM"},
			},
		},
		"e3": {
			ID:          "e3",
			Name:        `Giuseppe "Joe" Pizza`,
			Role:        models.RoleChef,
			PIN:         "0000",
			IsClockedIn: true,
			LastClockIn: &fourHoursAgo,
			Schedule: []models.Shift{
				{ID: "sh6", Day: "Thursday", Start: "3:00 PM", End: "10:00 PM"},
				{ID: "sh7", Day: "Friday", Start: "3:00 PM", End: "11:00 PM"},
				{ID: "sh8", Day: "Saturday", Start: "3:00 PM", End: "11:00 PM"},
			},
		},
	}

	return &InMemoryEmployeeRepository{
		employees: employees,
	}
}

// GetByID returns an employee by id
func (r *InMemoryEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return &emp, nil
}

// GetByPIN returns the employee matching the given PIN
func (r *InMemoryEmployeeRepository) GetByPIN(ctx context.Context, pin string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.PIN == pin {
			e := emp
			return &e, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

// Update replaces the stored record for an employee
func (r *InMemoryEmployeeRepository) Update(ctx context.Context, emp models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[emp.ID]; !ok {
		return ErrEmployeeNotFound
	}
	r.employees[emp.ID] = emp
	return nil
}

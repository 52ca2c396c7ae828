package repository

import (
	"context"
	"sync"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

// ApplicationRepository defines the interface for careers submissions
type ApplicationRepository interface {
	Add(ctx context.Context, app models.JobApplication) error
	GetAll(ctx context.Context) ([]models.JobApplication, error)
}

// InMemoryApplicationRepository stores applications in submission order
type InMemoryApplicationRepository struct {
	mu   sync.RWMutex
	apps []models.JobApplication
}

// NewInMemoryApplicationRepository creates an empty application store
func NewInMemoryApplicationRepository() *InMemoryApplicationRepository {
	return &InMemoryApplicationRepository{}
}

// Add appends an application
func (r *InMemoryApplicationRepository) Add(ctx context.Context, app models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps = append(r.apps, app)
	return nil
}

// GetAll returns all received applications in submission order
func (r *InMemoryApplicationRepository) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.JobApplication, len(r.apps))
	copy(out, r.apps)
	return out, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
)

var (
	ErrIncompleteApplication = errors.New("application is missing required fields")
)

// CareersService handles job applications
type CareersService struct {
	repo repository.ApplicationRepository
}

// NewCareersService creates a new careers service
func NewCareersService(repo repository.ApplicationRepository) *CareersService {
	return &CareersService{
		repo: repo,
	}
}

// Apply validates and stores an application, assigning it an id and
// received-at timestamp
func (s *CareersService) Apply(ctx context.Context, app models.JobApplication) (*models.JobApplication, error) {
	if app.FullName == "" || app.Phone == "" || app.Email == "" || app.Position == "" {
		return nil, ErrIncompleteApplication
	}

	app.ID = uuid.New().String()
	app.ReceivedAt = time.Now().UTC()

	if err := s.repo.Add(ctx, app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Applications returns all received applications in submission order
func (s *CareersService) Applications(ctx context.Context) ([]models.JobApplication, error) {
	return s.repo.GetAll(ctx)
}

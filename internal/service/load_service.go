package service

import (
	"fmt"

	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/repository"
)

// LoadService handles business logic for loads
type LoadService struct {
	loadRepo *repository.LoadRepository
}

// NewLoadService creates a new load service
func NewLoadService(loadRepo *repository.LoadRepository) *LoadService {
	return &LoadService{loadRepo: loadRepo}
}

// GetLoads retrieves loads with filtering and pagination
func (s *LoadService) GetLoads(filter models.LoadFilter) ([]models.Load, int64, error) {
	if filter.StartDate != "" && filter.EndDate != "" && filter.StartDate > filter.EndDate {
		return nil, 0, fmt.Errorf("start date must not be after end date")
	}

	return s.loadRepo.GetLoads(filter)
}

// GetLoadByID retrieves a single load by ID
func (s *LoadService) GetLoadByID(id int64) (*models.Load, error) {
	return s.loadRepo.GetLoadByID(id)
}

package service

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jfletch/haul-analytics-go/internal/analysis"
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/repository"
)

// AnalyticsService runs the aggregation engine over a fresh snapshot of the
// record store. Every call recomputes from scratch; there is no cache or
// incremental path.
type AnalyticsService struct {
	loadRepo    *repository.LoadRepository
	fuelRepo    *repository.FuelStopRepository
	expenseRepo *repository.ExpenseRepository
	engine      *analysis.Engine
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(loadRepo *repository.LoadRepository, fuelRepo *repository.FuelStopRepository, expenseRepo *repository.ExpenseRepository) *AnalyticsService {
	return &AnalyticsService{
		loadRepo:    loadRepo,
		fuelRepo:    fuelRepo,
		expenseRepo: expenseRepo,
		engine:      analysis.NewEngine(),
	}
}

// RunAnalysis reads the three source tables and derives every report table.
// A failed read aborts the run with no partial output: an unreachable store
// must never be mistaken for an empty dataset.
func (s *AnalyticsService) RunAnalysis() (*models.AnalysisReport, error) {
	ds, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	report, err := s.engine.Run(ds)
	if err != nil {
		return nil, fmt.Errorf("analysis run failed: %w", err)
	}

	log.WithFields(log.Fields{
		"loads":    len(ds.Loads),
		"routes":   len(report.Routes),
		"warnings": len(report.Warnings),
	}).Info("analysis run complete")

	return report, nil
}

// GetExpenseDetails returns the expense/load join consumed by the report
// assembler.
func (s *AnalyticsService) GetExpenseDetails() ([]models.ExpenseDetail, error) {
	details, err := s.expenseRepo.GetExpenseDetails()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", analysis.ErrSourceUnavailable, err)
	}
	return details, nil
}

func (s *AnalyticsService) snapshot() (models.Dataset, error) {
	loads, err := s.loadRepo.GetAll()
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", analysis.ErrSourceUnavailable, err)
	}

	fuelStops, err := s.fuelRepo.GetAll()
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", analysis.ErrSourceUnavailable, err)
	}

	expenses, err := s.expenseRepo.GetAll()
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", analysis.ErrSourceUnavailable, err)
	}

	return models.Dataset{Loads: loads, FuelStops: fuelStops, Expenses: expenses}, nil
}

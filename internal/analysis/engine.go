package analysis

import (
	"time"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

// Engine computes every derived report table in one synchronous pass over a
// dataset snapshot. Runs hold no state: the same snapshot always yields the
// same tables.
type Engine struct{}

// NewEngine creates a new analysis engine
func NewEngine() *Engine {
	return &Engine{}
}

// Run derives the profitability, route, monthly-expense and representative
// tables plus the fleet summary from one dataset snapshot. Schema violations
// abort the run; small datasets degrade to fallbacks with warnings.
func (e *Engine) Run(ds models.Dataset) (*models.AnalysisReport, error) {
	profitability, err := BuildLoadProfitability(ds.Loads, ds.FuelStops, ds.Expenses)
	if err != nil {
		return nil, err
	}

	representative, warnings := SelectRepresentativeTrips(profitability)

	return &models.AnalysisReport{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Profitability:   profitability,
		Routes:          BuildRoutePerformance(profitability),
		MonthlyExpenses: BuildMonthlyExpenseSummary(ds.Expenses),
		Representative:  representative,
		Summary:         BuildFleetSummary(profitability),
		Warnings:        warnings,
	}, nil
}

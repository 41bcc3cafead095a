package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

func sampleDataset() models.Dataset {
	return models.Dataset{
		Loads: []models.Load{
			load(1, "2025-06-01", "Phoenix", "Dallas", 500, 1000),
			load(2, "2025-06-05", "Dallas", "Memphis", 400, 2000),
			load(3, "2025-06-09", "Memphis", "Atlanta", 450, 1500),
		},
		FuelStops: []models.FuelStop{
			fuelStop(1, 2, 50, 200),
			fuelStop(2, 3, 20, 80),
			fuelStop(3, 3, 20, 80),
		},
		Expenses: []models.Expense{
			expense(1, 2, "2025-06-05", "Tolls", 100),
			expense(2, 3, "2025-06-09", "Food", 50),
			expense(3, 3, "2025-06-10", "Tolls", 50),
		},
	}
}

func tablesJSON(t *testing.T, report *models.AnalysisReport) string {
	t.Helper()
	out, err := json.Marshal(struct {
		Profitability   []models.LoadProfitability
		Routes          []models.RoutePerformance
		MonthlyExpenses []models.MonthlyExpenseSummary
		Representative  models.RepresentativeTrips
		Summary         models.FleetSummary
	}{
		report.Profitability,
		report.Routes,
		report.MonthlyExpenses,
		report.Representative,
		report.Summary,
	})
	require.NoError(t, err)
	return string(out)
}

func TestEngineRun(t *testing.T) {
	engine := NewEngine()

	report, err := engine.Run(sampleDataset())
	require.NoError(t, err)

	assert.Len(t, report.Profitability, 3)
	assert.Len(t, report.Routes, 3)
	assert.Len(t, report.MonthlyExpenses, 2)
	assert.Empty(t, report.Warnings)

	assert.Equal(t, 3, report.Summary.LoadCount)
	assert.Equal(t, 4500.0, report.Summary.TotalRevenue)
	assert.Equal(t, 4000.0, report.Summary.TotalNetProfit)
	assert.Equal(t, 1700.0, report.Summary.BestNetProfit)
	assert.Equal(t, 1000.0, report.Summary.WorstNetProfit)
	assert.Equal(t, 1300.0, report.Summary.MedianNetProfit)
}

func TestEngineRunIdempotent(t *testing.T) {
	engine := NewEngine()

	first, err := engine.Run(sampleDataset())
	require.NoError(t, err)
	second, err := engine.Run(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, tablesJSON(t, first), tablesJSON(t, second))
}

func TestEngineRunEmptyDataset(t *testing.T) {
	engine := NewEngine()

	report, err := engine.Run(models.Dataset{})
	require.NoError(t, err)

	assert.Empty(t, report.Profitability)
	assert.Empty(t, report.Routes)
	assert.Empty(t, report.MonthlyExpenses)
	assert.Nil(t, report.Representative.Low)
	assert.NotEmpty(t, report.Warnings)
	assert.Equal(t, 0, report.Summary.LoadCount)
}

func TestEngineRunSchemaViolation(t *testing.T) {
	engine := NewEngine()

	ds := sampleDataset()
	ds.FuelStops = append(ds.FuelStops, fuelStop(9, 42, 10, 40))

	_, err := engine.Run(ds)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

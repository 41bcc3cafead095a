package service

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfletch/haul-analytics-go/internal/analysis"
	"github.com/jfletch/haul-analytics-go/internal/database"
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func validIngest() models.IngestRequest {
	return models.IngestRequest{
		Loads: []models.IngestLoad{
			{LoadDate: "2025-06-01", PickupLocation: "Phoenix", DropoffLocation: "Dallas", TotalMiles: 500, Revenue: 1000},
			{LoadDate: "2025-06-05", PickupLocation: "Dallas", DropoffLocation: "Memphis", TotalMiles: 400, Revenue: 2000},
		},
		FuelStops: []models.IngestFuelStop{
			{Trip: "2025-06-05 to Memphis", StopDate: "2025-06-05", Gallons: 50, TotalCost: 200},
		},
		Expenses: []models.IngestExpense{
			{Trip: "2025-06-05 to Memphis", ExpenseDate: "2025-06-05", Category: "Tolls", Amount: 100},
		},
	}
}

func TestReplaceDataset(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngestService(db)

	result, err := svc.ReplaceDataset(validIngest())
	require.NoError(t, err)
	assert.Equal(t, &models.IngestResult{Loads: 2, FuelStops: 1, Expenses: 1}, result)

	// Fuel and expense rows landed on the load their trip key names.
	loads, err := repository.NewLoadRepository(db).GetAll()
	require.NoError(t, err)
	require.Len(t, loads, 2)

	var memphisID int64
	for _, l := range loads {
		if l.DropoffLocation == "Memphis" {
			memphisID = l.ID
		}
	}

	stops, err := repository.NewFuelStopRepository(db).GetAll()
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, memphisID, stops[0].LoadID)

	expenses, err := repository.NewExpenseRepository(db).GetAll()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, memphisID, expenses[0].LoadID)
}

func TestReplaceDatasetReplacesPreviousData(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngestService(db)

	_, err := svc.ReplaceDataset(validIngest())
	require.NoError(t, err)

	smaller := models.IngestRequest{
		Loads: []models.IngestLoad{
			{LoadDate: "2025-07-01", PickupLocation: "Tulsa", DropoffLocation: "Denver", TotalMiles: 700, Revenue: 1800},
		},
	}
	_, err = svc.ReplaceDataset(smaller)
	require.NoError(t, err)

	loads, err := repository.NewLoadRepository(db).GetAll()
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, "Denver", loads[0].DropoffLocation)
}

func TestReplaceDatasetValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngestService(db)

	cases := []struct {
		name   string
		mutate func(*models.IngestRequest)
	}{
		{"zero miles", func(r *models.IngestRequest) { r.Loads[0].TotalMiles = 0 }},
		{"bad load date", func(r *models.IngestRequest) { r.Loads[0].LoadDate = "06/01/2025" }},
		{"negative revenue", func(r *models.IngestRequest) { r.Loads[0].Revenue = -5 }},
		{"duplicate trip key", func(r *models.IngestRequest) {
			r.Loads[1] = r.Loads[0]
		}},
		{"orphan fuel stop", func(r *models.IngestRequest) { r.FuelStops[0].Trip = "2025-06-05 to Nowhere" }},
		{"zero gallons", func(r *models.IngestRequest) { r.FuelStops[0].Gallons = 0 }},
		{"orphan expense", func(r *models.IngestRequest) { r.Expenses[0].Trip = "bogus" }},
		{"negative expense amount", func(r *models.IngestRequest) { r.Expenses[0].Amount = -1 }},
		{"missing category", func(r *models.IngestRequest) { r.Expenses[0].Category = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validIngest()
			tc.mutate(&req)

			_, err := svc.ReplaceDataset(req)
			assert.ErrorIs(t, err, analysis.ErrSchemaViolation)

			// A rejected payload must leave the store untouched.
			loads, err := repository.NewLoadRepository(db).GetAll()
			require.NoError(t, err)
			assert.Empty(t, loads)
		})
	}
}

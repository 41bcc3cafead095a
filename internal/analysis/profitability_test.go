package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

func load(id int64, date string, pickup, dropoff string, miles int64, revenue float64) models.Load {
	return models.Load{
		ID:              id,
		Date:            date,
		PickupLocation:  pickup,
		DropoffLocation: dropoff,
		TotalMiles:      miles,
		Revenue:         revenue,
	}
}

func fuelStop(id, loadID int64, gallons, cost float64) models.FuelStop {
	return models.FuelStop{ID: id, LoadID: loadID, Date: "2025-06-01", Gallons: gallons, TotalCost: cost}
}

func expense(id, loadID int64, date, category string, amount float64) models.Expense {
	return models.Expense{ID: id, LoadID: loadID, Date: date, Category: category, Amount: amount}
}

func findRow(t *testing.T, rows []models.LoadProfitability, loadID int64) models.LoadProfitability {
	t.Helper()
	for _, r := range rows {
		if r.LoadID == loadID {
			return r
		}
	}
	t.Fatalf("load %d missing from profitability output", loadID)
	return models.LoadProfitability{}
}

func TestBuildLoadProfitabilityScenario(t *testing.T) {
	// Loads A, B, C from the operator's reference dataset.
	loads := []models.Load{
		load(1, "2025-06-01", "Phoenix", "Dallas", 500, 1000),
		load(2, "2025-06-05", "Dallas", "Memphis", 400, 2000),
		load(3, "2025-06-09", "Memphis", "Atlanta", 450, 1500),
	}
	fuel := []models.FuelStop{
		fuelStop(1, 2, 50, 200),
		fuelStop(2, 3, 20, 80),
		fuelStop(3, 3, 20, 80),
	}
	expenses := []models.Expense{
		expense(1, 2, "2025-06-05", "Tolls", 100),
		expense(2, 3, "2025-06-09", "Food", 50),
		expense(3, 3, "2025-06-10", "Tolls", 50),
	}

	rows, err := BuildLoadProfitability(loads, fuel, expenses)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	a := findRow(t, rows, 1)
	assert.Equal(t, 1000.0, a.NetProfit)
	assert.Equal(t, 0.0, a.TotalFuelCost)
	assert.Equal(t, 0.0, a.TotalOther)
	assert.Nil(t, a.MilesPerGallon)

	b := findRow(t, rows, 2)
	assert.Equal(t, 1700.0, b.NetProfit)
	assert.Equal(t, 0.75, b.CostPerMile)
	require.NotNil(t, b.MilesPerGallon)
	assert.Equal(t, 8.0, *b.MilesPerGallon)

	c := findRow(t, rows, 3)
	assert.Equal(t, 160.0, c.TotalFuelCost)
	assert.Equal(t, 100.0, c.TotalOther)
	assert.Equal(t, 1300.0, c.NetProfit)
	require.NotNil(t, c.MilesPerGallon)
	assert.Equal(t, 11.25, *c.MilesPerGallon)
}

func TestBuildLoadProfitabilityNoFanOut(t *testing.T) {
	// Sums must not scale with M*N when a load has M fuel stops and N
	// expenses.
	for m := 0; m <= 3; m++ {
		for n := 0; n <= 3; n++ {
			t.Run(fmt.Sprintf("%d_fuel_stops_%d_expenses", m, n), func(t *testing.T) {
				loads := []models.Load{load(1, "2025-01-15", "A", "B", 100, 500)}

				var fuel []models.FuelStop
				for i := 0; i < m; i++ {
					fuel = append(fuel, fuelStop(int64(i+1), 1, 10, 40))
				}
				var expenses []models.Expense
				for i := 0; i < n; i++ {
					expenses = append(expenses, expense(int64(i+1), 1, "2025-01-15", "Tolls", 25))
				}

				rows, err := BuildLoadProfitability(loads, fuel, expenses)
				require.NoError(t, err)
				require.Len(t, rows, 1)

				assert.Equal(t, float64(m)*40, rows[0].TotalFuelCost)
				assert.Equal(t, float64(m)*10, rows[0].TotalGallons)
				assert.Equal(t, float64(n)*25, rows[0].TotalOther)
				assert.Equal(t, 500-float64(m)*40-float64(n)*25, rows[0].NetProfit)
			})
		}
	}
}

func TestBuildLoadProfitabilityOuterJoin(t *testing.T) {
	// A load with no children must still appear, with zero costs and
	// net profit equal to revenue.
	loads := []models.Load{
		load(1, "2025-02-01", "A", "B", 200, 900),
		load(2, "2025-02-02", "B", "C", 300, 1200),
	}
	fuel := []models.FuelStop{fuelStop(1, 2, 30, 120)}

	rows, err := BuildLoadProfitability(loads, fuel, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	bare := findRow(t, rows, 1)
	assert.Equal(t, 0.0, bare.TotalCost)
	assert.Equal(t, 900.0, bare.NetProfit)
	assert.Equal(t, 0.0, bare.CostPerMile)
	assert.Nil(t, bare.MilesPerGallon)
}

func TestBuildLoadProfitabilityOrdering(t *testing.T) {
	loads := []models.Load{
		load(1, "2025-03-01", "A", "B", 100, 100),
		load(3, "2025-03-05", "A", "B", 100, 100),
		load(2, "2025-03-05", "A", "B", 100, 100),
	}

	rows, err := BuildLoadProfitability(loads, nil, nil)
	require.NoError(t, err)

	ids := []int64{rows[0].LoadID, rows[1].LoadID, rows[2].LoadID}
	// Date descending, id ascending within the same date.
	assert.Equal(t, []int64{2, 3, 1}, ids)
}

func TestBuildLoadProfitabilitySchemaViolations(t *testing.T) {
	t.Run("non-positive miles", func(t *testing.T) {
		_, err := BuildLoadProfitability([]models.Load{load(1, "2025-01-01", "A", "B", 0, 100)}, nil, nil)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("duplicate load id", func(t *testing.T) {
		loads := []models.Load{
			load(1, "2025-01-01", "A", "B", 100, 100),
			load(1, "2025-01-02", "B", "C", 100, 100),
		}
		_, err := BuildLoadProfitability(loads, nil, nil)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("orphan fuel stop", func(t *testing.T) {
		loads := []models.Load{load(1, "2025-01-01", "A", "B", 100, 100)}
		_, err := BuildLoadProfitability(loads, []models.FuelStop{fuelStop(1, 99, 10, 40)}, nil)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("orphan expense", func(t *testing.T) {
		loads := []models.Load{load(1, "2025-01-01", "A", "B", 100, 100)}
		_, err := BuildLoadProfitability(loads, nil, []models.Expense{expense(1, 99, "2025-01-01", "Tolls", 5)})
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})
}

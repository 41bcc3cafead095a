package analysis

import (
	"sort"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

type fuelTotals struct {
	cost    float64
	gallons float64
}

// BuildLoadProfitability derives one profitability row per load. Every load
// appears exactly once, including loads with no fuel stops or expenses.
//
// Each child table is summed per load id on its own before the totals are
// combined. Joining fuel_stops and expenses in a single pass and grouping
// afterwards would fan out to M*N rows for a load with M fuel stops and N
// expenses and double-count whichever side has more rows.
func BuildLoadProfitability(loads []models.Load, fuelStops []models.FuelStop, expenses []models.Expense) ([]models.LoadProfitability, error) {
	known := make(map[int64]bool, len(loads))
	for _, l := range loads {
		if l.TotalMiles <= 0 {
			return nil, schemaViolationf("load %d has non-positive total_miles %d", l.ID, l.TotalMiles)
		}
		if known[l.ID] {
			return nil, schemaViolationf("duplicate load id %d", l.ID)
		}
		known[l.ID] = true
	}

	fuelByLoad := make(map[int64]fuelTotals)
	for _, fs := range fuelStops {
		if !known[fs.LoadID] {
			return nil, schemaViolationf("fuel stop %d references unknown load %d", fs.ID, fs.LoadID)
		}
		t := fuelByLoad[fs.LoadID]
		t.cost += fs.TotalCost
		t.gallons += fs.Gallons
		fuelByLoad[fs.LoadID] = t
	}

	expensesByLoad := make(map[int64]float64)
	for _, e := range expenses {
		if !known[e.LoadID] {
			return nil, schemaViolationf("expense %d references unknown load %d", e.ID, e.LoadID)
		}
		expensesByLoad[e.LoadID] += e.Amount
	}

	rows := make([]models.LoadProfitability, 0, len(loads))
	for _, l := range loads {
		fuel := fuelByLoad[l.ID]
		other := expensesByLoad[l.ID]
		totalCost := fuel.cost + other

		row := models.LoadProfitability{
			LoadID:          l.ID,
			LoadDate:        l.Date,
			PickupLocation:  l.PickupLocation,
			DropoffLocation: l.DropoffLocation,
			Revenue:         l.Revenue,
			TotalMiles:      l.TotalMiles,
			TotalFuelCost:   fuel.cost,
			TotalGallons:    fuel.gallons,
			TotalOther:      other,
			TotalCost:       totalCost,
			NetProfit:       l.Revenue - totalCost,
			CostPerMile:     totalCost / float64(l.TotalMiles),
		}
		if fuel.gallons > 0 {
			mpg := float64(l.TotalMiles) / fuel.gallons
			row.MilesPerGallon = &mpg
		}
		rows = append(rows, row)
	}

	// Newest loads first; id breaks date ties so the output is stable.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].LoadDate != rows[j].LoadDate {
			return rows[i].LoadDate > rows[j].LoadDate
		}
		return rows[i].LoadID < rows[j].LoadID
	})

	return rows, nil
}

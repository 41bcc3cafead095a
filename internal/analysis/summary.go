package analysis

import (
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/stats"
)

// BuildFleetSummary rolls the per-load table up into one row of operation
// totals and net-profit spread.
func BuildFleetSummary(rows []models.LoadProfitability) models.FleetSummary {
	if len(rows) == 0 {
		return models.FleetSummary{}
	}

	revenues := make([]float64, len(rows))
	fuelCosts := make([]float64, len(rows))
	otherCosts := make([]float64, len(rows))
	netProfits := make([]float64, len(rows))
	var totalMiles int64

	for i, row := range rows {
		revenues[i] = row.Revenue
		fuelCosts[i] = row.TotalFuelCost
		otherCosts[i] = row.TotalOther
		netProfits[i] = row.NetProfit
		totalMiles += row.TotalMiles
	}

	totalCost := stats.Sum(fuelCosts) + stats.Sum(otherCosts)

	return models.FleetSummary{
		LoadCount:       len(rows),
		TotalMiles:      totalMiles,
		TotalRevenue:    stats.Sum(revenues),
		TotalFuelCost:   stats.Sum(fuelCosts),
		TotalOther:      stats.Sum(otherCosts),
		TotalCost:       totalCost,
		TotalNetProfit:  stats.Sum(netProfits),
		AvgNetProfit:    stats.Mean(netProfits),
		MedianNetProfit: stats.Median(netProfits),
		BestNetProfit:   stats.Max(netProfits),
		WorstNetProfit:  stats.Min(netProfits),
		CostPerMile:     totalCost / float64(totalMiles),
	}
}

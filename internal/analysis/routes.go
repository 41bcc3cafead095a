package analysis

import (
	"sort"

	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/stats"
)

type routeKey struct {
	pickup  string
	dropoff string
}

// BuildRoutePerformance groups per-load profitability by (pickup, dropoff)
// lane and averages the per-load metrics. Loads with an undefined MPG still
// count toward every other mean but are excluded from avg_mpg rather than
// dragging it toward zero.
func BuildRoutePerformance(rows []models.LoadProfitability) []models.RoutePerformance {
	groups := make(map[routeKey][]models.LoadProfitability)
	for _, row := range rows {
		k := routeKey{pickup: row.PickupLocation, dropoff: row.DropoffLocation}
		groups[k] = append(groups[k], row)
	}

	routes := make([]models.RoutePerformance, 0, len(groups))
	for k, group := range groups {
		profitPerMile := make([]float64, 0, len(group))
		revenuePerMile := make([]float64, 0, len(group))
		costPerMile := make([]float64, 0, len(group))
		netProfit := make([]float64, 0, len(group))
		var mpgs []float64

		for _, row := range group {
			miles := float64(row.TotalMiles)
			profitPerMile = append(profitPerMile, row.NetProfit/miles)
			revenuePerMile = append(revenuePerMile, row.Revenue/miles)
			costPerMile = append(costPerMile, row.CostPerMile)
			netProfit = append(netProfit, row.NetProfit)
			if row.MilesPerGallon != nil {
				mpgs = append(mpgs, *row.MilesPerGallon)
			}
		}

		rp := models.RoutePerformance{
			PickupLocation:    k.pickup,
			DropoffLocation:   k.dropoff,
			NumberOfTrips:     len(group),
			AvgProfitPerMile:  stats.Mean(profitPerMile),
			AvgRevenuePerMile: stats.Mean(revenuePerMile),
			AvgCostPerMile:    stats.Mean(costPerMile),
			AvgNetProfit:      stats.Mean(netProfit),
		}
		if len(mpgs) > 0 {
			avg := stats.Mean(mpgs)
			rp.AvgMPG = &avg
		}
		routes = append(routes, rp)
	}

	// Best lanes first; lane names break ties so the output is stable.
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].AvgNetProfit != routes[j].AvgNetProfit {
			return routes[i].AvgNetProfit > routes[j].AvgNetProfit
		}
		if routes[i].PickupLocation != routes[j].PickupLocation {
			return routes[i].PickupLocation < routes[j].PickupLocation
		}
		return routes[i].DropoffLocation < routes[j].DropoffLocation
	})

	return routes
}

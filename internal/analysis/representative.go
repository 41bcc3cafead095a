package analysis

import (
	"math"

	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/stats"
)

// SelectRepresentativeTrips picks the lowest, closest-to-average and highest
// net-profit trips for the comparison report.
//
// Exclusion is by load id, never by profit value: two different loads can
// tie on net profit, and a value-based filter would let the average pick
// collide with low or high. The final average row is fetched by id from the
// full table rather than by position into the filtered view, since positions
// shift after filtering. With at least 3 distinct loads the three picks are
// guaranteed pairwise distinct.
func SelectRepresentativeTrips(rows []models.LoadProfitability) (models.RepresentativeTrips, []string) {
	var trips models.RepresentativeTrips

	if len(rows) == 0 {
		return trips, []string{"no loads available for representative trip selection"}
	}

	byID := make(map[int64]models.LoadProfitability, len(rows))
	for _, row := range rows {
		byID[row.LoadID] = row
	}

	// Low prefers the smaller id on a profit tie and high the larger, so the
	// two never land on the same load when more than one exists.
	low := rows[0]
	high := rows[0]
	for _, row := range rows[1:] {
		if row.NetProfit < low.NetProfit || (row.NetProfit == low.NetProfit && row.LoadID < low.LoadID) {
			low = row
		}
		if row.NetProfit > high.NetProfit || (row.NetProfit == high.NetProfit && row.LoadID > high.LoadID) {
			high = row
		}
	}
	trips.Low = &low
	trips.High = &high

	excluded := map[int64]bool{low.LoadID: true, high.LoadID: true}
	var candidates []models.LoadProfitability
	for _, row := range rows {
		if !excluded[row.LoadID] {
			candidates = append(candidates, row)
		}
	}

	var warnings []string
	if len(candidates) == 0 {
		// Documented fallback for datasets of one or two loads.
		fallback := low
		trips.Average = &fallback
		warnings = append(warnings, "fewer than 3 distinct loads; average trip falls back to the lowest-profit load")
		return trips, warnings
	}

	profits := make([]float64, len(candidates))
	for i, c := range candidates {
		profits[i] = c.NetProfit
	}
	mean := stats.Mean(profits)

	bestID := candidates[0].LoadID
	bestDist := math.Abs(candidates[0].NetProfit - mean)
	for _, c := range candidates[1:] {
		dist := math.Abs(c.NetProfit - mean)
		if dist < bestDist || (dist == bestDist && c.LoadID < bestID) {
			bestID = c.LoadID
			bestDist = dist
		}
	}

	average := byID[bestID]
	trips.Average = &average

	return trips, warnings
}

package analysis

import (
	"sort"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

type monthCategoryKey struct {
	month    string
	category string
}

// BuildMonthlyExpenseSummary buckets raw expenses by (month, category).
// Expenses are summed purely by their own date and category; no join to
// loads happens here, so an expense is never lost to a missing parent.
func BuildMonthlyExpenseSummary(expenses []models.Expense) []models.MonthlyExpenseSummary {
	sums := make(map[monthCategoryKey]float64)
	for _, e := range expenses {
		k := monthCategoryKey{month: monthOf(e.Date), category: e.Category}
		sums[k] += e.Amount
	}

	summaries := make([]models.MonthlyExpenseSummary, 0, len(sums))
	for k, total := range sums {
		summaries = append(summaries, models.MonthlyExpenseSummary{
			Month:      k.month,
			Category:   k.category,
			TotalSpent: total,
		})
	}

	// Chronological months, biggest categories first within a month.
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Month != summaries[j].Month {
			return summaries[i].Month < summaries[j].Month
		}
		if summaries[i].TotalSpent != summaries[j].TotalSpent {
			return summaries[i].TotalSpent > summaries[j].TotalSpent
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}

// monthOf truncates an ISO date (YYYY-MM-DD) to its year-month.
func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

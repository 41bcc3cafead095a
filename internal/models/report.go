package models

// LoadProfitability is the per-load row of the profitability report,
// derived fresh on every analysis run.
type LoadProfitability struct {
	LoadID          int64   `json:"load_id"`
	LoadDate        string  `json:"load_date"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	Revenue         float64 `json:"revenue"`
	TotalMiles      int64   `json:"total_miles"`
	TotalFuelCost   float64 `json:"total_fuel_cost"`
	TotalGallons    float64 `json:"total_gallons_used"`
	TotalOther      float64 `json:"total_other_expenses"`
	TotalCost       float64 `json:"total_cost"`
	NetProfit       float64 `json:"net_profit"`
	CostPerMile     float64 `json:"cost_per_mile"`

	// Nil when the load has no fuel stops: miles per gallon is undefined
	// without gallons, never zero or infinity.
	MilesPerGallon *float64 `json:"miles_per_gallon"`
}

// RoutePerformance aggregates profitability over all loads sharing a
// (pickup, dropoff) lane.
type RoutePerformance struct {
	PickupLocation    string  `json:"pickup_location"`
	DropoffLocation   string  `json:"dropoff_location"`
	NumberOfTrips     int     `json:"number_of_trips"`
	AvgProfitPerMile  float64 `json:"avg_profit_per_mile"`
	AvgRevenuePerMile float64 `json:"avg_revenue_per_mile"`
	AvgCostPerMile    float64 `json:"avg_cost_per_mile"`

	// Nil when no load on the lane has a defined MPG.
	AvgMPG *float64 `json:"avg_mpg"`

	AvgNetProfit float64 `json:"avg_net_profit"`
}

// MonthlyExpenseSummary is one (month, category) bucket of expense spend.
type MonthlyExpenseSummary struct {
	Month      string  `json:"month"` // YYYY-MM
	Category   string  `json:"category"`
	TotalSpent float64 `json:"total_spent"`
}

// RepresentativeTrips holds the low/average/high net-profit trips used by
// the trip comparison report. Any entry may be absent when the dataset is
// too small; the accompanying warnings say why.
type RepresentativeTrips struct {
	Low     *LoadProfitability `json:"low,omitempty"`
	Average *LoadProfitability `json:"average,omitempty"`
	High    *LoadProfitability `json:"high,omitempty"`
}

// FleetSummary is the whole-operation rollup printed as run insights.
type FleetSummary struct {
	LoadCount       int     `json:"load_count"`
	TotalMiles      int64   `json:"total_miles"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalFuelCost   float64 `json:"total_fuel_cost"`
	TotalOther      float64 `json:"total_other_expenses"`
	TotalCost       float64 `json:"total_cost"`
	TotalNetProfit  float64 `json:"total_net_profit"`
	AvgNetProfit    float64 `json:"avg_net_profit"`
	MedianNetProfit float64 `json:"median_net_profit"`
	BestNetProfit   float64 `json:"best_net_profit"`
	WorstNetProfit  float64 `json:"worst_net_profit"`
	CostPerMile     float64 `json:"cost_per_mile"`
}

// Dataset is one read snapshot of the three source tables. An analysis run
// is a pure function of a Dataset.
type Dataset struct {
	Loads     []Load
	FuelStops []FuelStop
	Expenses  []Expense
}

// AnalysisReport bundles every derived table of one analysis run.
type AnalysisReport struct {
	GeneratedAt     string                  `json:"generated_at"`
	Profitability   []LoadProfitability     `json:"profitability"`
	Routes          []RoutePerformance      `json:"routes"`
	MonthlyExpenses []MonthlyExpenseSummary `json:"monthly_expenses"`
	Representative  RepresentativeTrips     `json:"representative_trips"`
	Summary         FleetSummary            `json:"summary"`
	Warnings        []string                `json:"warnings,omitempty"`
}

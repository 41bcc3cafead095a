package models

// Ingest DTOs mirror the operator's spreadsheet rows. Fuel and expense rows
// reference their load by the human-readable trip key
// "<load_date> to <dropoff_location>" rather than a database id, since ids
// are reassigned on every dataset replacement.

// IngestLoad is one load row of an ingest payload.
type IngestLoad struct {
	LoadDate        string  `json:"load_date" binding:"required"`
	PickupLocation  string  `json:"pickup_location" binding:"required"`
	DropoffLocation string  `json:"dropoff_location" binding:"required"`
	TotalMiles      int64   `json:"total_miles"`
	Revenue         float64 `json:"revenue"`
	IsDropAndHook   bool    `json:"is_drop_and_hook"`
	WaitTimeHours   float64 `json:"wait_time_hours"`
	Notes           string  `json:"notes"`
}

// IngestFuelStop is one fuel purchase row of an ingest payload.
type IngestFuelStop struct {
	Trip      string  `json:"trip" binding:"required"`
	StopDate  string  `json:"stop_date" binding:"required"`
	Gallons   float64 `json:"gallons"`
	TotalCost float64 `json:"total_cost"`
	Location  string  `json:"location"`
	Notes     string  `json:"notes"`
}

// IngestExpense is one expense row of an ingest payload.
type IngestExpense struct {
	Trip        string  `json:"trip" binding:"required"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Notes       string  `json:"notes"`
}

// IngestRequest replaces the whole dataset in one transaction.
type IngestRequest struct {
	Loads     []IngestLoad     `json:"loads" binding:"required"`
	FuelStops []IngestFuelStop `json:"fuel_stops"`
	Expenses  []IngestExpense  `json:"expenses"`
}

// IngestResult reports how many rows were written.
type IngestResult struct {
	Loads     int `json:"loads"`
	FuelStops int `json:"fuel_stops"`
	Expenses  int `json:"expenses"`
}

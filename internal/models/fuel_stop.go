package models

// FuelStop represents one fuel purchase tied to a load. A load may have
// any number of fuel stops, including none.
type FuelStop struct {
	ID        int64   `json:"fuel_stop_id" db:"fuel_stop_id"`
	LoadID    int64   `json:"load_id" db:"load_id"`
	Date      string  `json:"stop_date" db:"stop_date"` // YYYY-MM-DD
	Gallons   float64 `json:"gallons" db:"gallons"`
	TotalCost float64 `json:"total_cost" db:"total_cost"`
	Location  string  `json:"location,omitempty" db:"location"`
	Notes     string  `json:"notes,omitempty" db:"notes"`
}

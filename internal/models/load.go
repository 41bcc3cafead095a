package models

// Load represents one trucking trip, the unit of revenue.
type Load struct {
	ID              int64   `json:"load_id" db:"load_id"`
	Date            string  `json:"load_date" db:"load_date"` // YYYY-MM-DD
	PickupLocation  string  `json:"pickup_location" db:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location" db:"dropoff_location"`
	TotalMiles      int64   `json:"total_miles" db:"total_miles"`
	Revenue         float64 `json:"revenue" db:"revenue"`
	IsDropAndHook   bool    `json:"is_drop_and_hook" db:"is_drop_and_hook"`
	WaitTimeHours   float64 `json:"wait_time_hours" db:"wait_time_hours"`
	Notes           string  `json:"notes,omitempty" db:"notes"`
}

// LoadFilter holds query parameters for listing loads
type LoadFilter struct {
	StartDate string `form:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `form:"end_date"`   // YYYY-MM-DD, inclusive
	Dropoff   string `form:"dropoff"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

package models

// Expense represents one non-fuel cost event tied to a load (maintenance,
// tolls, fines, food, ...). The category vocabulary is open.
type Expense struct {
	ID          int64   `json:"expense_id" db:"expense_id"`
	LoadID      int64   `json:"load_id" db:"load_id"`
	Date        string  `json:"expense_date" db:"expense_date"` // YYYY-MM-DD
	Category    string  `json:"category" db:"category"`
	Amount      float64 `json:"amount" db:"amount"`
	Description string  `json:"description,omitempty" db:"description"`
	Notes       string  `json:"notes,omitempty" db:"notes"`
}

// ExpenseDetail is an expense joined with its owning load's date and
// dropoff, consumed by the per-trip expense detail report.
type ExpenseDetail struct {
	ExpenseID       int64   `json:"expense_id" db:"expense_id"`
	LoadID          int64   `json:"load_id" db:"load_id"`
	LoadDate        string  `json:"load_date" db:"load_date"`
	DropoffLocation string  `json:"dropoff_location" db:"dropoff_location"`
	ExpenseDate     string  `json:"expense_date" db:"expense_date"`
	Category        string  `json:"category" db:"category"`
	Amount          float64 `json:"amount" db:"amount"`
	Description     string  `json:"description,omitempty" db:"description"`
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// GetAll retrieves every expense, ordered for deterministic analysis input.
func (r *ExpenseRepository) GetAll() ([]models.Expense, error) {
	query := `SELECT expense_id, load_id, expense_date, category, amount, description, notes
		FROM expenses ORDER BY expense_date, expense_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var description, notes sql.NullString
		err := rows.Scan(&e.ID, &e.LoadID, &e.Date, &e.Category, &e.Amount, &description, &notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Description = description.String
		e.Notes = notes.String
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// GetExpenseDetails retrieves expenses joined with their owning load's date
// and dropoff for the per-trip expense detail report.
func (r *ExpenseRepository) GetExpenseDetails() ([]models.ExpenseDetail, error) {
	query := `SELECT e.expense_id, e.load_id, l.load_date, l.dropoff_location,
			e.expense_date, e.category, e.amount, e.description
		FROM expenses e
		JOIN loads l ON l.load_id = e.load_id
		ORDER BY l.load_date DESC, e.load_id, e.expense_date, e.expense_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense details: %w", err)
	}
	defer rows.Close()

	var details []models.ExpenseDetail
	for rows.Next() {
		var d models.ExpenseDetail
		var description sql.NullString
		err := rows.Scan(&d.ExpenseID, &d.LoadID, &d.LoadDate, &d.DropoffLocation,
			&d.ExpenseDate, &d.Category, &d.Amount, &description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense detail: %w", err)
		}
		d.Description = description.String
		details = append(details, d)
	}

	return details, rows.Err()
}

// InsertExpense inserts an expense within a transaction.
func InsertExpense(tx *sql.Tx, e models.Expense) error {
	query := `INSERT INTO expenses (load_id, expense_date, category, amount, description, notes)
		VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := tx.Exec(query, e.LoadID, e.Date, e.Category, e.Amount, e.Description, e.Notes); err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ClearDataset deletes every source row ahead of a full reimport. Loads go
// last so the foreign keys never dangle mid-transaction.
func ClearDataset(tx *sql.Tx) error {
	for _, table := range []string{"fuel_stops", "expenses", "loads"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

// LoadRepository handles database operations for loads
type LoadRepository struct {
	db *sql.DB
}

// NewLoadRepository creates a new load repository
func NewLoadRepository(db *sql.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

const loadColumns = `load_id, load_date, pickup_location, dropoff_location,
	total_miles, revenue, is_drop_and_hook, wait_time_hours, notes`

// GetAll retrieves every load, ordered by date then id for deterministic
// analysis input.
func (r *LoadRepository) GetAll() ([]models.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads ORDER BY load_date, load_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	return scanLoads(rows)
}

// GetLoads retrieves loads with filtering and pagination
func (r *LoadRepository) GetLoads(filter models.LoadFilter) ([]models.Load, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.StartDate != "" {
		conditions = append(conditions, "load_date >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "load_date <= ?")
		args = append(args, filter.EndDate)
	}
	if filter.Dropoff != "" {
		conditions = append(conditions, "dropoff_location = ?")
		args = append(args, filter.Dropoff)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM loads"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loads: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT ` + loadColumns + ` FROM loads` + whereClause +
		` ORDER BY load_date DESC, load_id LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	loads, err := scanLoads(rows)
	if err != nil {
		return nil, 0, err
	}

	return loads, total, nil
}

// GetLoadByID retrieves a single load by ID
func (r *LoadRepository) GetLoadByID(id int64) (*models.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads WHERE load_id = ?`

	var l models.Load
	var notes sql.NullString
	err := r.db.QueryRow(query, id).Scan(
		&l.ID, &l.Date, &l.PickupLocation, &l.DropoffLocation,
		&l.TotalMiles, &l.Revenue, &l.IsDropAndHook, &l.WaitTimeHours, &notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get load: %w", err)
	}
	l.Notes = notes.String

	return &l, nil
}

// InsertLoad inserts a load within a transaction and returns its new id.
func InsertLoad(tx *sql.Tx, l models.Load) (int64, error) {
	query := `INSERT INTO loads (load_date, pickup_location, dropoff_location,
		total_miles, revenue, is_drop_and_hook, wait_time_hours, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.Exec(query,
		l.Date, l.PickupLocation, l.DropoffLocation,
		l.TotalMiles, l.Revenue, l.IsDropAndHook, l.WaitTimeHours, l.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert load: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted load id: %w", err)
	}
	return id, nil
}

func scanLoads(rows *sql.Rows) ([]models.Load, error) {
	var loads []models.Load
	for rows.Next() {
		var l models.Load
		var notes sql.NullString
		err := rows.Scan(
			&l.ID, &l.Date, &l.PickupLocation, &l.DropoffLocation,
			&l.TotalMiles, &l.Revenue, &l.IsDropAndHook, &l.WaitTimeHours, &notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan load: %w", err)
		}
		l.Notes = notes.String
		loads = append(loads, l)
	}

	return loads, rows.Err()
}

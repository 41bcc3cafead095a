package repository

import (
	"database/sql"
	"fmt"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

// FuelStopRepository handles database operations for fuel stops
type FuelStopRepository struct {
	db *sql.DB
}

// NewFuelStopRepository creates a new fuel stop repository
func NewFuelStopRepository(db *sql.DB) *FuelStopRepository {
	return &FuelStopRepository{db: db}
}

// GetAll retrieves every fuel stop, ordered for deterministic analysis input.
func (r *FuelStopRepository) GetAll() ([]models.FuelStop, error) {
	query := `SELECT fuel_stop_id, load_id, stop_date, gallons, total_cost, location, notes
		FROM fuel_stops ORDER BY stop_date, fuel_stop_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fuel stops: %w", err)
	}
	defer rows.Close()

	var stops []models.FuelStop
	for rows.Next() {
		var fs models.FuelStop
		var location, notes sql.NullString
		err := rows.Scan(&fs.ID, &fs.LoadID, &fs.Date, &fs.Gallons, &fs.TotalCost, &location, &notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fuel stop: %w", err)
		}
		fs.Location = location.String
		fs.Notes = notes.String
		stops = append(stops, fs)
	}

	return stops, rows.Err()
}

// InsertFuelStop inserts a fuel stop within a transaction.
func InsertFuelStop(tx *sql.Tx, fs models.FuelStop) error {
	query := `INSERT INTO fuel_stops (load_id, stop_date, gallons, total_cost, location, notes)
		VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := tx.Exec(query, fs.LoadID, fs.Date, fs.Gallons, fs.TotalCost, fs.Location, fs.Notes); err != nil {
		return fmt.Errorf("failed to insert fuel stop: %w", err)
	}
	return nil
}

package service

import (
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jfletch/haul-analytics-go/internal/analysis"
	"github.com/jfletch/haul-analytics-go/internal/database"
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/repository"
)

// IngestService replaces the whole dataset from an operator spreadsheet
// export. Fuel and expense rows reference loads by the human-readable trip
// key "<load_date> to <dropoff_location>"; the service resolves those keys
// to database ids during import.
//
// Validation runs before any write and a violation rejects the entire
// payload, so the store is never left holding a half-imported dataset.
type IngestService struct {
	db *sql.DB
}

// NewIngestService creates a new ingest service
func NewIngestService(db *sql.DB) *IngestService {
	return &IngestService{db: db}
}

// TripKey builds the spreadsheet trip identifier for a load.
func TripKey(loadDate, dropoffLocation string) string {
	return loadDate + " to " + dropoffLocation
}

// ReplaceDataset validates the payload and swaps the stored dataset for it
// in one transaction.
func (s *IngestService) ReplaceDataset(req models.IngestRequest) (*models.IngestResult, error) {
	tripKeys, err := validateDataset(req)
	if err != nil {
		return nil, err
	}

	err = database.Transaction(s.db, func(tx *sql.Tx) error {
		if err := repository.ClearDataset(tx); err != nil {
			return err
		}

		idsByTrip := make(map[string]int64, len(req.Loads))
		for _, in := range req.Loads {
			id, err := repository.InsertLoad(tx, models.Load{
				Date:            in.LoadDate,
				PickupLocation:  in.PickupLocation,
				DropoffLocation: in.DropoffLocation,
				TotalMiles:      in.TotalMiles,
				Revenue:         in.Revenue,
				IsDropAndHook:   in.IsDropAndHook,
				WaitTimeHours:   in.WaitTimeHours,
				Notes:           in.Notes,
			})
			if err != nil {
				return err
			}
			idsByTrip[TripKey(in.LoadDate, in.DropoffLocation)] = id
		}

		for _, in := range req.FuelStops {
			err := repository.InsertFuelStop(tx, models.FuelStop{
				LoadID:    idsByTrip[in.Trip],
				Date:      in.StopDate,
				Gallons:   in.Gallons,
				TotalCost: in.TotalCost,
				Location:  in.Location,
				Notes:     in.Notes,
			})
			if err != nil {
				return err
			}
		}

		for _, in := range req.Expenses {
			err := repository.InsertExpense(tx, models.Expense{
				LoadID:      idsByTrip[in.Trip],
				Date:        in.ExpenseDate,
				Category:    in.Category,
				Amount:      in.Amount,
				Description: in.Description,
				Notes:       in.Notes,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace dataset: %w", err)
	}

	result := &models.IngestResult{
		Loads:     len(req.Loads),
		FuelStops: len(req.FuelStops),
		Expenses:  len(req.Expenses),
	}

	log.WithFields(log.Fields{
		"loads":      result.Loads,
		"fuel_stops": result.FuelStops,
		"expenses":   result.Expenses,
		"trips":      len(tripKeys),
	}).Info("dataset replaced")

	return result, nil
}

// validateDataset enforces the source invariants and returns the set of
// known trip keys.
func validateDataset(req models.IngestRequest) (map[string]bool, error) {
	tripKeys := make(map[string]bool, len(req.Loads))

	for i, l := range req.Loads {
		if err := checkDate(l.LoadDate); err != nil {
			return nil, schemaErrf("load %d: %v", i, err)
		}
		if l.PickupLocation == "" || l.DropoffLocation == "" {
			return nil, schemaErrf("load %d: pickup and dropoff locations are required", i)
		}
		if l.TotalMiles <= 0 {
			return nil, schemaErrf("load %d: total_miles must be positive, got %d", i, l.TotalMiles)
		}
		if l.Revenue < 0 {
			return nil, schemaErrf("load %d: revenue must not be negative", i)
		}
		if l.WaitTimeHours < 0 {
			return nil, schemaErrf("load %d: wait_time_hours must not be negative", i)
		}

		key := TripKey(l.LoadDate, l.DropoffLocation)
		if tripKeys[key] {
			return nil, schemaErrf("load %d: duplicate trip %q; fuel and expense rows would be ambiguous", i, key)
		}
		tripKeys[key] = true
	}

	for i, fs := range req.FuelStops {
		if err := checkDate(fs.StopDate); err != nil {
			return nil, schemaErrf("fuel stop %d: %v", i, err)
		}
		if fs.Gallons <= 0 {
			return nil, schemaErrf("fuel stop %d: gallons must be positive", i)
		}
		if fs.TotalCost <= 0 {
			return nil, schemaErrf("fuel stop %d: total_cost must be positive", i)
		}
		if !tripKeys[fs.Trip] {
			return nil, schemaErrf("fuel stop %d: unknown trip %q", i, fs.Trip)
		}
	}

	for i, e := range req.Expenses {
		if err := checkDate(e.ExpenseDate); err != nil {
			return nil, schemaErrf("expense %d: %v", i, err)
		}
		if e.Category == "" {
			return nil, schemaErrf("expense %d: category is required", i)
		}
		if e.Amount < 0 {
			return nil, schemaErrf("expense %d: amount must not be negative", i)
		}
		if !tripKeys[e.Trip] {
			return nil, schemaErrf("expense %d: unknown trip %q", i, e.Trip)
		}
	}

	return tripKeys, nil
}

func checkDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return nil
}

func schemaErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", analysis.ErrSchemaViolation, fmt.Sprintf(format, args...))
}

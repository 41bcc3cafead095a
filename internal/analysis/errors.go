package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaViolation marks input that breaks the source invariants:
	// non-positive load miles, duplicate load ids, or fuel/expense rows
	// referencing a load that does not exist. The ingestion boundary should
	// have rejected these; the aggregators fail loudly instead of emitting
	// garbage ratios.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrSourceUnavailable marks a failed read from the record store. The
	// run aborts with no partial output so an infrastructure problem is
	// never mistaken for an empty dataset.
	ErrSourceUnavailable = errors.New("record store unavailable")
)

func schemaViolationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSchemaViolation, fmt.Sprintf(format, args...))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfletch/haul-analytics-go/internal/analysis"
	"github.com/jfletch/haul-analytics-go/internal/repository"
)

func TestRunAnalysis(t *testing.T) {
	db := newTestDB(t)

	_, err := NewIngestService(db).ReplaceDataset(validIngest())
	require.NoError(t, err)

	svc := NewAnalyticsService(
		repository.NewLoadRepository(db),
		repository.NewFuelStopRepository(db),
		repository.NewExpenseRepository(db),
	)

	report, err := svc.RunAnalysis()
	require.NoError(t, err)

	require.Len(t, report.Profitability, 2)
	assert.Equal(t, 2, report.Summary.LoadCount)
	// Two loads only: the representative average falls back with a warning.
	assert.NotEmpty(t, report.Warnings)

	details, err := svc.GetExpenseDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Memphis", details[0].DropoffLocation)
}

func TestRunAnalysisSourceUnavailable(t *testing.T) {
	db := newTestDB(t)

	svc := NewAnalyticsService(
		repository.NewLoadRepository(db),
		repository.NewFuelStopRepository(db),
		repository.NewExpenseRepository(db),
	)

	require.NoError(t, db.Close())

	_, err := svc.RunAnalysis()
	assert.ErrorIs(t, err, analysis.ErrSourceUnavailable)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jfletch/haul-analytics-go/internal/config"
	"github.com/jfletch/haul-analytics-go/internal/database"
	"github.com/jfletch/haul-analytics-go/internal/export"
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/repository"
	"github.com/jfletch/haul-analytics-go/internal/service"
)

// report runs one batch analysis over the stored dataset, prints the key
// insights and writes the full workbook under the report directory.
func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	svc := service.NewAnalyticsService(
		repository.NewLoadRepository(db),
		repository.NewFuelStopRepository(db),
		repository.NewExpenseRepository(db),
	)

	report, err := svc.RunAnalysis()
	if err != nil {
		log.WithError(err).Fatal("Analysis run failed")
	}
	details, err := svc.GetExpenseDetails()
	if err != nil {
		log.WithError(err).Fatal("Failed to read expense details")
	}

	printInsights(report)

	if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
		log.WithError(err).Fatal("Failed to create report directory")
	}
	path := filepath.Join(cfg.ReportDir, fmt.Sprintf("haul-report-%s.xlsx", time.Now().Format("2006-01-02")))
	if err := export.WriteReportFile(path, report, details); err != nil {
		log.WithError(err).Fatal("Failed to write report workbook")
	}

	log.WithField("path", path).Info("report written")
}

func printInsights(report *models.AnalysisReport) {
	s := report.Summary

	fmt.Println("=== Fleet summary ===")
	fmt.Printf("Loads: %d over %d miles\n", s.LoadCount, s.TotalMiles)
	fmt.Printf("Revenue: $%.2f  Cost: $%.2f  Net profit: $%.2f\n", s.TotalRevenue, s.TotalCost, s.TotalNetProfit)
	fmt.Printf("Net profit per load: avg $%.2f, median $%.2f\n", s.AvgNetProfit, s.MedianNetProfit)
	fmt.Printf("Fleet cost per mile: $%.2f\n", s.CostPerMile)

	if len(report.Profitability) > 0 {
		fmt.Println("\n=== Trips ===")
		if high := report.Representative.High; high != nil {
			fmt.Printf("Most profitable: %s %s -> %s ($%.2f)\n", high.LoadDate, high.PickupLocation, high.DropoffLocation, high.NetProfit)
		}
		if low := report.Representative.Low; low != nil {
			fmt.Printf("Least profitable: %s %s -> %s ($%.2f)\n", low.LoadDate, low.PickupLocation, low.DropoffLocation, low.NetProfit)
		}
		if avg := report.Representative.Average; avg != nil {
			fmt.Printf("Typical trip: %s %s -> %s ($%.2f)\n", avg.LoadDate, avg.PickupLocation, avg.DropoffLocation, avg.NetProfit)
		}
	}

	if len(report.Routes) > 0 {
		best := report.Routes[0]
		fmt.Println("\n=== Routes ===")
		fmt.Printf("Best lane: %s -> %s (%d trips, avg net $%.2f)\n", best.PickupLocation, best.DropoffLocation, best.NumberOfTrips, best.AvgNetProfit)
		worst := report.Routes[len(report.Routes)-1]
		fmt.Printf("Worst lane: %s -> %s (%d trips, avg net $%.2f)\n", worst.PickupLocation, worst.DropoffLocation, worst.NumberOfTrips, worst.AvgNetProfit)
	}

	if len(report.Warnings) > 0 {
		fmt.Println()
		for _, w := range report.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
	}
}

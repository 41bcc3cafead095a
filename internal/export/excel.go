package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jfletch/haul-analytics-go/internal/models"
)

// Sheet names in the exported workbook, in tab order.
const (
	SheetProfitability  = "Profitability"
	SheetRoutes         = "Routes"
	SheetMonthly        = "Monthly Expenses"
	SheetRepresentative = "Representative Trips"
	SheetSummary        = "Summary"
	SheetExpenseDetails = "Expense Details"
)

// BuildWorkbook renders one analysis report as an xlsx workbook with one
// sheet per derived table. The caller owns the returned file and must close
// it.
func BuildWorkbook(report *models.AnalysisReport, details []models.ExpenseDetail) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeProfitability(f, SheetProfitability, report.Profitability); err != nil {
		return nil, err
	}
	if err := writeRoutes(f, report.Routes); err != nil {
		return nil, err
	}
	if err := writeMonthly(f, report.MonthlyExpenses); err != nil {
		return nil, err
	}
	if err := writeRepresentative(f, report.Representative); err != nil {
		return nil, err
	}
	if err := writeSummary(f, report); err != nil {
		return nil, err
	}
	if err := writeExpenseDetails(f, details); err != nil {
		return nil, err
	}

	// NewFile seeds an empty "Sheet1"; drop it so the report sheets are all
	// the workbook holds.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetProfitability)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	return f, nil
}

// WriteReportFile builds the workbook and saves it at path.
func WriteReportFile(path string, report *models.AnalysisReport, details []models.ExpenseDetail) error {
	f, err := BuildWorkbook(report, details)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func newSheet(f *excelize.File, name string, header []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	return setRow(f, name, 1, row)
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}

// mpgCell renders an undefined miles-per-gallon as an empty cell rather
// than a zero.
func mpgCell(mpg *float64) interface{} {
	if mpg == nil {
		return ""
	}
	return *mpg
}

func writeProfitability(f *excelize.File, sheet string, rows []models.LoadProfitability) error {
	header := []string{
		"Load ID", "Date", "Pickup", "Dropoff", "Revenue", "Miles",
		"Fuel Cost", "Gallons", "Other Expenses", "Total Cost",
		"Net Profit", "Cost / Mile", "MPG",
	}
	if err := newSheet(f, sheet, header); err != nil {
		return err
	}
	for i, r := range rows {
		values := []interface{}{
			r.LoadID, r.LoadDate, r.PickupLocation, r.DropoffLocation,
			r.Revenue, r.TotalMiles, r.TotalFuelCost, r.TotalGallons,
			r.TotalOther, r.TotalCost, r.NetProfit, r.CostPerMile,
			mpgCell(r.MilesPerGallon),
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeRoutes(f *excelize.File, rows []models.RoutePerformance) error {
	header := []string{
		"Pickup", "Dropoff", "Trips", "Avg Profit / Mile",
		"Avg Revenue / Mile", "Avg Cost / Mile", "Avg MPG", "Avg Net Profit",
	}
	if err := newSheet(f, SheetRoutes, header); err != nil {
		return err
	}
	for i, r := range rows {
		values := []interface{}{
			r.PickupLocation, r.DropoffLocation, r.NumberOfTrips,
			r.AvgProfitPerMile, r.AvgRevenuePerMile, r.AvgCostPerMile,
			mpgCell(r.AvgMPG), r.AvgNetProfit,
		}
		if err := setRow(f, SheetRoutes, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthly(f *excelize.File, rows []models.MonthlyExpenseSummary) error {
	if err := newSheet(f, SheetMonthly, []string{"Month", "Category", "Total Spent"}); err != nil {
		return err
	}
	for i, r := range rows {
		values := []interface{}{r.Month, r.Category, r.TotalSpent}
		if err := setRow(f, SheetMonthly, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeRepresentative(f *excelize.File, trips models.RepresentativeTrips) error {
	header := []string{
		"Tier", "Load ID", "Date", "Pickup", "Dropoff", "Revenue", "Miles",
		"Fuel Cost", "Gallons", "Other Expenses", "Total Cost",
		"Net Profit", "Cost / Mile", "MPG",
	}
	if err := newSheet(f, SheetRepresentative, header); err != nil {
		return err
	}

	rowNum := 2
	write := func(tier string, r *models.LoadProfitability) error {
		if r == nil {
			return nil
		}
		values := []interface{}{
			tier, r.LoadID, r.LoadDate, r.PickupLocation, r.DropoffLocation,
			r.Revenue, r.TotalMiles, r.TotalFuelCost, r.TotalGallons,
			r.TotalOther, r.TotalCost, r.NetProfit, r.CostPerMile,
			mpgCell(r.MilesPerGallon),
		}
		err := setRow(f, SheetRepresentative, rowNum, values)
		rowNum++
		return err
	}

	if err := write("Low", trips.Low); err != nil {
		return err
	}
	if err := write("Average", trips.Average); err != nil {
		return err
	}
	return write("High", trips.High)
}

func writeSummary(f *excelize.File, report *models.AnalysisReport) error {
	if err := newSheet(f, SheetSummary, []string{"Metric", "Value"}); err != nil {
		return err
	}

	s := report.Summary
	rows := [][]interface{}{
		{"Generated At", report.GeneratedAt},
		{"Loads", s.LoadCount},
		{"Total Miles", s.TotalMiles},
		{"Total Revenue", s.TotalRevenue},
		{"Total Fuel Cost", s.TotalFuelCost},
		{"Total Other Expenses", s.TotalOther},
		{"Total Cost", s.TotalCost},
		{"Total Net Profit", s.TotalNetProfit},
		{"Average Net Profit", s.AvgNetProfit},
		{"Median Net Profit", s.MedianNetProfit},
		{"Best Net Profit", s.BestNetProfit},
		{"Worst Net Profit", s.WorstNetProfit},
		{"Fleet Cost / Mile", s.CostPerMile},
	}
	rowNum := 2
	for _, values := range rows {
		if err := setRow(f, SheetSummary, rowNum, values); err != nil {
			return err
		}
		rowNum++
	}

	for _, w := range report.Warnings {
		if err := setRow(f, SheetSummary, rowNum, []interface{}{"Warning", w}); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}

func writeExpenseDetails(f *excelize.File, details []models.ExpenseDetail) error {
	header := []string{
		"Expense ID", "Load ID", "Load Date", "Dropoff", "Expense Date",
		"Category", "Amount", "Description",
	}
	if err := newSheet(f, SheetExpenseDetails, header); err != nil {
		return err
	}
	for i, d := range details {
		values := []interface{}{
			d.ExpenseID, d.LoadID, d.LoadDate, d.DropoffLocation, d.ExpenseDate,
			d.Category, d.Amount, d.Description,
		}
		if err := setRow(f, SheetExpenseDetails, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

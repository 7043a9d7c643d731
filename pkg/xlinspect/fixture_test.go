package xlinspect

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// writeDashboardWorkbook saves a workbook shaped like the dashboards this
// tool surveys:
//
//	Summary       1 row  x 2 columns
//	Dashboard     3 rows x 2 columns, the middle row blank
//	DAX Measures  2 rows x 2 columns
//	RawSales      50 rows x 3 columns (Fecha, Monto, Cliente)
//	Notes         empty
//	Ventas        12 rows x 3 columns (Date, Sale Amount, Region), past the preview limit
func writeDashboardWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	for _, name := range []string{"Dashboard", "DAX Measures", "RawSales", "Notes", "Ventas"} {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("Failed to add sheet %s: %v", name, err)
		}
	}

	setRow(t, f, "Summary", 1, "KPI", "Value")
	setRow(t, f, "Summary", 2, "Revenue", 1000)

	setRow(t, f, "Dashboard", 1, "A", "B")
	setRow(t, f, "Dashboard", 2, 1, "x")
	setRow(t, f, "Dashboard", 4, 2, "y")

	setRow(t, f, "DAX Measures", 1, "Measure", "Expression")
	setRow(t, f, "DAX Measures", 2, "Total Sales", "SUM(Sales[Amount])")
	setRow(t, f, "DAX Measures", 3, "Orders", "COUNTROWS(Sales)")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	setRow(t, f, "RawSales", 1, "Fecha", "Monto", "Cliente")
	for i := 0; i < 50; i++ {
		setRow(t, f, "RawSales", i+2, start.AddDate(0, 0, i), 100+i, fmt.Sprintf("Cliente %d", i%7))
	}

	setRow(t, f, "Ventas", 1, "Date", "Sale Amount", "Region")
	for i := 0; i < 12; i++ {
		setRow(t, f, "Ventas", i+2, start.AddDate(0, i, 0), 10*i, "North")
	}

	path := filepath.Join(t.TempDir(), "Dashboard_1_1.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func setRow(t *testing.T, f *excelize.File, sheet string, row int, values ...interface{}) {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		t.Fatalf("Invalid row %d: %v", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		t.Fatalf("Failed to write %s!%s: %v", sheet, cell, err)
	}
}

package models

// WorkbookSummary represents the workbook-level listing printed before any sheet is loaded.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets lists the sheet names in workbook order.
	Sheets []string
}

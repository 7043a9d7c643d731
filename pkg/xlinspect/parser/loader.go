// Package parser turns workbook sheets into tables.
package parser

import "github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"

// RawRow is a sheet row as read by a loader, before header detection.
type RawRow struct {
	// R is the sheet row number (1-based).
	R int
	// Cells holds the row cells indexed by 0-based column; blanks are KindEmpty.
	Cells []models.Cell
}

// SheetLoader reads the rows of a workbook's sheets.
type SheetLoader interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// LoadRows reads every row of the named sheet.
	LoadRows(sheet string) ([]RawRow, error)
	// Close releases the underlying file.
	Close() error
}

// width returns the number of cells up to and including the last non-empty one.
func width(cells []models.Cell) int {
	for i := len(cells) - 1; i >= 0; i-- {
		if !cells[i].IsEmpty() {
			return i + 1
		}
	}
	return 0
}

// Package analysis computes the summaries and heuristics printed for each sheet.
package analysis

import "github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"

// Describe reports the shape of a table and its first maxColumns column names.
func Describe(t *models.Table, maxColumns int) models.SheetDescription {
	names := t.Columns
	if maxColumns >= 0 && len(names) > maxColumns {
		names = names[:maxColumns]
	}
	return models.SheetDescription{
		Sheet:       t.Sheet,
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
		ColumnNames: append([]string(nil), names...),
	}
}

// Head returns the first n rows of a table.
func Head(t *models.Table, n int) []models.Row {
	if n < 0 || n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

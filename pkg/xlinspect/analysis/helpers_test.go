package analysis

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// newTable builds a table with the given columns and rows of cells.
func newTable(sheet string, columns []string, rows ...[]models.Cell) *models.Table {
	t := &models.Table{Sheet: sheet, HeaderRow: 1, Columns: columns}
	for i, cells := range rows {
		t.Rows = append(t.Rows, models.Row{R: i + 2, Cells: cells})
	}
	return t
}

// filledTable builds a table of n rows where every cell holds text.
func filledTable(sheet string, columns []string, n int) *models.Table {
	rows := make([][]models.Cell, n)
	for i := range rows {
		rows[i] = make([]models.Cell, len(columns))
		for j := range columns {
			rows[i][j] = models.TextCell(fmt.Sprintf("r%dc%d", i, j))
		}
	}
	return newTable(sheet, columns, rows...)
}

package analysis

import "github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"

// DashboardRows selects, for each of the first maxRows rows, up to maxFields
// non-empty cells in column order. Rows without any value are omitted.
func DashboardRows(t *models.Table, maxRows, maxFields int) []models.DashboardRow {
	var result []models.DashboardRow
	for i, row := range Head(t, maxRows) {
		var fields []models.Field
		for colIdx, cell := range row.Cells {
			if len(fields) == maxFields {
				break
			}
			if cell.IsEmpty() {
				continue
			}
			fields = append(fields, models.Field{Column: t.Columns[colIdx], Value: cell})
		}
		if len(fields) == 0 {
			continue
		}
		result = append(result, models.DashboardRow{Index: i + 1, Fields: fields})
	}
	return result
}

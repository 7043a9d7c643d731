package parser

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// DetectDataRegion finds the bounding box of the non-empty cells in rows and
// reports it in A1 notation with its fill density.
func DetectDataRegion(rows []RawRow) models.DataRegion {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.DataRegion{}
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows)

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow)
	if err != nil {
		return models.DataRegion{NonEmpty: nonEmptyCells}
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow)
	if err != nil {
		return models.DataRegion{NonEmpty: nonEmptyCells}
	}

	return models.DataRegion{
		Range:    fmt.Sprintf("%s:%s", startCell, endCell),
		NonEmpty: nonEmptyCells,
		Density:  float64(nonEmptyCells) / float64(totalCells),
	}
}

// findDataBounds returns the 1-based row bounds and 0-based column bounds of
// the non-empty cells, or -1s when there are none.
func findDataBounds(rows []RawRow) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.Cells {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || row.R < minRow {
				minRow = row.R
			}
			if maxRow < 0 || row.R > maxRow {
				maxRow = row.R
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts the non-empty cells of all rows.
func countNonEmptyCells(rows []RawRow) int {
	count := 0
	for _, row := range rows {
		for _, cell := range row.Cells {
			if !cell.IsEmpty() {
				count++
			}
		}
	}
	return count
}

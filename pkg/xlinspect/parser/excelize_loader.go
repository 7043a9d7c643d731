package parser

import (
	"strconv"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// ExcelizeLoader reads sheets through excelize, typing cells from their
// cell type, style and number format.
type ExcelizeLoader struct {
	f          *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

// OpenExcelize opens the workbook at path. password may be empty.
func OpenExcelize(path, password string) (*ExcelizeLoader, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: password})
	if err != nil {
		return nil, err
	}
	return newExcelizeLoader(f), nil
}

func newExcelizeLoader(f *excelize.File) *ExcelizeLoader {
	l := &ExcelizeLoader{
		f:          f,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		l.date1904 = *props.Date1904
	}
	return l
}

// SheetNames returns the sheet names in workbook order.
func (l *ExcelizeLoader) SheetNames() []string {
	return l.f.GetSheetList()
}

// LoadRows reads every row of a sheet with raw (unformatted) values.
func (l *ExcelizeLoader) LoadRows(sheet string) ([]RawRow, error) {
	rows, err := l.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]RawRow, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = l.cellValue(sheet, cellName, raw)
		}
		result = append(result, RawRow{R: rowNum, Cells: cells})
	}
	return result, nil
}

// Close closes the workbook.
func (l *ExcelizeLoader) Close() error {
	return l.f.Close()
}

func (l *ExcelizeLoader) cellValue(sheet, cell, raw string) models.Cell {
	typ, err := l.f.GetCellType(sheet, cell)
	if err != nil {
		return parseValue(raw)
	}

	switch typ {
	case excelize.CellTypeBool:
		return parseBool(raw)
	case excelize.CellTypeDate:
		if t, ok := parseTimestamp(raw); ok {
			return models.DateCell(t)
		}
		return models.TextCell(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.TextCell(raw)
		}
		if l.isDateStyled(sheet, cell) {
			if t, err := excelize.ExcelDateToTime(v, l.date1904); err == nil {
				return models.DateCell(t)
			}
		}
		return models.NumberCell(v)
	}
	// Shared and inline strings, string formula results and error values.
	return models.TextCell(raw)
}

// isDateStyled reports whether the cell's number format renders a date.
func (l *ExcelizeLoader) isDateStyled(sheet, cell string) bool {
	styleID, err := l.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	if isDate, ok := l.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := l.f.GetStyle(styleID); err == nil && style != nil {
		isDate = IsBuiltInDateFormat(style.NumFmt) ||
			(style.CustomNumFmt != nil && IsDateFormat(*style.CustomNumFmt))
	}
	l.dateStyles[styleID] = isDate
	return isDate
}

package parser

import (
	"github.com/thedatashed/xlsxreader"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// StreamLoader reads sheets row by row through xlsxreader.
// It cannot open password-protected workbooks.
type StreamLoader struct {
	xl *xlsxreader.XlsxFileCloser
}

// OpenStream opens the workbook at path for streaming.
func OpenStream(path string) (*StreamLoader, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &StreamLoader{xl: xl}, nil
}

// SheetNames returns the sheet names in workbook order.
func (l *StreamLoader) SheetNames() []string {
	return append([]string(nil), l.xl.Sheets...)
}

// LoadRows reads every row of a sheet. Rows missing from the sheet XML are
// not reported; BuildTable fills the gaps.
func (l *StreamLoader) LoadRows(sheet string) ([]RawRow, error) {
	var (
		result   []RawRow
		firstErr error
	)
	// Drain the channel even after an error so the reader goroutine exits.
	for row := range l.xl.ReadRows(sheet) {
		if firstErr != nil {
			continue
		}
		if row.Error != nil {
			firstErr = row.Error
			continue
		}

		cells, err := streamCells(row.Cells)
		if err != nil {
			firstErr = err
			continue
		}
		result = append(result, RawRow{R: row.Index, Cells: cells})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// Close closes the workbook.
func (l *StreamLoader) Close() error {
	return l.xl.Close()
}

func streamCells(in []xlsxreader.Cell) ([]models.Cell, error) {
	indexes := make([]int, len(in))
	n := 0
	for i, c := range in {
		col, err := excelize.ColumnNameToNumber(c.Column)
		if err != nil {
			return nil, err
		}
		indexes[i] = col - 1
		if col > n {
			n = col
		}
	}

	cells := make([]models.Cell, n)
	for i, c := range in {
		if c.Value == "" {
			continue
		}
		cells[indexes[i]] = streamCell(c)
	}
	return cells, nil
}

func streamCell(c xlsxreader.Cell) models.Cell {
	switch c.Type {
	case xlsxreader.TypeNumerical:
		return parseValue(c.Value)
	case xlsxreader.TypeDateTime:
		if t, ok := parseTimestamp(c.Value); ok {
			return models.DateCell(t)
		}
		return parseValue(c.Value)
	case xlsxreader.TypeBoolean:
		return parseBool(c.Value)
	}
	return models.TextCell(c.Value)
}

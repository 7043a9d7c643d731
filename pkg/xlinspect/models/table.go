package models

// Row is a single data row of a Table.
type Row struct {
	// R is the sheet row number (1-based).
	R int
	// Cells holds one cell per table column, in column order.
	Cells []Cell
}

// NonEmpty returns the number of non-blank cells in the row.
func (r Row) NonEmpty() int {
	n := 0
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Table is the in-memory row/column representation of a loaded sheet.
type Table struct {
	// Sheet is the name of the sheet the table was loaded from.
	Sheet string
	// HeaderRow is the sheet row number (1-based) holding the column names, 0 if none.
	HeaderRow int
	// Columns lists the unique column names in sheet order.
	Columns []string
	// Rows lists the data rows below the header in sheet order.
	Rows []Row
	// Region is the bounding box of the sheet's non-empty cells, header included.
	Region DataRegion

	index map[string]int
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Empty reports whether the table has no rows or no columns.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0 || len(t.Columns) == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	if t.index == nil {
		t.index = make(map[string]int, len(t.Columns))
		for i, c := range t.Columns {
			t.index[c] = i
		}
	}
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Value returns the cell of row i under the named column.
// It returns a blank cell when the row or the column does not exist.
func (t *Table) Value(i int, column string) Cell {
	if i < 0 || i >= len(t.Rows) {
		return Cell{}
	}
	idx := t.ColumnIndex(column)
	if idx < 0 || idx >= len(t.Rows[i].Cells) {
		return Cell{}
	}
	return t.Rows[i].Cells[idx]
}

package models

// SheetDescription summarizes the shape of a loaded sheet.
type SheetDescription struct {
	// Sheet is the sheet name.
	Sheet string
	// RowCount is the number of data rows.
	RowCount int
	// ColumnCount is the number of columns.
	ColumnCount int
	// ColumnNames holds the leading column names, capped by the caller's limit.
	ColumnNames []string
}

// DataRegion is the bounding box of the non-empty cells of a sheet.
type DataRegion struct {
	// Range is the region in A1 notation (e.g. "A1:D10"). Empty when the sheet is blank.
	Range string
	// NonEmpty is the number of non-empty cells inside the region.
	NonEmpty int
	// Density is NonEmpty divided by the region area.
	Density float64
}

// Field is a single column/value pair selected from a row.
type Field struct {
	Column string
	Value  Cell
}

// DashboardRow is a row of a dashboard sheet reduced to its leading populated fields.
type DashboardRow struct {
	// Index is the 1-based data row index.
	Index int
	// Fields holds the selected fields in column order. Never empty.
	Fields []Field
}

// Classification is the outcome of the data table heuristic for one sheet.
type Classification struct {
	// Sheet is the sheet name.
	Sheet string
	// RowCount is the number of data rows.
	RowCount int
	// IsDataTable is true when the sheet has enough rows and columns to look like a data table.
	IsDataTable bool
	// HasDateColumn is true when the column list mentions a date term.
	HasDateColumn bool
	// HasSaleColumn is true when the column list mentions a sale term.
	HasSaleColumn bool
}

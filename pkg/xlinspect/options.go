// Package xlinspect opens spreadsheet workbooks and prints a quick survey of
// their sheets: dimensions, headers, dashboard and metric previews, and a
// guess at which sheets hold tabular data.
package xlinspect

import "log/slog"

// Engine selects the reader used to load sheets.
type Engine string

const (
	// EngineExcelize reads sheets with excelize and types cells from their number formats.
	EngineExcelize Engine = "excelize"
	// EngineStream streams rows with xlsxreader. It cannot open encrypted workbooks.
	EngineStream Engine = "stream"
)

// Options configures inspection. Zero values fall back to DefaultOptions.
type Options struct {
	// Engine is the sheet reader (default excelize).
	Engine Engine
	// Password opens encrypted workbooks (excelize engine only).
	Password string
	// CacheTables keeps each loaded table for later loads of the same sheet.
	// By default every load re-reads the sheet.
	CacheTables bool
	// Logger receives debug logs. If nil, slog.Default() is used.
	Logger *slog.Logger

	// PreviewSheets is how many leading sheets get a preview.
	PreviewSheets int
	// HeaderColumns is how many column names a preview lists.
	HeaderColumns int

	// DashboardSheet is the exact name of the dashboard sheet.
	DashboardSheet string
	// DashboardRows is how many dashboard rows are scanned.
	DashboardRows int
	// DashboardFields is how many populated fields are shown per dashboard row.
	DashboardFields int

	// MetricMarkers are matched case-insensitively against sheet names.
	MetricMarkers []string
	// MetricRows is how many rows of a metric sheet are printed.
	MetricRows int

	// MinDataRows is the row count a data table must exceed.
	MinDataRows int
	// MinDataColumns is the column count a data table must exceed.
	MinDataColumns int
	// DateTerms flag a sheet as holding dates.
	DateTerms []string
	// SaleTerms flag a sheet as holding sales.
	SaleTerms []string
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Engine:          EngineExcelize,
		PreviewSheets:   5,
		HeaderColumns:   10,
		DashboardSheet:  "Dashboard",
		DashboardRows:   20,
		DashboardFields: 5,
		MetricMarkers:   []string{"DAX", "METRIC"},
		MetricRows:      10,
		MinDataRows:     10,
		MinDataColumns:  2,
		DateTerms:       []string{"date", "fecha"},
		SaleTerms:       []string{"sale", "venta"},
	}
}

// withDefaults fills every zero field from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Engine == "" {
		o.Engine = d.Engine
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.PreviewSheets == 0 {
		o.PreviewSheets = d.PreviewSheets
	}
	if o.HeaderColumns == 0 {
		o.HeaderColumns = d.HeaderColumns
	}
	if o.DashboardSheet == "" {
		o.DashboardSheet = d.DashboardSheet
	}
	if o.DashboardRows == 0 {
		o.DashboardRows = d.DashboardRows
	}
	if o.DashboardFields == 0 {
		o.DashboardFields = d.DashboardFields
	}
	if o.MetricMarkers == nil {
		o.MetricMarkers = d.MetricMarkers
	}
	if o.MetricRows == 0 {
		o.MetricRows = d.MetricRows
	}
	if o.MinDataRows == 0 {
		o.MinDataRows = d.MinDataRows
	}
	if o.MinDataColumns == 0 {
		o.MinDataColumns = d.MinDataColumns
	}
	if o.DateTerms == nil {
		o.DateTerms = d.DateTerms
	}
	if o.SaleTerms == nil {
		o.SaleTerms = d.SaleTerms
	}
	return o
}

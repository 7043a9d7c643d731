// Package output renders inspection results as console text.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// WriteWorkbookSummary writes the report title and the sheet list.
func WriteWorkbookSummary(w io.Writer, wb models.WorkbookSummary) error {
	_, err := fmt.Fprintf(w, "WORKBOOK ANALYSIS: %s\n\nSheets found: %q\n\n", wb.BookName, wb.Sheets)
	return err
}

// WriteSheetHeader writes the banner opening a sheet preview.
func WriteSheetHeader(w io.Writer, sheet string) error {
	_, err := fmt.Fprintf(w, "--- SHEET: %s ---\n", sheet)
	return err
}

// WriteDescription writes the dimensions of a sheet and, unless the sheet is
// empty, its leading column names and used range.
func WriteDescription(w io.Writer, desc models.SheetDescription, region models.DataRegion, empty bool) error {
	if _, err := fmt.Fprintf(w, "Dimensions: %d rows x %d columns\n", desc.RowCount, desc.ColumnCount); err != nil {
		return err
	}
	if empty {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Columns: %q\n", desc.ColumnNames); err != nil {
		return err
	}
	if region.Range == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "Used range: %s (%d cells, density %.2f)\n", region.Range, region.NonEmpty, region.Density)
	return err
}

// WriteDashboardRows writes one line per selected dashboard row.
func WriteDashboardRows(w io.Writer, rows []models.DashboardRow) error {
	if _, err := fmt.Fprint(w, "\nDashboard structure:\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "Row %d: %s\n", row.Index, FormatFields(row.Fields)); err != nil {
			return err
		}
	}
	return nil
}

// FormatFields renders fields as {Column: value, ...} in the given order.
func FormatFields(fields []models.Field) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Column)
		b.WriteString(": ")
		b.WriteString(f.Value.String())
	}
	b.WriteByte('}')
	return b.String()
}

// WriteMetricPreview writes rows of a table as an aligned grid with a
// 0-based index column.
func WriteMetricPreview(w io.Writer, t *models.Table, rows []models.Row) error {
	if _, err := fmt.Fprint(w, "\nMetrics preview:\n"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(t.Columns, "\t"))
	for i, row := range rows {
		values := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			values[j] = c.String()
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(values, "\t"))
	}
	return tw.Flush()
}

// WriteDataTablesHeader writes the title of the classification pass.
func WriteDataTablesHeader(w io.Writer) error {
	_, err := fmt.Fprint(w, "DATA TABLES IDENTIFIED:\n")
	return err
}

// WriteClassification writes the summary of a sheet classified as a data
// table. Other sheets produce no output.
func WriteClassification(w io.Writer, c models.Classification) error {
	if !c.IsDataTable {
		return nil
	}
	if _, err := fmt.Fprintf(w, "- %s: %d records\n", c.Sheet, c.RowCount); err != nil {
		return err
	}
	if c.HasDateColumn {
		if _, err := fmt.Fprint(w, "  -> contains dates (time series data)\n"); err != nil {
			return err
		}
	}
	if c.HasSaleColumn {
		if _, err := fmt.Fprint(w, "  -> contains sales\n"); err != nil {
			return err
		}
	}
	return nil
}

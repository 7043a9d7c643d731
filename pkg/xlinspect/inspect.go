package xlinspect

import (
	"fmt"
	"io"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/analysis"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/output"
)

// Inspect opens the workbook at path and writes the full report to w.
func Inspect(path string, w io.Writer, opts Options) error {
	wb, err := Open(path, opts)
	if err != nil {
		return err
	}
	defer wb.Close()

	return wb.Report(w)
}

// Report writes the sheet list, previews the leading sheets and lists the
// sheets that look like data tables. Each pass loads its sheets on its own.
func (w *Workbook) Report(out io.Writer) error {
	if err := output.WriteWorkbookSummary(out, w.Summary()); err != nil {
		return err
	}
	if err := w.previewSheets(out); err != nil {
		return err
	}
	return w.classifySheets(out)
}

func (w *Workbook) previewSheets(out io.Writer) error {
	names := w.sheets
	if len(names) > w.opts.PreviewSheets {
		names = names[:w.opts.PreviewSheets]
	}

	for _, name := range names {
		t, err := w.LoadSheet(name)
		if err != nil {
			return err
		}

		if err := output.WriteSheetHeader(out, name); err != nil {
			return err
		}
		desc := analysis.Describe(t, w.opts.HeaderColumns)
		if err := output.WriteDescription(out, desc, t.Region, t.Empty()); err != nil {
			return err
		}

		if !t.Empty() {
			switch {
			case analysis.IsDashboardSheet(name, w.opts.DashboardSheet):
				rows := analysis.DashboardRows(t, w.opts.DashboardRows, w.opts.DashboardFields)
				err = output.WriteDashboardRows(out, rows)
			case analysis.IsMetricSheet(name, w.opts.MetricMarkers):
				err = output.WriteMetricPreview(out, t, analysis.Head(t, w.opts.MetricRows))
			}
			if err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) classifySheets(out io.Writer) error {
	if err := output.WriteDataTablesHeader(out); err != nil {
		return err
	}

	classifier := analysis.NewClassifier(w.opts.MinDataRows, w.opts.MinDataColumns, w.opts.DateTerms, w.opts.SaleTerms)
	for _, name := range w.sheets {
		t, err := w.LoadSheet(name)
		if err != nil {
			return err
		}
		c := classifier.Classify(t)
		w.logger.Debug("sheet classified",
			"sheet", name,
			"data_table", c.IsDataTable,
			"dates", c.HasDateColumn,
			"sales", c.HasSaleColumn,
		)
		if err := output.WriteClassification(out, c); err != nil {
			return err
		}
	}
	return nil
}

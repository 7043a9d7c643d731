package xlinspect

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestInspect(t *testing.T) {
	path := writeDashboardWorkbook(t)

	for _, opts := range []Options{
		{},
		{Engine: EngineStream},
		{CacheTables: true},
	} {
		var buf bytes.Buffer
		if err := Inspect(path, &buf, opts); err != nil {
			t.Fatalf("Inspect(%+v) failed: %v", opts, err)
		}
		out := buf.String()

		expected := []string{
			"WORKBOOK ANALYSIS: Dashboard_1_1.xlsx\n",
			"Sheets found: [\"Summary\" \"Dashboard\" \"DAX Measures\" \"RawSales\" \"Notes\" \"Ventas\"]\n",
			"--- SHEET: Summary ---\nDimensions: 1 rows x 2 columns\nColumns: [\"KPI\" \"Value\"]\nUsed range: A1:B2 (4 cells, density 1.00)\n",
			"--- SHEET: Dashboard ---\nDimensions: 3 rows x 2 columns\n",
			"\nDashboard structure:\nRow 1: {A: 1, B: x}\nRow 3: {A: 2, B: y}\n",
			"--- SHEET: DAX Measures ---\nDimensions: 2 rows x 2 columns\n",
			"\nMetrics preview:\n",
			"--- SHEET: RawSales ---\nDimensions: 50 rows x 3 columns\nColumns: [\"Fecha\" \"Monto\" \"Cliente\"]\n",
			"--- SHEET: Notes ---\nDimensions: 0 rows x 0 columns\n\n",
			"DATA TABLES IDENTIFIED:\n",
			"- RawSales: 50 records\n  -> contains dates (time series data)\n- Ventas: 12 records\n  -> contains dates (time series data)\n  -> contains sales\n",
		}
		for _, e := range expected {
			if !strings.Contains(out, e) {
				t.Errorf("%+v: expected output to contain %q\n--- output ---\n%s", opts, e, out)
			}
		}

		unexpected := []string{
			"--- SHEET: Ventas ---",
			"Row 2:",
			"- Summary:",
			"- Dashboard:",
			"- DAX Measures:",
		}
		for _, u := range unexpected {
			if strings.Contains(out, u) {
				t.Errorf("%+v: expected output not to contain %q", opts, u)
			}
		}

		if strings.Index(out, "--- SHEET: Notes ---") > strings.Index(out, "DATA TABLES IDENTIFIED:") {
			t.Errorf("%+v: expected previews before the data table listing", opts)
		}
	}
}

func TestInspectPreviewLimit(t *testing.T) {
	path := writeDashboardWorkbook(t)

	var buf bytes.Buffer
	if err := Inspect(path, &buf, Options{PreviewSheets: 2}); err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	out := buf.String()

	if strings.Count(out, "--- SHEET:") != 2 {
		t.Errorf("Expected 2 previews, got output:\n%s", out)
	}
	if !strings.Contains(out, "- RawSales: 50 records") {
		t.Error("Expected the classification pass to cover every sheet")
	}
}

func TestInspectMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx"), &buf, Options{})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

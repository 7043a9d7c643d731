package parser

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// BuildTable turns the raw rows of a sheet into a Table.
//
// The first row holding a non-empty cell becomes the header; rows above it
// are dropped. Data rows keep interior blanks and are padded to the widest
// row. A sheet without any value yields a table with no rows or columns.
func BuildTable(sheet string, rows []RawRow) *models.Table {
	t := &models.Table{
		Sheet:  sheet,
		Region: DetectDataRegion(rows),
	}

	header := -1
	for i, r := range rows {
		if width(r.Cells) > 0 {
			header = i
			break
		}
	}
	if header < 0 {
		return t
	}

	body := rows[header+1:]
	for len(body) > 0 && width(body[len(body)-1].Cells) == 0 {
		body = body[:len(body)-1]
	}

	cols := width(rows[header].Cells)
	for _, r := range body {
		if w := width(r.Cells); w > cols {
			cols = w
		}
	}

	t.HeaderRow = rows[header].R
	t.Columns = columnNames(rows[header].Cells, cols)
	t.Rows = make([]models.Row, 0, len(body))

	next := t.HeaderRow + 1
	for _, r := range body {
		// Loaders may skip rows that are absent from the sheet XML.
		for ; next < r.R; next++ {
			t.Rows = append(t.Rows, models.Row{R: next, Cells: make([]models.Cell, cols)})
		}
		cells := make([]models.Cell, cols)
		copy(cells, r.Cells)
		t.Rows = append(t.Rows, models.Row{R: r.R, Cells: cells})
		next = r.R + 1
	}
	return t
}

// columnNames derives unique column names from the header cells.
// Blank headers become "Unnamed: <i>" and repeats get a ".<n>" suffix.
func columnNames(header []models.Cell, cols int) []string {
	names := make([]string, cols)
	seen := make(map[string]int, cols)
	for i := 0; i < cols; i++ {
		base := ""
		if i < len(header) {
			base = header[i].String()
		}
		if base == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}

		name := base
		if n, ok := seen[base]; ok {
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

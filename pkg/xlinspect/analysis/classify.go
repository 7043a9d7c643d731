package analysis

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"golang.org/x/text/cases"
)

// Classifier applies the data table heuristic: a sheet is a data table when
// it has more than MinRows rows and more than MinColumns columns. The date
// and sale flags are substring matches over the whole column list, so a term
// may match across unrelated text.
//
// A Classifier is not safe for concurrent use.
type Classifier struct {
	MinRows    int
	MinColumns int

	fold      cases.Caser
	dateTerms []string
	saleTerms []string
}

// NewClassifier returns a classifier with the given thresholds and search terms.
func NewClassifier(minRows, minColumns int, dateTerms, saleTerms []string) *Classifier {
	c := &Classifier{
		MinRows:    minRows,
		MinColumns: minColumns,
		fold:       cases.Fold(),
	}
	c.dateTerms = c.foldAll(dateTerms)
	c.saleTerms = c.foldAll(saleTerms)
	return c
}

// Classify evaluates one table.
func (c *Classifier) Classify(t *models.Table) models.Classification {
	columns := c.fold.String(ColumnList(t.Columns))
	return models.Classification{
		Sheet:         t.Sheet,
		RowCount:      t.RowCount(),
		IsDataTable:   t.RowCount() > c.MinRows && t.ColumnCount() > c.MinColumns,
		HasDateColumn: containsAny(columns, c.dateTerms),
		HasSaleColumn: containsAny(columns, c.saleTerms),
	}
}

// ColumnList renders the column names as a single string, the form the
// keyword search runs over.
func ColumnList(columns []string) string {
	return fmt.Sprint(columns)
}

func (c *Classifier) foldAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" {
			continue
		}
		out = append(out, c.fold.String(term))
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

package parser

import (
	"testing"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

func TestDetectDataRegion(t *testing.T) {
	rows := []RawRow{
		{R: 1},
		{R: 2, Cells: []models.Cell{models.EmptyCell(), models.TextCell("Header1"), models.TextCell("Header2")}},
		{R: 3, Cells: []models.Cell{models.EmptyCell(), models.NumberCell(100)}},
		{R: 4, Cells: []models.Cell{models.EmptyCell(), models.NumberCell(200), models.NumberCell(300)}},
	}

	region := DetectDataRegion(rows)

	if region.Range != "B2:C4" {
		t.Errorf("Expected B2:C4, got %q", region.Range)
	}
	if region.NonEmpty != 5 {
		t.Errorf("Expected 5 non-empty cells, got %d", region.NonEmpty)
	}
	if region.Density < 0.83 || region.Density > 0.84 {
		t.Errorf("Expected density 5/6, got %f", region.Density)
	}
}

func TestDetectDataRegionEmpty(t *testing.T) {
	region := DetectDataRegion([]RawRow{{R: 1}, {R: 2, Cells: make([]models.Cell, 4)}})
	if region != (models.DataRegion{}) {
		t.Errorf("Expected zero region, got %+v", region)
	}
}

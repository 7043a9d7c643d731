package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// timestampLayouts lists the layouts readers use for ISO-style date cells.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// parseValue attempts to parse a string value as a number.
// Returns a number cell for numeric input, otherwise a text cell.
func parseValue(s string) models.Cell {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}

// parseBool renders a raw boolean cell ("1", "0", "true", "false") as TRUE or FALSE.
func parseBool(s string) models.Cell {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return models.TextCell("TRUE")
	case "0", "false":
		return models.TextCell("FALSE")
	}
	return models.TextCell(s)
}

// parseTimestamp parses an ISO-style date or date-time string.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

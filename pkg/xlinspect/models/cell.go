// Package models defines data structures for workbook inspection.
package models

import (
	"strconv"
	"time"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// KindEmpty is a blank cell.
	KindEmpty CellKind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a string cell. Booleans and error values are carried as text.
	KindText
	// KindDate is a date or date-time cell.
	KindDate
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	}
	return "unknown"
}

// Cell is a single cell value. Only the field matching Kind is meaningful.
type Cell struct {
	// Kind is the variant tag.
	Kind CellKind
	// Number holds the value of a KindNumber cell.
	Number float64
	// Text holds the value of a KindText cell.
	Text string
	// Time holds the value of a KindDate cell.
	Time time.Time
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

// TextCell returns a text cell, or a blank cell when s is empty.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: KindText, Text: s}
}

// DateCell returns a date cell.
func DateCell(t time.Time) Cell {
	return Cell{Kind: KindDate, Time: t}
}

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String formats the cell for console output. Blank cells format as "".
// Dates without a time component print as YYYY-MM-DD.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText:
		return c.Text
	case KindDate:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 {
			return c.Time.Format(time.DateOnly)
		}
		return c.Time.Format(time.DateTime)
	}
	return ""
}

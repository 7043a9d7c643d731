package parser

import (
	"testing"
	"time"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.NumberCell(123)},
		{"123.45", models.NumberCell(123.45)},
		{"-100", models.NumberCell(-100)},
		{"hello", models.TextCell("hello")},
		{"", models.EmptyCell()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "TRUE"},
		{"0", "FALSE"},
		{"true", "TRUE"},
		{"FALSE", "FALSE"},
		{"maybe", "maybe"},
	}

	for _, tt := range tests {
		result := parseBool(tt.input)
		if result.Kind != models.KindText || result.Text != tt.expected {
			t.Errorf("parseBool(%q) = %+v, expected text %q", tt.input, result, tt.expected)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"15/03/2024", time.Time{}, false},
	}

	for _, tt := range tests {
		result, ok := parseTimestamp(tt.input)
		if ok != tt.ok || !result.Equal(tt.expected) {
			t.Errorf("parseTimestamp(%q) = %v, %v, expected %v, %v", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

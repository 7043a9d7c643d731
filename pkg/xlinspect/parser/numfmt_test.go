package parser

import "testing"

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"dd/mm/yyyy hh:mm", true},
		{"d-mmm-yy", true},
		{"[h]:mm:ss", true},
		{"0.00", false},
		{"#,##0", false},
		{"0%", false},
		{"", false},
	}

	for _, tt := range tests {
		result := IsDateFormat(tt.code)
		if result != tt.expected {
			t.Errorf("IsDateFormat(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestIsBuiltInDateFormat(t *testing.T) {
	tests := []struct {
		id       int
		expected bool
	}{
		{0, false},
		{2, false},
		{4, false},
		{14, true},
		{22, true},
		{45, true},
		{49, false},
	}

	for _, tt := range tests {
		result := IsBuiltInDateFormat(tt.id)
		if result != tt.expected {
			t.Errorf("IsBuiltInDateFormat(%d) = %v, expected %v", tt.id, result, tt.expected)
		}
	}
}

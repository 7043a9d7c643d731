package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsDashboardSheet reports whether name is exactly the dashboard sheet name.
func IsDashboardSheet(name, dashboard string) bool {
	return name == dashboard
}

// IsMetricSheet reports whether the sheet name contains any of the markers
// (e.g. "DAX", "METRIC"), ignoring case.
func IsMetricSheet(name string, markers []string) bool {
	upper := cases.Upper(language.Und)
	n := upper.String(name)
	for _, m := range markers {
		if m != "" && strings.Contains(n, upper.String(m)) {
			return true
		}
	}
	return false
}

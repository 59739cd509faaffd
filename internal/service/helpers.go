package service

import (
	"strings"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
)

// SplitHours sums entries into billable and non-billable hours. The two
// totals always add up to the tracked minutes of all entries divided by 60.
func SplitHours(entries []model.ReportEntry) (billable, nonBillable float64) {
	var billMin, nonBillMin int64
	for _, e := range entries {
		if e.Billable() {
			billMin += e.TrackedMinutes
		} else {
			nonBillMin += e.TrackedMinutes
		}
	}
	return float64(billMin) / 60, float64(nonBillMin) / 60
}

func billableHours(entries []model.ReportEntry) float64 {
	b, _ := SplitHours(entries)
	return b
}

// isExcluded matches name against lowercase exclusion substrings.
func isExcluded(name string, excluded []string) bool {
	lower := strings.ToLower(name)
	for _, ex := range excluded {
		if ex != "" && strings.Contains(lower, ex) {
			return true
		}
	}
	return false
}

package utils

import (
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Round2 rounds to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Earnings is hours priced at rate, rounded to cents.
func Earnings(hours, rate float64) float64 {
	return Round2(hours * rate)
}

// DateKey formats t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey formats t as YYYY-MM in t's own location.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBack returns the n calendar days ending on t, oldest first.
func DaysBack(t time.Time, n int) []time.Time {
	day := StartOfDay(t)
	out := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, day.AddDate(0, 0, -i))
	}
	return out
}

// MonthsBack returns the first day of the n calendar months ending with t's
// month, oldest first.
func MonthsBack(t time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, time.Date(t.Year(), t.Month()-time.Month(i), 1, 0, 0, 0, 0, t.Location()))
	}
	return out
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return first, last
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/utils"
)

const (
	weekDays    = 7
	monthsShown = 6
)

// weekly builds seven day buckets ending today. Today is copied from the
// daily totals instead of being queried again.
func (s *DashboardService) weekly(ctx context.Context, now time.Time, today DailyTotals, trace *DebugLog) ([]model.DayBucket, error) {
	trace.Addf("Fetching weekly earnings data...")

	days := utils.DaysBack(now, weekDays)
	buckets := make([]model.DayBucket, len(days))
	for i, d := range days {
		buckets[i] = model.DayBucket{Date: utils.DateKey(d)}
	}

	last := len(buckets) - 1
	buckets[last].Hours = utils.Round2(today.Billable)
	buckets[last].Earnings = utils.Earnings(today.Billable, s.HourlyRate)
	trace.Addf("Using daily calculation data for today in weekly view: %v hours = $%v", today.Billable, today.Billable*s.HourlyRate)

	for i := 0; i < last; i++ {
		date := buckets[i].Date
		hours, err := s.billableBetween(ctx, date, date)
		if err != nil {
			trace.Addf("Error getting data for %s: %s", date, err.Error())
			continue
		}
		buckets[i].Hours = utils.Round2(hours)
		buckets[i].Earnings = utils.Earnings(hours, s.HourlyRate)
		if hours > 0 {
			trace.Addf("Day %s: %v hours = $%v", date, hours, hours*s.HourlyRate)
		}
	}

	trace.Addf("Generated weekly earnings with consistent today calculation")
	return buckets, nil
}

// monthly builds six calendar month buckets ending with the current month.
func (s *DashboardService) monthly(ctx context.Context, now time.Time, trace *DebugLog) ([]model.MonthBucket, error) {
	trace.Addf("Fetching monthly earnings data...")

	months := utils.MonthsBack(now, monthsShown)
	buckets := make([]model.MonthBucket, 0, len(months))
	for _, m := range months {
		key := utils.MonthKey(m)
		first, last := utils.MonthRange(m)

		hours, err := s.billableBetween(ctx, utils.DateKey(first), utils.DateKey(last))
		if err != nil {
			trace.Addf("Error getting data for month %s: %s", key, err.Error())
			buckets = append(buckets, model.MonthBucket{Month: key})
			continue
		}
		buckets = append(buckets, model.MonthBucket{
			Month:    key,
			Hours:    utils.Round2(hours),
			Earnings: utils.Earnings(hours, s.HourlyRate),
		})
		if hours > 0 {
			trace.Addf("Month %s: %v hours = $%v", key, hours, hours*s.HourlyRate)
		}
	}

	trace.Addf("Generated monthly earnings for %d months", monthsShown)
	return buckets, nil
}

// billableBetween sums billable hours over an inclusive date range. A body
// that is not a list counts as no time.
func (s *DashboardService) billableBetween(ctx context.Context, start, end string) (float64, error) {
	entries, err := s.API.TimeReport(ctx, model.TimeTrackingReport(start, end))
	if errors.Is(err, ErrNotList) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return billableHours(entries), nil
}

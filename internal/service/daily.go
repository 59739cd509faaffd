package service

import (
	"context"
	"errors"
	"time"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/utils"
)

// DailyTotals holds today's unrounded hour totals. The weekly section reuses
// them for its last bucket.
type DailyTotals struct {
	Date        string
	Billable    float64
	NonBillable float64
}

func (s *DashboardService) daily(ctx context.Context, now time.Time, trace *DebugLog) (DailyTotals, error) {
	today := utils.DateKey(now)
	out := DailyTotals{Date: today}

	trace.Addf("Fetching time tracking report for today...")
	entries, err := s.API.TimeReport(ctx, model.TimeTrackingReport(today, today))
	if errors.Is(err, ErrNotList) {
		trace.Addf("No time entries returned from reports endpoint")
		return out, nil
	}
	if err != nil {
		return out, err
	}

	var billableCount, nonBillableCount int
	for _, e := range entries {
		if e.Billable() {
			billableCount++
			trace.Addf("Billable: %vh from entry ID %s", e.Hours(), e.ID)
		} else {
			nonBillableCount++
			trace.Addf("Non-billable: %vh from entry ID %s", e.Hours(), e.ID)
		}
	}
	out.Billable, out.NonBillable = SplitHours(entries)
	trace.Addf("Processed %d time entries: %d billable, %d non-billable", len(entries), billableCount, nonBillableCount)
	return out, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/roksva123/go-breeze-dashboard/internal/config"
	"github.com/roksva123/go-breeze-dashboard/internal/model"
)

var errBoom = errors.New("boom")

// fakeBreeze answers reports by date range; per-user reports are looked up
// by user id. Unknown ranges return no entries.
type fakeBreeze struct {
	mu sync.Mutex

	timers    json.RawMessage
	timersErr error

	reports    map[string][]model.ReportEntry
	reportErrs map[string]error
	userReport map[model.ID][]model.ReportEntry
	userErrs   map[model.ID]error

	users    []model.BreezeUser
	usersErr error

	me    model.BreezeUser
	meErr error

	projects    []model.BreezeProject
	projectsErr error

	queries []model.ReportQuery
}

func newFakeBreeze() *fakeBreeze {
	return &fakeBreeze{
		timers:     json.RawMessage(`[]`),
		reports:    map[string][]model.ReportEntry{},
		reportErrs: map[string]error{},
		userReport: map[model.ID][]model.ReportEntry{},
		userErrs:   map[model.ID]error{},
	}
}

func rangeKey(start, end string) string {
	return start + ".." + end
}

func (f *fakeBreeze) RunningTimers(ctx context.Context) (json.RawMessage, error) {
	return f.timers, f.timersErr
}

func (f *fakeBreeze) TimeReport(ctx context.Context, q model.ReportQuery) ([]model.ReportEntry, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if len(q.UserIDs) == 1 {
		id := q.UserIDs[0]
		if err := f.userErrs[id]; err != nil {
			return nil, err
		}
		return f.userReport[id], nil
	}
	key := rangeKey(q.StartDate, q.EndDate)
	if err := f.reportErrs[key]; err != nil {
		return nil, err
	}
	return f.reports[key], nil
}

func (f *fakeBreeze) Users(ctx context.Context) ([]model.BreezeUser, error) {
	return f.users, f.usersErr
}

func (f *fakeBreeze) CurrentUser(ctx context.Context) (model.BreezeUser, error) {
	return f.me, f.meErr
}

func (f *fakeBreeze) Projects(ctx context.Context) ([]model.BreezeProject, error) {
	return f.projects, f.projectsErr
}

func (f *fakeBreeze) queriesFor(start, end string) int {
	n := 0
	for _, q := range f.queries {
		if q.StartDate == start && q.EndDate == end && len(q.UserIDs) == 0 {
			n++
		}
	}
	return n
}

// fixedNow is Friday 2024-03-15 14:00 UTC.
var fixedNow = time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

func newTestService(api BreezeAPI, rate float64) *DashboardService {
	cfg := &config.Config{
		HourlyRate:    rate,
		ExcludedUsers: []string{"admin"},
		Progress: config.ProgressLevels{
			DailyIncrement:    92,
			MaxLevel:          20,
			RainbowThreshold:  1500,
			MonthlyMultiplier: 5,
		},
	}
	svc := NewDashboardService(api, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func entry(id string, minutes int64, notBillable bool) model.ReportEntry {
	return model.ReportEntry{ID: model.ID(id), TrackedMinutes: minutes, NotBillable: notBillable}
}

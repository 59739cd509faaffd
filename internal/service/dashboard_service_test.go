package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/utils"
)

const today = "2024-03-15"

func TestBuild_DailySplit(t *testing.T) {
	api := newFakeBreeze()
	api.reports[rangeKey(today, today)] = []model.ReportEntry{
		entry("7", 120, false),
		entry("8", 30, true),
	}

	res := newTestService(api, 100).Build(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, 2.0, res.BillableHours)
	assert.Equal(t, 0.5, res.NonBillableHours)
	assert.Equal(t, 200.0, res.DailyEarnings)
	assert.Equal(t, today, res.TodayDate)

	assert.Contains(t, res.DebugInfo, "Billable: 2h from entry ID 7")
	assert.Contains(t, res.DebugInfo, "Non-billable: 0.5h from entry ID 8")
	assert.Contains(t, res.DebugInfo, "Processed 2 time entries: 1 billable, 1 non-billable")
	assert.Contains(t, res.DebugInfo, "Billable time: 2 hours = $200")
	assert.Equal(t, "Non-billable time: 0.5 hours", res.DebugInfo[len(res.DebugInfo)-1])
}

func TestBuild_EmptyDay(t *testing.T) {
	api := newFakeBreeze()

	res := newTestService(api, 115).Build(context.Background())

	assert.True(t, res.Success)
	assert.Zero(t, res.BillableHours)
	assert.Zero(t, res.NonBillableHours)
	assert.Zero(t, res.DailyEarnings)
	assert.Equal(t, "No time entries found for today", res.DebugInfo[len(res.DebugInfo)-1])
	for _, line := range res.DebugInfo {
		assert.NotContains(t, line, " error: ")
	}
}

func TestBuild_ReportNotList(t *testing.T) {
	api := newFakeBreeze()
	api.reportErrs[rangeKey(today, today)] = ErrNotList

	res := newTestService(api, 115).Build(context.Background())

	assert.Contains(t, res.DebugInfo, "No time entries returned from reports endpoint")
	assert.NotContains(t, res.DebugInfo, "Reports error: "+ErrNotList.Error())
	assert.Zero(t, res.BillableHours)
}

func TestBuild_DailyFailureKeepsZeros(t *testing.T) {
	api := newFakeBreeze()
	api.reportErrs[rangeKey(today, today)] = &UpstreamError{Status: 502, Endpoint: "reports.json"}

	res := newTestService(api, 115).Build(context.Background())

	assert.True(t, res.Success)
	assert.Zero(t, res.BillableHours)
	assert.Zero(t, res.DailyEarnings)
	assert.Equal(t, today, res.TodayDate)
	assert.Contains(t, res.DebugInfo, "Reports error: HTTP 502 from reports.json")

	require.Len(t, res.WeeklyEarnings, 7)
	assert.Zero(t, res.WeeklyEarnings[6].Hours)
}

func TestBuild_Sessions(t *testing.T) {
	api := newFakeBreeze()
	api.timers = json.RawMessage(`[{"id":1},{"id":2},{"id":3}]`)

	res := newTestService(api, 115).Build(context.Background())

	assert.Equal(t, 3, res.SessionCount)
	assert.JSONEq(t, `[{"id":1},{"id":2},{"id":3}]`, string(res.Data))
	assert.Equal(t, "Found 3 running timers", res.DebugInfo[0])
}

func TestBuild_SessionsNotList(t *testing.T) {
	api := newFakeBreeze()
	api.timers = json.RawMessage(`{"error":"nope"}`)

	res := newTestService(api, 115).Build(context.Background())

	assert.Zero(t, res.SessionCount)
	assert.JSONEq(t, `{"error":"nope"}`, string(res.Data))
}

func TestBuild_SessionsFailure(t *testing.T) {
	api := newFakeBreeze()
	api.timersErr = errBoom

	res := newTestService(api, 115).Build(context.Background())

	assert.Zero(t, res.SessionCount)
	assert.JSONEq(t, `[]`, string(res.Data))
	assert.Equal(t, "Running timers error: boom", res.DebugInfo[0])
}

func TestBuild_WeeklyTodayMatchesDaily(t *testing.T) {
	rates := []float64{0, 1, 87.5, 115, 99.99, 1.0 / 3}
	for _, rate := range rates {
		t.Run(fmt.Sprint(rate), func(t *testing.T) {
			api := newFakeBreeze()
			api.reports[rangeKey(today, today)] = []model.ReportEntry{
				entry("1", 47, false),
				entry("2", 13, false),
				entry("3", 200, true),
			}

			res := newTestService(api, rate).Build(context.Background())

			require.Len(t, res.WeeklyEarnings, 7)
			last := res.WeeklyEarnings[6]
			assert.Equal(t, today, last.Date)
			assert.Equal(t, res.BillableHours, last.Hours)
			assert.Equal(t, res.DailyEarnings, last.Earnings)
			assert.Equal(t, utils.Round2(res.BillableHours*rate), res.DailyEarnings)

			assert.Equal(t, 1, api.queriesFor(today, today))
		})
	}
}

func TestBuild_WeeklyBuckets(t *testing.T) {
	api := newFakeBreeze()
	api.reports[rangeKey("2024-03-10", "2024-03-10")] = []model.ReportEntry{
		entry("1", 90, false),
		entry("2", 60, true),
	}
	api.reportErrs[rangeKey("2024-03-12", "2024-03-12")] = errBoom

	res := newTestService(api, 100).Build(context.Background())

	require.Len(t, res.WeeklyEarnings, 7)
	dates := make([]string, 0, 7)
	for _, b := range res.WeeklyEarnings {
		dates = append(dates, b.Date)
	}
	assert.Equal(t, []string{
		"2024-03-09", "2024-03-10", "2024-03-11", "2024-03-12",
		"2024-03-13", "2024-03-14", "2024-03-15",
	}, dates)

	assert.Equal(t, model.DayBucket{Date: "2024-03-10", Hours: 1.5, Earnings: 150}, res.WeeklyEarnings[1])
	assert.Equal(t, model.DayBucket{Date: "2024-03-12"}, res.WeeklyEarnings[3])
	assert.Contains(t, res.DebugInfo, "Error getting data for 2024-03-12: boom")
	assert.Contains(t, res.DebugInfo, "Day 2024-03-10: 1.5 hours = $150")
}

func TestBuild_MonthlyBuckets(t *testing.T) {
	api := newFakeBreeze()
	api.reports[rangeKey("2024-02-01", "2024-02-29")] = []model.ReportEntry{
		entry("1", 600, false),
		entry("2", 120, true),
	}
	api.reportErrs[rangeKey("2023-12-01", "2023-12-31")] = errBoom

	res := newTestService(api, 50).Build(context.Background())

	require.Len(t, res.MonthlyEarnings, 6)
	months := make([]string, 0, 6)
	for _, b := range res.MonthlyEarnings {
		months = append(months, b.Month)
	}
	assert.Equal(t, []string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}, months)

	assert.Equal(t, model.MonthBucket{Month: "2024-02", Hours: 10, Earnings: 500}, res.MonthlyEarnings[4])
	assert.Equal(t, model.MonthBucket{Month: "2023-12"}, res.MonthlyEarnings[2])
	assert.Contains(t, res.DebugInfo, "Error getting data for month 2023-12: boom")

	assert.Equal(t, 1, api.queriesFor("2024-03-01", "2024-03-31"))
	assert.Equal(t, 1, api.queriesFor("2023-10-01", "2023-10-31"))
}

func TestBuild_UsersFailureIsolated(t *testing.T) {
	api := newFakeBreeze()
	api.usersErr = &UpstreamError{Status: 500, Endpoint: "users.json"}
	api.reports[rangeKey("2024-03-14", "2024-03-14")] = []model.ReportEntry{
		{TrackedMinutes: 60, ProjectID: "42"},
	}
	api.reports[rangeKey("2024-02-14", today)] = []model.ReportEntry{
		{TrackedMinutes: 60, ProjectID: "42"},
	}
	api.reports[rangeKey("2024-03-01", "2024-03-31")] = []model.ReportEntry{
		{TrackedMinutes: 60, ProjectID: "42"},
	}
	api.projects = []model.BreezeProject{{ID: "42", Name: "Website"}}

	res := newTestService(api, 100).Build(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, model.ChampionLoadError(), res.ChampionData)
	assert.Contains(t, res.DebugInfo, "Champion data error: HTTP 500 from users.json")

	require.Len(t, res.WeeklyEarnings, 7)
	assert.Equal(t, 1.0, res.WeeklyEarnings[5].Hours)
	require.Len(t, res.MonthlyEarnings, 6)
	assert.Equal(t, 1.0, res.MonthlyEarnings[5].Hours)
	require.Len(t, res.TopProjects, 1)
	assert.Equal(t, "Website", res.TopProjects[0].Name)
}

func TestBuild_SectionOrder(t *testing.T) {
	api := newFakeBreeze()
	api.timersErr = errBoom
	api.reportErrs[rangeKey(today, today)] = errBoom
	api.usersErr = errBoom
	api.projectsErr = errBoom

	res := newTestService(api, 100).Build(context.Background())

	var labels []string
	for _, line := range res.DebugInfo {
		switch line {
		case "Running timers error: boom", "Reports error: boom", "Champion data error: boom", "Top projects error: boom":
			labels = append(labels, line)
		}
	}
	assert.Equal(t, []string{
		"Running timers error: boom",
		"Reports error: boom",
		"Champion data error: boom",
		"Top projects error: boom",
	}, labels)
	assert.Empty(t, res.TopProjects)
	assert.NotNil(t, res.TopProjects)
}

func TestBuild_ConfigEcho(t *testing.T) {
	svc := newTestService(newFakeBreeze(), 115)
	svc.Progress.LevelDescriptions = map[string]string{"1": "Rookie"}

	res := svc.Build(context.Background())

	assert.Equal(t, model.ProgressConfig{
		DailyIncrement:    92,
		MaxLevel:          20,
		RainbowThreshold:  1500,
		MonthlyMultiplier: 5,
		LevelDescriptions: map[string]string{"1": "Rookie"},
	}, res.Config)
}

func TestBuild_JSONShape(t *testing.T) {
	res := newTestService(newFakeBreeze(), 115).Build(context.Background())

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{
		"success", "session_count", "billable_hours", "non_billable_hours", "daily_earnings",
		"today_date", "weekly_earnings", "monthly_earnings", "champion_data", "top_projects",
		"data", "debug_info", "config",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, []interface{}{}, m["top_projects"])
	assert.Equal(t, []interface{}{}, m["data"])
	assert.IsType(t, map[string]interface{}{}, m["config"].(map[string]interface{})["level_descriptions"])
}

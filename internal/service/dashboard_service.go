package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/roksva123/go-breeze-dashboard/internal/config"
	"github.com/roksva123/go-breeze-dashboard/internal/logger"
	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/utils"
)

// DashboardService assembles one dashboard payload. A value is meant to serve
// a single request; nothing on it is shared.
type DashboardService struct {
	API           BreezeAPI
	HourlyRate    float64
	ExcludedUsers []string
	Progress      config.ProgressLevels
	Now           func() time.Time
	Log           *slog.Logger
}

func NewDashboardService(api BreezeAPI, cfg *config.Config, lg *slog.Logger) *DashboardService {
	if lg == nil {
		lg = logger.Logger
	}
	return &DashboardService{
		API:           api,
		HourlyRate:    cfg.HourlyRate,
		ExcludedUsers: cfg.ExcludedUsers,
		Progress:      cfg.Progress,
		Now:           time.Now,
		Log:           lg,
	}
}

// Build runs every section in order. Section failures are reported in
// DebugInfo and never fail the whole result.
func (s *DashboardService) Build(ctx context.Context) *model.DashboardResult {
	now := s.Now()
	log := &DebugLog{}

	res := &model.DashboardResult{
		Success:         true,
		WeeklyEarnings:  []model.DayBucket{},
		MonthlyEarnings: []model.MonthBucket{},
		TopProjects:     []model.ProjectSummary{},
		Data:            json.RawMessage("[]"),
		Config:          s.progressConfig(),
	}

	sessions := runSection(log, s.Log, "Running timers", sessionSummary{Data: json.RawMessage("[]")},
		func(trace *DebugLog) (sessionSummary, error) { return s.sessions(ctx, trace) })
	res.Data = sessions.Data
	res.SessionCount = sessions.Count

	daily := runSection(log, s.Log, "Reports", DailyTotals{Date: utils.DateKey(now)},
		func(trace *DebugLog) (DailyTotals, error) { return s.daily(ctx, now, trace) })
	res.BillableHours = utils.Round2(daily.Billable)
	res.NonBillableHours = utils.Round2(daily.NonBillable)
	res.DailyEarnings = utils.Earnings(daily.Billable, s.HourlyRate)
	res.TodayDate = daily.Date

	res.ChampionData = runSection(log, s.Log, "Champion data", model.ChampionLoadError(),
		func(trace *DebugLog) (model.ChampionSummary, error) { return s.champion(ctx, now, trace) })

	res.WeeklyEarnings = runSection(log, s.Log, "Weekly data", []model.DayBucket{},
		func(trace *DebugLog) ([]model.DayBucket, error) { return s.weekly(ctx, now, daily, trace) })

	res.MonthlyEarnings = runSection(log, s.Log, "Monthly data", []model.MonthBucket{},
		func(trace *DebugLog) ([]model.MonthBucket, error) { return s.monthly(ctx, now, trace) })

	res.TopProjects = runSection(log, s.Log, "Top projects", []model.ProjectSummary{},
		func(trace *DebugLog) ([]model.ProjectSummary, error) { return s.topProjects(ctx, now, trace) })

	if daily.Billable > 0 || daily.NonBillable > 0 {
		log.Addf("Billable time: %v hours = $%v", res.BillableHours, res.DailyEarnings)
		log.Addf("Non-billable time: %v hours", res.NonBillableHours)
	} else {
		log.Addf("No time entries found for today")
	}

	res.DebugInfo = log.Lines()
	s.Log.Info("dashboard assembled",
		"sessions", res.SessionCount,
		"billable_hours", res.BillableHours,
		"champion", res.ChampionData.ChampionName,
		"top_projects", len(res.TopProjects),
	)
	return res
}

func (s *DashboardService) progressConfig() model.ProgressConfig {
	desc := s.Progress.LevelDescriptions
	if desc == nil {
		desc = map[string]string{}
	}
	return model.ProgressConfig{
		DailyIncrement:    s.Progress.DailyIncrement,
		MaxLevel:          s.Progress.MaxLevel,
		RainbowThreshold:  s.Progress.RainbowThreshold,
		MonthlyMultiplier: s.Progress.MonthlyMultiplier,
		LevelDescriptions: desc,
	}
}

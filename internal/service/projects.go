package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/utils"
)

const (
	projectWindowDays = 30
	topProjectsSize   = 5
	unknownProject    = "Unknown Project"
)

type projectMinutes struct {
	id      model.ID
	minutes int64
}

// topProjects ranks projects by billable time over the last 30 days.
func (s *DashboardService) topProjects(ctx context.Context, now time.Time, trace *DebugLog) ([]model.ProjectSummary, error) {
	trace.Addf("Fetching top projects data...")

	start := utils.DateKey(now.AddDate(0, 0, -projectWindowDays))
	end := utils.DateKey(now)

	projects, err := s.API.Projects(ctx)
	if errors.Is(err, ErrNotList) {
		trace.Addf("Failed to fetch projects list")
		return []model.ProjectSummary{}, nil
	}
	if err != nil {
		return nil, err
	}
	trace.Addf("Found %d projects, analyzing time entries...", len(projects))

	entries, err := s.API.TimeReport(ctx, model.TimeTrackingReport(start, end))
	if err != nil && !errors.Is(err, ErrNotList) {
		return nil, err
	}

	var totals []projectMinutes
	index := map[model.ID]int{}
	if err == nil {
		for _, e := range entries {
			if e.ProjectID.IsZero() || !e.Billable() || e.TrackedMinutes <= 0 {
				continue
			}
			i, ok := index[e.ProjectID]
			if !ok {
				i = len(totals)
				index[e.ProjectID] = i
				totals = append(totals, projectMinutes{id: e.ProjectID})
			}
			totals[i].minutes += e.TrackedMinutes
		}
		trace.Addf("Processed %d time entries", len(entries))
	}

	top := summarizeProjects(totals, projects, s.HourlyRate)
	if len(top) > 0 {
		trace.Addf("Top project: %s with %v hours", top[0].Name, top[0].Hours)
	} else {
		trace.Addf("No projects found with billable time in last %d days", projectWindowDays)
	}
	return top, nil
}

// summarizeProjects joins totals with project metadata, drops projects that
// are not in the list, and keeps the five largest.
func summarizeProjects(totals []projectMinutes, projects []model.BreezeProject, rate float64) []model.ProjectSummary {
	meta := make(map[model.ID]model.BreezeProject, len(projects))
	for _, p := range projects {
		if _, seen := meta[p.ID]; !seen {
			meta[p.ID] = p
		}
	}

	out := make([]model.ProjectSummary, 0, len(totals))
	for _, t := range totals {
		p, ok := meta[t.id]
		if !ok {
			continue
		}
		name := p.Name
		if name == "" {
			name = unknownProject
		}
		hours := float64(t.minutes) / 60
		out = append(out, model.ProjectSummary{
			ID:          t.id.String(),
			Name:        name,
			Description: p.Description,
			Hours:       utils.Round2(hours),
			Earnings:    utils.Earnings(hours, rate),
		})
	}

	slices.SortStableFunc(out, func(a, b model.ProjectSummary) int {
		return cmp.Compare(b.Hours, a.Hours)
	})
	return out[:min(topProjectsSize, len(out))]
}

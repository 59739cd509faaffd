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

const leaderboardSize = 5

// champion ranks users by everything they tracked today. Users are queried
// one at a time so a failing user only drops that user.
func (s *DashboardService) champion(ctx context.Context, now time.Time, trace *DebugLog) (model.ChampionSummary, error) {
	today := utils.DateKey(now)
	trace.Addf("Fetching champion data...")

	users, err := s.API.Users(ctx)
	if errors.Is(err, ErrNotList) {
		return model.NoChampion(), nil
	}
	if err != nil {
		return model.ChampionSummary{}, err
	}
	if len(users) == 0 {
		return model.NoChampion(), nil
	}

	var currentEmail string
	if me, err := s.API.CurrentUser(ctx); err != nil {
		trace.Addf("Could not get current user: %s", err.Error())
	} else {
		currentEmail = me.Email
	}

	rows := make([]model.UserHours, 0, len(users))
	for _, u := range users {
		if u.ID.IsZero() || u.Name == "" {
			continue
		}
		if isExcluded(u.Name, s.ExcludedUsers) {
			trace.Addf("Skipping user: %s", u.Name)
			continue
		}

		entries, err := s.API.TimeReport(ctx, model.TimeTrackingReport(today, today, u.ID))
		if err != nil && !errors.Is(err, ErrNotList) {
			trace.Addf("Error getting data for user %s: %s", u.Name, err.Error())
			continue
		}

		var minutes int64
		for _, e := range entries {
			if !e.UserID.IsZero() && e.UserID != u.ID {
				trace.Addf("Entry user_id %s doesn't match target user_id %s, skipping", e.UserID, u.ID)
				continue
			}
			minutes += e.TrackedMinutes
		}
		hours := float64(minutes) / 60
		trace.Addf("User %s (ID: %s) has %v hours", u.Name, u.ID, hours)

		rows = append(rows, model.UserHours{
			Name:          u.Name,
			Email:         u.Email,
			Hours:         utils.Round2(hours),
			IsCurrentUser: currentEmail != "" && u.Email == currentEmail,
		})
	}

	summary := rankUsers(rows)
	trace.Addf("Champion analysis complete: %s with %v hours", summary.ChampionName, summary.ChampionHours)
	return summary, nil
}

// rankUsers sorts rows by hours, highest first, keeping discovery order for
// ties, and builds the summary from them.
func rankUsers(rows []model.UserHours) model.ChampionSummary {
	if len(rows) == 0 {
		return model.NoChampion()
	}
	slices.SortStableFunc(rows, func(a, b model.UserHours) int {
		return cmp.Compare(b.Hours, a.Hours)
	})

	summary := model.ChampionSummary{
		ChampionName:  rows[0].Name,
		ChampionHours: rows[0].Hours,
		UserRank:      1,
		TotalUsers:    len(rows),
	}
	for i, r := range rows {
		if r.IsCurrentUser {
			summary.UserRank = i + 1
			break
		}
	}
	summary.Leaderboard = slices.Clone(rows[:min(leaderboardSize, len(rows))])
	return summary
}

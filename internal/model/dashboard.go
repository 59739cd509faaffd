package model

import "encoding/json"

// UserHours is one leaderboard row.
type UserHours struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Hours         float64 `json:"hours"`
	IsCurrentUser bool    `json:"is_current_user"`
}

type ChampionSummary struct {
	ChampionName  string      `json:"champion_name"`
	ChampionHours float64     `json:"champion_hours"`
	UserRank      int         `json:"user_rank"`
	TotalUsers    int         `json:"total_users"`
	Leaderboard   []UserHours `json:"leaderboard"`
}

// NoChampion is reported when nobody qualified for the leaderboard.
func NoChampion() ChampionSummary {
	return ChampionSummary{ChampionName: "No one yet", UserRank: 1, Leaderboard: []UserHours{}}
}

// ChampionLoadError is reported when the champion section failed outright.
func ChampionLoadError() ChampionSummary {
	return ChampionSummary{ChampionName: "Error loading", UserRank: 1, Leaderboard: []UserHours{}}
}

type DayBucket struct {
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

type MonthBucket struct {
	Month    string  `json:"month"`
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

type ProjectSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Earnings    float64 `json:"earnings"`
}

// ProgressConfig echoes the level meter constants to the front end.
type ProgressConfig struct {
	DailyIncrement    float64           `json:"daily_increment"`
	MaxLevel          int               `json:"max_level"`
	RainbowThreshold  float64           `json:"rainbow_threshold"`
	MonthlyMultiplier float64           `json:"monthly_multiplier"`
	LevelDescriptions map[string]string `json:"level_descriptions"`
}

// DashboardResult is the full payload returned to the dashboard.
type DashboardResult struct {
	Success          bool             `json:"success"`
	SessionCount     int              `json:"session_count"`
	BillableHours    float64          `json:"billable_hours"`
	NonBillableHours float64          `json:"non_billable_hours"`
	DailyEarnings    float64          `json:"daily_earnings"`
	TodayDate        string           `json:"today_date"`
	WeeklyEarnings   []DayBucket      `json:"weekly_earnings"`
	MonthlyEarnings  []MonthBucket    `json:"monthly_earnings"`
	ChampionData     ChampionSummary  `json:"champion_data"`
	TopProjects      []ProjectSummary `json:"top_projects"`
	Data             json.RawMessage  `json:"data"`
	DebugInfo        []string         `json:"debug_info"`
	Config           ProgressConfig   `json:"config"`
}

// ErrorResponse is returned for fatal failures.
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error"`
	DebugInfo []string `json:"debug_info"`
}

package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a Breeze identifier normalized to its string form. Breeze returns ids
// as numbers on some endpoints and strings on others, so every id is
// converted once on the way in and compared as a plain string afterwards.
type ID string

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

// MarshalJSON writes integer ids back as JSON numbers so queries sent upstream
// look like the ones Breeze handed out.
func (id ID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*id = ParseID(v)
	return nil
}

// ParseID converts a decoded JSON value into an ID.
func ParseID(v interface{}) ID {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return ID(strings.TrimSpace(val))
	case float64:
		return ID(strconv.FormatFloat(val, 'f', -1, 64))
	case json.Number:
		return ID(val.String())
	case int:
		return ID(strconv.Itoa(val))
	case int64:
		return ID(strconv.FormatInt(val, 10))
	}
	return ""
}

// ReportEntry is one row of a Breeze "timetracking" report.
type ReportEntry struct {
	ID             ID
	TrackedMinutes int64
	NotBillable    bool
	UserID         ID
	ProjectID      ID
}

// Hours converts the tracked minutes to hours.
func (e ReportEntry) Hours() float64 {
	return float64(e.TrackedMinutes) / 60
}

// Billable is the inverse of the notbillable flag.
func (e ReportEntry) Billable() bool {
	return !e.NotBillable
}

// BreezeUser is an entry of users.json or the body of users/me.json.
type BreezeUser struct {
	ID    ID
	Name  string
	Email string
}

// BreezeProject is an entry of projects.json.
type BreezeProject struct {
	ID          ID
	Name        string
	Description string
}

// ReportQuery is the POST body for reports.json.
type ReportQuery struct {
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	UserIDs    []ID   `json:"user_ids,omitempty"`
}

// TimeTrackingReport builds a report query for the inclusive date range.
func TimeTrackingReport(start, end string, userIDs ...ID) ReportQuery {
	return ReportQuery{
		ReportType: "timetracking",
		StartDate:  start,
		EndDate:    end,
		UserIDs:    userIDs,
	}
}

func ParseReportEntry(raw map[string]interface{}) ReportEntry {
	e := ReportEntry{
		ID:        ParseID(raw["id"]),
		UserID:    ParseID(raw["user_id"]),
		ProjectID: ParseID(raw["project_id"]),
	}

	if minutes, ok := tryFloatFromInterface(raw["tracked"]); ok && minutes > 0 {
		e.TrackedMinutes = int64(minutes)
	}
	e.NotBillable = truthy(raw["notbillable"])

	return e
}

func ParseBreezeUser(raw map[string]interface{}) BreezeUser {
	return BreezeUser{
		ID:    ParseID(raw["id"]),
		Name:  safeString(raw["name"]),
		Email: safeString(raw["email"]),
	}
}

func ParseBreezeProject(raw map[string]interface{}) BreezeProject {
	return BreezeProject{
		ID:          ParseID(raw["id"]),
		Name:        safeString(raw["name"]),
		Description: safeString(raw["description"]),
	}
}

// tryFloatFromInterface handles float64, int, json.Number and numeric strings.
func tryFloatFromInterface(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// truthy reads a loosely typed flag: true, non-zero numbers and any string
// other than "", "0" and "false".
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s != "" && s != "0" && s != "false"
	}
	return false
}

func safeString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

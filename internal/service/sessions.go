package service

import (
	"bytes"
	"context"
	"encoding/json"
)

type sessionSummary struct {
	Data  json.RawMessage
	Count int
}

// sessions echoes running_timers.json untouched and counts its elements.
func (s *DashboardService) sessions(ctx context.Context, trace *DebugLog) (sessionSummary, error) {
	raw, err := s.API.RunningTimers(ctx)
	if err != nil {
		return sessionSummary{}, err
	}
	out := sessionSummary{Data: raw}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if json.Unmarshal(trimmed, &items) == nil {
			out.Count = len(items)
		}
	}
	trace.Addf("Found %d running timers", out.Count)
	return out, nil
}

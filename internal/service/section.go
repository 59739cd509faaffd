package service

import (
	"fmt"
	"log/slog"
)

// DebugLog is the ordered list of human-readable diagnostics returned in
// debug_info.
type DebugLog struct {
	lines []string
}

func (d *DebugLog) Addf(format string, args ...interface{}) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

func (d *DebugLog) Lines() []string {
	if d.lines == nil {
		return []string{}
	}
	return d.lines
}

func (d *DebugLog) merge(other *DebugLog) {
	d.lines = append(d.lines, other.lines...)
}

// runSection runs fn with its own trace, folds the trace into log, and
// replaces a failure with fallback plus a "<label> error" line.
func runSection[T any](log *DebugLog, lg *slog.Logger, label string, fallback T, fn func(trace *DebugLog) (T, error)) T {
	trace := &DebugLog{}
	v, err := fn(trace)
	log.merge(trace)
	if err != nil {
		log.Addf("%s error: %s", label, err.Error())
		lg.Warn("dashboard section failed", "section", label, "error", err)
		return fallback
	}
	return v
}

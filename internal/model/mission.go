package model

import "time"

// Mission represents a single mission run started from the planner
type Mission struct {
	ID        string // unique mission run identifier
	State     MissionState
	StartedAt time.Time
	EndedAt   time.Time // zero until the mission finishes
}

// Duration returns the mission run time. For an active mission the
// duration keeps growing; for a finished one it is fixed.
func (m *Mission) Duration() time.Duration {
	if m.StartedAt.IsZero() {
		return 0
	}
	if m.EndedAt.IsZero() {
		return time.Since(m.StartedAt)
	}
	return m.EndedAt.Sub(m.StartedAt)
}

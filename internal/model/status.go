package model

// LinkStatus represents the telemetry link state of a drone
type LinkStatus string

const (
	// LinkStatusOffline means no telemetry link is established
	LinkStatusOffline LinkStatus = "Offline"

	// LinkStatusLive means the telemetry link is up and the drone reports in
	LinkStatusLive LinkStatus = "Live"

	// LinkStatusKilled means the drone was shut down by the operator
	LinkStatusKilled LinkStatus = "Killed"
)

// String returns the string representation of LinkStatus
func (ls LinkStatus) String() string {
	return string(ls)
}

// IsLive returns true if the drone currently reports over its link
func (ls LinkStatus) IsLive() bool {
	return ls == LinkStatusLive
}

// IsKilled returns true if the drone was shut down by the operator.
// A killed drone never returns to the fleet within the same session.
func (ls LinkStatus) IsKilled() bool {
	return ls == LinkStatusKilled
}

// MissionState represents the lifecycle state of a mission
type MissionState string

const (
	// MissionStateRunning means the mission was started and is in progress
	MissionStateRunning MissionState = "Running"

	// MissionStateAborted means the mission was aborted by the operator
	// or because no live drone remained
	MissionStateAborted MissionState = "Aborted"

	// MissionStateCompleted means the mission finished normally
	MissionStateCompleted MissionState = "Completed"
)

// String returns the string representation of MissionState
func (ms MissionState) String() string {
	return string(ms)
}

// IsActive returns true while the mission is still in progress
func (ms MissionState) IsActive() bool {
	return ms == MissionStateRunning
}

// IsFinished returns true if the mission reached a terminal state
func (ms MissionState) IsFinished() bool {
	return ms == MissionStateAborted || ms == MissionStateCompleted
}

package fleet

import (
	"github.com/projectmanas/manas-planner/internal/model"
)

// Tracker defines the interface for the fleet state registry. Drone and
// Mission values it returns or passes to callbacks are snapshots; callers
// may read them without locking.
type Tracker interface {
	SetUpdateCallback(func(*model.Drone))
	SetMissionCallback(func(*model.Mission))
	RegisterDrone(name, imagePath string) (*model.Drone, error)
	GetDrone(name string) (*model.Drone, bool)
	GetAllDrones() []*model.Drone
	AnyLive() bool

	// SetLink changes a drone's telemetry link state (Offline/Live)
	SetLink(name string, status model.LinkStatus) error

	// SetGPSActive flags whether the drone's GPS fixes are trustworthy
	SetGPSActive(name string, active bool) error

	// UpdatePosition records a GPS fix for the named drone
	UpdatePosition(name string, latitude, longitude, altitudeM float64) error

	CurrentMission() (*model.Mission, bool)
	StartMission() (*model.Mission, error)
	AbortMission() error
	CompleteMission() error

	// KillDrone shuts the drone down for the rest of the session
	KillDrone(name string) error
}

package fleet

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/projectmanas/manas-planner/internal/model"
)

// Service is the canonical fleet state registry
type Service struct {
	drones    map[string]*model.Drone // keyed by normalized name
	order     []string                // registration order for stable listing
	lastFixes map[string]model.Position
	mission   *model.Mission
	mu        sync.RWMutex
	log       zerolog.Logger
	onUpdate  func(*model.Drone)   // callback for drone state changes
	onMission func(*model.Mission) // callback for mission state changes
	clock     func() time.Time
}

// NewService creates a new fleet registry
func NewService(log zerolog.Logger) *Service {
	return &Service{
		drones:    make(map[string]*model.Drone),
		lastFixes: make(map[string]model.Position),
		log:       log,
		clock:     time.Now,
	}
}

// SetUpdateCallback sets the callback invoked after every drone state change
func (s *Service) SetUpdateCallback(callback func(*model.Drone)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetMissionCallback sets the callback invoked after every mission state change
func (s *Service) SetMissionCallback(callback func(*model.Mission)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMission = callback
}

// RegisterDrone adds a drone to the fleet. Names are matched
// case-insensitively and must be unique.
func (s *Service) RegisterDrone(name, imagePath string) (*model.Drone, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("drone name is empty")
	}

	s.mu.Lock()
	if _, exists := s.drones[key]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("drone already registered: %s", name)
	}

	drone := &model.Drone{
		Name:      strings.TrimSpace(name),
		ImagePath: imagePath,
		Link:      model.LinkStatusOffline,
	}
	s.drones[key] = drone
	s.order = append(s.order, key)
	snapshot := *drone
	s.mu.Unlock()

	s.log.Info().Str("drone", snapshot.Name).Msg("drone registered")
	s.notifyUpdate(&snapshot)
	return &snapshot, nil
}

// GetDrone returns a snapshot of a drone by name. Mutating the returned
// value does not touch the registry.
func (s *Service) GetDrone(name string) (*model.Drone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	drone, exists := s.drones[normalizeName(name)]
	if !exists {
		return nil, false
	}
	snapshot := *drone
	return &snapshot, true
}

// GetAllDrones returns snapshots of all drones in registration order
func (s *Service) GetAllDrones() []*model.Drone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drones := make([]*model.Drone, 0, len(s.order))
	for _, key := range s.order {
		snapshot := *s.drones[key]
		drones = append(drones, &snapshot)
	}
	return drones
}

// AnyLive returns true if at least one drone link is live
func (s *Service) AnyLive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anyLiveLocked()
}

func (s *Service) anyLiveLocked() bool {
	for _, drone := range s.drones {
		if drone.Link.IsLive() {
			return true
		}
	}
	return false
}

// SetLink changes the telemetry link state of a drone. A killed drone
// stays killed for the rest of the session.
func (s *Service) SetLink(name string, status model.LinkStatus) error {
	s.mu.Lock()
	drone, exists := s.drones[normalizeName(name)]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("drone not found: %s", name)
	}
	if drone.Link.IsKilled() {
		s.mu.Unlock()
		return fmt.Errorf("drone is killed: %s", drone.Name)
	}

	drone.Link = status
	if !status.IsLive() {
		drone.GPSActive = false
	}
	snapshot := *drone
	s.mu.Unlock()

	s.log.Info().Str("drone", snapshot.Name).Str("link", status.String()).Msg("link state changed")
	s.notifyUpdate(&snapshot)
	return nil
}

// SetGPSActive flags whether coordinate updates from the drone are usable
func (s *Service) SetGPSActive(name string, active bool) error {
	s.mu.Lock()
	drone, exists := s.drones[normalizeName(name)]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("drone not found: %s", name)
	}
	if drone.Link.IsKilled() {
		s.mu.Unlock()
		return fmt.Errorf("drone is killed: %s", drone.Name)
	}

	drone.GPSActive = active
	snapshot := *drone
	s.mu.Unlock()

	s.log.Debug().Str("drone", snapshot.Name).Bool("gps", active).Msg("gps state changed")
	s.notifyUpdate(&snapshot)
	return nil
}

// UpdatePosition records a GPS fix for the named drone. The visible
// position changes only while that drone's GPS is active; raw fixes are
// still tracked for movement detection.
func (s *Service) UpdatePosition(name string, latitude, longitude, altitudeM float64) error {
	key := normalizeName(name)

	s.mu.Lock()
	drone, exists := s.drones[key]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("drone not found: %s", name)
	}
	if drone.Link.IsKilled() {
		s.mu.Unlock()
		return fmt.Errorf("drone is killed: %s", drone.Name)
	}

	fix := model.Position{
		Latitude:  latitude,
		Longitude: longitude,
		AltitudeM: altitudeM,
		UpdatedAt: s.clock(),
		Valid:     true,
	}

	moved := fix.MovedFrom(s.lastFixes[key])
	s.lastFixes[key] = fix

	accepted := drone.GPSActive
	if accepted {
		drone.Position = fix
	}
	snapshot := *drone
	s.mu.Unlock()

	s.log.Debug().
		Str("drone", snapshot.Name).
		Float64("lat", latitude).
		Float64("lon", longitude).
		Float64("alt_m", altitudeM).
		Bool("accepted", accepted).
		Bool("moved", moved).
		Msg("position fix")

	if accepted {
		s.notifyUpdate(&snapshot)
	}
	return nil
}

// CurrentMission returns a snapshot of the active mission, if any
func (s *Service) CurrentMission() (*model.Mission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mission == nil || !s.mission.State.IsActive() {
		return nil, false
	}
	snapshot := *s.mission
	return &snapshot, true
}

// StartMission starts a new mission run. At least one drone must be live
// and no other mission may be in progress.
func (s *Service) StartMission() (*model.Mission, error) {
	s.mu.Lock()
	if s.mission != nil && s.mission.State.IsActive() {
		s.mu.Unlock()
		return nil, fmt.Errorf("mission already running: %s", s.mission.ID)
	}
	if !s.anyLiveLocked() {
		s.mu.Unlock()
		return nil, fmt.Errorf("no live drone in the fleet")
	}

	mission := &model.Mission{
		ID:        uuid.NewString(),
		State:     model.MissionStateRunning,
		StartedAt: s.clock(),
	}
	s.mission = mission
	snapshot := *mission
	s.mu.Unlock()

	s.log.Info().Str("mission", snapshot.ID).Msg("mission started")
	s.notifyMission(&snapshot)
	return &snapshot, nil
}

// AbortMission aborts the active mission
func (s *Service) AbortMission() error {
	return s.finishMission(model.MissionStateAborted)
}

// CompleteMission marks the active mission as finished normally
func (s *Service) CompleteMission() error {
	return s.finishMission(model.MissionStateCompleted)
}

func (s *Service) finishMission(state model.MissionState) error {
	s.mu.Lock()
	if s.mission == nil || !s.mission.State.IsActive() {
		s.mu.Unlock()
		return fmt.Errorf("no mission in progress")
	}

	s.mission.State = state
	s.mission.EndedAt = s.clock()
	snapshot := *s.mission
	s.mu.Unlock()

	s.log.Info().
		Str("mission", snapshot.ID).
		Str("state", state.String()).
		Dur("duration", snapshot.Duration()).
		Msg("mission finished")
	s.notifyMission(&snapshot)
	return nil
}

// KillDrone shuts a drone down for the rest of the session. When the last
// live drone is killed any running mission is aborted.
func (s *Service) KillDrone(name string) error {
	s.mu.Lock()
	drone, exists := s.drones[normalizeName(name)]
	if !exists {
		s.mu.Unlock()
		return fmt.Errorf("drone not found: %s", name)
	}
	if drone.Link.IsKilled() {
		s.mu.Unlock()
		return fmt.Errorf("drone already killed: %s", drone.Name)
	}

	drone.Link = model.LinkStatusKilled
	drone.GPSActive = false
	snapshot := *drone
	abortMission := s.mission != nil && s.mission.State.IsActive() && !s.anyLiveLocked()
	s.mu.Unlock()

	s.log.Warn().Str("drone", snapshot.Name).Msg("drone killed")
	s.notifyUpdate(&snapshot)

	if abortMission {
		return s.AbortMission()
	}
	return nil
}

// notifyUpdate calls the drone update callback if set
func (s *Service) notifyUpdate(drone *model.Drone) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(drone)
	}
}

// notifyMission calls the mission callback if set
func (s *Service) notifyMission(mission *model.Mission) {
	s.mu.RLock()
	callback := s.onMission
	s.mu.RUnlock()

	if callback != nil {
		callback(mission)
	}
}

// normalizeName returns the registry key for a drone name
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

package fleet

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/projectmanas/manas-planner/internal/model"
)

func newTestService() *Service {
	return NewService(zerolog.Nop())
}

func TestNewService(t *testing.T) {
	service := newTestService()

	if len(service.drones) != 0 {
		t.Errorf("Expected empty drone map, got %d items", len(service.drones))
	}

	if _, active := service.CurrentMission(); active {
		t.Error("Expected no active mission on a fresh service")
	}
}

func TestRegisterDrone(t *testing.T) {
	service := newTestService()

	drone, err := service.RegisterDrone("Freyja", "assets/freyja.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if drone.Name != "Freyja" {
		t.Errorf("Expected name 'Freyja', got '%s'", drone.Name)
	}

	if drone.Link != model.LinkStatusOffline {
		t.Errorf("Expected new drone to be Offline, got %s", drone.Link)
	}

	// Duplicate registration is case-insensitive
	_, err = service.RegisterDrone("  freyja ", "")
	if err == nil {
		t.Error("Expected error for duplicate drone name, got nil")
	}

	// Empty names are rejected
	_, err = service.RegisterDrone("   ", "")
	if err == nil {
		t.Error("Expected error for empty drone name, got nil")
	}
}

func TestGetDrone(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Cleo", "")

	drone, exists := service.GetDrone("cleo")
	if !exists {
		t.Fatal("Expected case-insensitive lookup to find drone")
	}
	if drone.Name != "Cleo" {
		t.Errorf("Expected name 'Cleo', got '%s'", drone.Name)
	}

	_, exists = service.GetDrone("unknown")
	if exists {
		t.Error("Expected lookup of unknown drone to fail")
	}
}

func TestGetAllDrones_Order(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")
	service.RegisterDrone("Cleo", "")

	drones := service.GetAllDrones()
	if len(drones) != 2 {
		t.Fatalf("Expected 2 drones, got %d", len(drones))
	}
	if drones[0].Name != "Freyja" || drones[1].Name != "Cleo" {
		t.Errorf("Expected registration order [Freyja Cleo], got [%s %s]", drones[0].Name, drones[1].Name)
	}
}

func TestSetLink(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")

	if err := service.SetLink("freyja", model.LinkStatusLive); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !service.AnyLive() {
		t.Error("Expected AnyLive to be true with one live drone")
	}

	// Dropping the link also drops GPS
	service.SetGPSActive("freyja", true)
	if err := service.SetLink("freyja", model.LinkStatusOffline); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	drone, _ := service.GetDrone("freyja")
	if drone.GPSActive {
		t.Error("Expected GPS to be inactive after link went offline")
	}

	if err := service.SetLink("unknown", model.LinkStatusLive); err == nil {
		t.Error("Expected error for unknown drone, got nil")
	}
}

func TestUpdatePosition_GPSGating(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")
	service.SetLink("Freyja", model.LinkStatusLive)

	// Fix arrives while GPS is inactive: tracked but not visible
	if err := service.UpdatePosition("Freyja", 13.35, 74.79, 40); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	drone, _ := service.GetDrone("Freyja")
	if drone.Position.Valid {
		t.Error("Expected position to stay invalid while GPS is inactive")
	}

	// Same fix with GPS active becomes visible
	service.SetGPSActive("Freyja", true)
	if err := service.UpdatePosition("Freyja", 13.35, 74.79, 40); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	drone, _ = service.GetDrone("Freyja")
	if !drone.Position.Valid {
		t.Fatal("Expected position to be recorded while GPS is active")
	}
	if drone.Position.Latitude != 13.35 || drone.Position.AltitudeM != 40 {
		t.Errorf("Unexpected recorded fix: %+v", drone.Position)
	}

	if err := service.UpdatePosition("unknown", 0, 0, 0); err == nil {
		t.Error("Expected error for unknown drone, got nil")
	}
}

func TestUpdatePosition_CallbackOnlyWhenAccepted(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Cleo", "")
	service.SetLink("Cleo", model.LinkStatusLive)

	var updates int
	service.SetUpdateCallback(func(*model.Drone) { updates++ })

	service.UpdatePosition("Cleo", 1, 2, 3) // GPS inactive, no callback
	if updates != 0 {
		t.Errorf("Expected no update callback for gated fix, got %d", updates)
	}

	service.SetGPSActive("Cleo", true) // one callback for GPS change
	service.UpdatePosition("Cleo", 1, 2, 3)
	if updates != 2 {
		t.Errorf("Expected 2 callbacks (gps change + accepted fix), got %d", updates)
	}
}

func TestStartMission(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")

	// No live drone
	if _, err := service.StartMission(); err == nil {
		t.Error("Expected error starting mission with no live drone, got nil")
	}

	service.SetLink("Freyja", model.LinkStatusLive)

	mission, err := service.StartMission()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if mission.ID == "" {
		t.Error("Expected mission to have an ID")
	}
	if mission.State != model.MissionStateRunning {
		t.Errorf("Expected mission state Running, got %s", mission.State)
	}

	// Only one mission at a time
	if _, err := service.StartMission(); err == nil {
		t.Error("Expected error starting a second mission, got nil")
	}

	// Mission IDs are unique across runs
	service.AbortMission()
	second, err := service.StartMission()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.ID == mission.ID {
		t.Error("Expected a fresh mission ID for the second run")
	}
}

func TestAbortAndCompleteMission(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")
	service.SetLink("Freyja", model.LinkStatusLive)

	var last *model.Mission
	service.SetMissionCallback(func(mission *model.Mission) { last = mission })

	if err := service.AbortMission(); err == nil {
		t.Error("Expected error aborting without a mission, got nil")
	}

	service.StartMission()
	if err := service.AbortMission(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if last.State != model.MissionStateAborted {
		t.Errorf("Expected state Aborted, got %s", last.State)
	}
	if last.EndedAt.IsZero() {
		t.Error("Expected EndedAt to be set on abort")
	}

	service.StartMission()
	if err := service.CompleteMission(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if last.State != model.MissionStateCompleted {
		t.Errorf("Expected state Completed, got %s", last.State)
	}
}

func TestKillDrone(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")
	service.RegisterDrone("Cleo", "")
	service.SetLink("Freyja", model.LinkStatusLive)
	service.SetLink("Cleo", model.LinkStatusLive)

	service.StartMission()

	if err := service.KillDrone("Freyja"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	drone, _ := service.GetDrone("Freyja")
	if !drone.Link.IsKilled() {
		t.Errorf("Expected drone to be killed, got %s", drone.Link)
	}
	if drone.GPSActive {
		t.Error("Expected killed drone to lose GPS")
	}

	// Mission keeps running while Cleo is live
	if _, active := service.CurrentMission(); !active {
		t.Error("Expected mission to keep running while a drone is live")
	}

	// A killed drone rejects further commands
	if err := service.KillDrone("Freyja"); err == nil {
		t.Error("Expected error killing an already killed drone, got nil")
	}
	if err := service.SetLink("Freyja", model.LinkStatusLive); err == nil {
		t.Error("Expected error reviving a killed drone, got nil")
	}
	if err := service.UpdatePosition("Freyja", 1, 2, 3); err == nil {
		t.Error("Expected error updating a killed drone, got nil")
	}

	// Killing the last live drone aborts the mission
	if err := service.KillDrone("Cleo"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, active := service.CurrentMission(); active {
		t.Error("Expected mission aborted after last kill")
	}

	if err := service.KillDrone("unknown"); err == nil {
		t.Error("Expected error for unknown drone, got nil")
	}
}

func TestDroneSnapshots(t *testing.T) {
	service := newTestService()
	service.RegisterDrone("Freyja", "")

	// Mutating a returned drone must not leak into the registry
	drone, _ := service.GetDrone("Freyja")
	drone.Link = model.LinkStatusKilled
	drone.Name = "Impostor"

	fresh, _ := service.GetDrone("Freyja")
	if fresh.Link != model.LinkStatusOffline || fresh.Name != "Freyja" {
		t.Errorf("Registry state changed through a returned drone: %+v", fresh)
	}

	all := service.GetAllDrones()
	all[0].GPSActive = true
	fresh, _ = service.GetDrone("Freyja")
	if fresh.GPSActive {
		t.Error("Registry state changed through GetAllDrones result")
	}

	// Each callback carries the state at notification time
	var seen []*model.Drone
	service.SetUpdateCallback(func(d *model.Drone) { seen = append(seen, d) })

	service.SetLink("Freyja", model.LinkStatusLive)
	service.SetGPSActive("Freyja", true)

	if len(seen) != 2 {
		t.Fatalf("Expected 2 update callbacks, got %d", len(seen))
	}
	if seen[0].GPSActive {
		t.Error("Expected first notification to predate the GPS change")
	}
	if !seen[1].GPSActive {
		t.Error("Expected second notification to carry the GPS change")
	}
}

package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/projectmanas/manas-planner/internal/fleet"
	"github.com/projectmanas/manas-planner/internal/logging"
	"github.com/projectmanas/manas-planner/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.projectmanas.manas-planner"
	AppName = "Manas Planner"

	WindowWidth  = 1200
	WindowHeight = 700
)

func main() {
	log, err := logging.NewWithFile(zerolog.InfoLevel)
	if err != nil {
		log.Warn().Err(err).Msg("file logging unavailable, console only")
	}
	log.Info().Str("version", version).Msg("planner starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply planner theme
	myApp.Settings().SetTheme(ui.NewPlannerTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize the fleet registry with the two fleet vehicles
	fleetSvc := fleet.NewService(log)
	for _, name := range []string{"Freyja", "Cleo"} {
		if _, err := fleetSvc.RegisterDrone(name, ui.DroneImagePath(name)); err != nil {
			log.Error().Err(err).Str("drone", name).Msg("failed to register drone")
		}
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, fleetSvc, log)

	// Show and run; blocks until the window is closed
	myWindow.ShowAndRun()

	// Abort a mission left running at shutdown so the log ends cleanly
	if _, active := fleetSvc.CurrentMission(); active {
		if err := fleetSvc.AbortMission(); err != nil {
			log.Error().Err(err).Msg("failed to abort mission at shutdown")
		}
	}
	log.Info().Msg("planner closed")
}

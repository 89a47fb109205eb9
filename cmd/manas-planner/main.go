package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/projectmanas/manas-planner/internal/fleet"
	"github.com/projectmanas/manas-planner/internal/logging"
	"github.com/projectmanas/manas-planner/internal/ui"
)

func main() {
	log := logging.NewConsole(zerolog.InfoLevel)

	// Create new Fyne app
	myApp := app.NewWithID("com.projectmanas.manas-planner")
	myApp.Settings().SetTheme(ui.NewPlannerTheme())
	myWindow := myApp.NewWindow("Manas Planner")
	myWindow.Resize(fyne.NewSize(1200, 700))

	fleetSvc := fleet.NewService(log)
	fleetSvc.RegisterDrone("Freyja", ui.DroneImagePath("Freyja"))
	fleetSvc.RegisterDrone("Cleo", ui.DroneImagePath("Cleo"))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, fleetSvc, log)

	myWindow.ShowAndRun()
}

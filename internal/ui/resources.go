package ui

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/projectmanas/manas-planner/internal/platform"
)

// LoadLogoResource loads the header logo from the assets directory.
// Callers fall back to LogoFallbackText when no logo file ships with
// the build.
func LoadLogoResource() (fyne.Resource, error) {
	path := platform.FindAsset(LogoAssetNames...)
	if path == "" {
		return nil, fmt.Errorf("no logo asset found")
	}
	return fyne.LoadResourceFromPath(path)
}

// DroneImagePath returns the image path for a drone, preferring a
// per-drone file and falling back to the generic vehicle image. An empty
// result means the card renders its text placeholder instead.
func DroneImagePath(droneName string) string {
	return platform.FindAsset(droneName+".png", DroneFallbackAsset)
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/projectmanas/manas-planner/internal/config"
	"github.com/projectmanas/manas-planner/internal/model"
)

// DroneCard is the sidebar status card for a single drone: name, image,
// status pill, telemetry tiles, and GPS badge
type DroneCard struct {
	widget.BaseWidget

	drone        *model.Drone
	settings     *config.Settings
	localization *Localization

	// UI components
	nameLabel      *widget.Label
	statusLabel    *widget.Label
	latCaption     *widget.Label
	lonCaption     *widget.Label
	altCaption     *widget.Label
	updatedCaption *widget.Label
	latValue       *widget.Label
	lonValue       *widget.Label
	altValue       *widget.Label
	updatedValue   *widget.Label
	gpsLabel       *widget.Label

	content *fyne.Container
}

// NewDroneCard creates a new drone status card
func NewDroneCard(drone *model.Drone, settings *config.Settings, localization *Localization) *DroneCard {
	dc := &DroneCard{
		drone:        drone,
		settings:     settings,
		localization: localization,
	}
	dc.ExtendBaseWidget(dc)
	dc.createUI()
	dc.updateFromDrone()
	return dc
}

// UpdateDrone updates the card with new drone state
func (dc *DroneCard) UpdateDrone(drone *model.Drone) {
	if drone == nil {
		return
	}
	dc.drone = drone
	dc.updateFromDrone()
	dc.Refresh()
}

// createUI creates the UI components
func (dc *DroneCard) createUI() {
	dc.nameLabel = widget.NewLabel("")
	dc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	dc.nameLabel.Alignment = fyne.TextAlignCenter

	dc.statusLabel = widget.NewLabel("")
	dc.statusLabel.Alignment = fyne.TextAlignCenter

	dc.gpsLabel = widget.NewLabel("")
	dc.gpsLabel.Alignment = fyne.TextAlignCenter

	dc.latCaption = newTileCaption()
	dc.lonCaption = newTileCaption()
	dc.altCaption = newTileCaption()
	dc.updatedCaption = newTileCaption()

	dc.latValue = newTileValue()
	dc.lonValue = newTileValue()
	dc.altValue = newTileValue()
	dc.updatedValue = newTileValue()

	tiles := container.NewGridWithColumns(2,
		newTile(dc.latCaption, dc.latValue),
		newTile(dc.lonCaption, dc.lonValue),
		newTile(dc.altCaption, dc.altValue),
		newTile(dc.updatedCaption, dc.updatedValue),
	)

	body := container.NewVBox(
		dc.nameLabel,
		dc.createImage(),
		dc.statusLabel,
		tiles,
		dc.gpsLabel,
	)

	// Dark panel with an orange outline
	frame := canvas.NewRectangle(ColorPanel)
	frame.StrokeColor = ColorAccent
	frame.StrokeWidth = 2
	frame.CornerRadius = 14

	dc.content = container.NewStack(frame, container.NewPadded(body))
}

// createImage returns the vehicle image, or the text placeholder when no
// image file ships with the build
func (dc *DroneCard) createImage() fyne.CanvasObject {
	if dc.drone != nil && dc.drone.ImagePath != "" {
		image := canvas.NewImageFromFile(dc.drone.ImagePath)
		image.FillMode = canvas.ImageFillContain
		image.SetMinSize(fyne.NewSize(CardImageSize, CardImageSize))
		return image
	}

	placeholder := widget.NewLabel(DronePlaceholderText)
	placeholder.Alignment = fyne.TextAlignCenter
	return placeholder
}

// updateFromDrone updates UI components based on drone state and the
// current language
func (dc *DroneCard) updateFromDrone() {
	if dc.drone == nil {
		return
	}

	dc.nameLabel.SetText(dc.drone.Name)

	dc.statusLabel.SetText(dc.statusText())
	if dc.drone.Link.IsLive() {
		dc.statusLabel.Importance = widget.SuccessImportance
	} else {
		dc.statusLabel.Importance = widget.DangerImportance
	}

	dc.latCaption.SetText(dc.localization.GetText(KeyLatitude))
	dc.lonCaption.SetText(dc.localization.GetText(KeyLongitude))
	dc.altCaption.SetText(dc.localization.GetText(KeyAltitude))
	dc.updatedCaption.SetText(dc.localization.GetText(KeyUpdated))

	precision := config.DefaultCoordinatePrecision
	unit := config.DefaultAltitudeUnit
	if dc.settings != nil {
		precision = dc.settings.GetCoordinatePrecision()
		unit = dc.settings.GetAltitudeUnit()
	}

	position := dc.drone.Position
	dc.latValue.SetText(position.FormatLatitude(precision))
	dc.lonValue.SetText(position.FormatLongitude(precision))
	dc.altValue.SetText(position.FormatAltitude(unit))
	dc.updatedValue.SetText(position.FormatUpdated())

	dc.gpsLabel.SetText(dc.gpsText())
	switch {
	case dc.drone.GPSActive:
		dc.gpsLabel.Importance = widget.SuccessImportance
	case dc.drone.Position.Valid || dc.drone.Link.IsLive():
		dc.gpsLabel.Importance = widget.DangerImportance
	default:
		dc.gpsLabel.Importance = widget.MediumImportance
	}
}

// statusText builds the status pill text in the current language
func (dc *DroneCard) statusText() string {
	stateKey := KeyStateOffline
	switch dc.drone.Link {
	case model.LinkStatusLive:
		stateKey = KeyStateLive
	case model.LinkStatusKilled:
		stateKey = KeyStateKilled
	}
	return fmt.Sprintf("%s: %s", dc.localization.GetText(KeyStatus), dc.localization.GetText(stateKey))
}

// gpsText builds the GPS badge text in the current language. GPS state is
// reported as unknown until the link has been live at least once.
func (dc *DroneCard) gpsText() string {
	prefix := dc.localization.GetText(KeyGPS)
	if !dc.drone.GPSKnown() {
		return fmt.Sprintf("%s: %s", prefix, DashPlaceholder)
	}
	if dc.drone.GPSActive {
		return fmt.Sprintf("%s: %s", prefix, dc.localization.GetText(KeyGPSActive))
	}
	return fmt.Sprintf("%s: %s", prefix, dc.localization.GetText(KeyGPSInactive))
}

// CreateRenderer creates the widget renderer
func (dc *DroneCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dc.content)
}

// MinSize keeps cards readable inside the fixed-width sidebar
func (dc *DroneCard) MinSize() fyne.Size {
	size := dc.BaseWidget.MinSize()
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	return size
}

// newTile builds one key/value telemetry tile
func newTile(caption, value *widget.Label) fyne.CanvasObject {
	return container.NewVBox(caption, value)
}

// newTileCaption builds the caption label of a telemetry tile
func newTileCaption() *widget.Label {
	caption := widget.NewLabel("")
	caption.TextStyle = fyne.TextStyle{Bold: true}
	caption.Importance = widget.HighImportance
	return caption
}

// newTileValue builds the value label of a telemetry tile
func newTileValue() *widget.Label {
	value := widget.NewLabel(DashPlaceholder)
	value.TextStyle = fyne.TextStyle{Monospace: true}
	value.Truncation = fyne.TextTruncateEllipsis
	return value
}

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/projectmanas/manas-planner/internal/config"
	"github.com/projectmanas/manas-planner/internal/fleet"
	"github.com/projectmanas/manas-planner/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	fleetSvc     fleet.Tracker
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	// Header
	globalStatus *canvas.Text

	// Map placeholder
	mapLabel *canvas.Text

	// Sidebar
	cards       map[string]*DroneCard // keyed by lower-case drone name
	killButtons map[string]*widget.Button
	missionBtn  *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fleetSvc fleet.Tracker, log zerolog.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		fleetSvc:     fleetSvc,
		settings:     settings,
		localization: localization,
		log:          log,
		cards:        make(map[string]*DroneCard),
		killButtons:  make(map[string]*widget.Button),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Fleet state changes drive every visible update
	fleetSvc.SetUpdateCallback(ui.onDroneUpdate)
	fleetSvc.SetMissionCallback(ui.onMissionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	header := ui.buildHeader()
	body := ui.buildBody()

	content := container.NewBorder(
		header, // top
		nil,    // bottom
		nil,    // left
		nil,    // right
		body,   // center
	)

	ui.window.SetContent(content)

	ui.log.Info().Int("drones", len(ui.cards)).Msg("ui assembled")
}

// buildHeader builds the top bar: logo on the left, global fleet status
// on the right, orange rule underneath
func (ui *RootUI) buildHeader() fyne.CanvasObject {
	var logoObj fyne.CanvasObject
	logo, err := LoadLogoResource()
	if err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.FillMode = canvas.ImageFillContain
		logoImage.SetMinSize(fyne.NewSize(3*LogoHeight, LogoHeight))
		logoObj = logoImage
	} else {
		// Fallback to text if logo loading fails
		fallback := widget.NewLabel(LogoFallbackText)
		fallback.TextStyle = fyne.TextStyle{Bold: true}
		logoObj = fallback
	}

	ui.globalStatus = canvas.NewText("", ColorOffline)
	ui.globalStatus.TextSize = GlobalStatusSize
	ui.globalStatus.TextStyle = fyne.TextStyle{Bold: true}
	ui.globalStatus.Alignment = fyne.TextAlignTrailing
	ui.refreshGlobalStatus()

	bar := container.NewBorder(nil, nil, logoObj, container.NewCenter(ui.globalStatus))

	heightSpacer := canvas.NewRectangle(color.Transparent)
	heightSpacer.SetMinSize(fyne.NewSize(0, HeaderHeight))

	return container.NewVBox(
		container.NewStack(heightSpacer, container.NewPadded(bar)),
		widget.NewSeparator(),
	)
}

// buildBody builds the map placeholder and the drone sidebar
func (ui *RootUI) buildBody() fyne.CanvasObject {
	// Map placeholder: static and inert, reserved for a future map widget
	ui.mapLabel = canvas.NewText(ui.localization.GetText(KeyMap), ColorMutedAccent)
	ui.mapLabel.TextSize = MapLabelTextSize
	ui.mapLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.mapLabel.Alignment = fyne.TextAlignCenter

	mapBackground := canvas.NewRectangle(ColorPanel)
	mapArea := container.NewStack(mapBackground, container.NewCenter(ui.mapLabel))

	return container.NewBorder(nil, nil, nil, ui.buildSidebar(), mapArea)
}

// buildSidebar builds the drone cards and mission controls in a
// fixed-width column
func (ui *RootUI) buildSidebar() fyne.CanvasObject {
	drones := ui.fleetSvc.GetAllDrones()

	items := make([]fyne.CanvasObject, 0, len(drones)+3)
	killRow := make([]fyne.CanvasObject, 0, len(drones))

	for _, drone := range drones {
		key := strings.ToLower(drone.Name)

		card := NewDroneCard(drone, ui.settings, ui.localization)
		ui.cards[key] = card
		items = append(items, card)

		name := drone.Name // capture for closure
		killBtn := widget.NewButton(ui.killButtonText(name), func() {
			ui.onKillClick(name)
		})
		killBtn.Importance = widget.DangerImportance
		ui.killButtons[key] = killBtn
		killRow = append(killRow, killBtn)
	}

	ui.missionBtn = widget.NewButton("", ui.onMissionClick)
	ui.missionBtn.Importance = widget.HighImportance
	ui.refreshMissionButton()

	missionSpacer := canvas.NewRectangle(color.Transparent)
	missionSpacer.SetMinSize(fyne.NewSize(0, MissionButtonHeight))

	items = append(items,
		layout.NewSpacer(),
		container.NewStack(missionSpacer, ui.missionBtn),
		container.NewGridWithColumns(len(killRow), killRow...),
	)

	widthSpacer := canvas.NewRectangle(color.Transparent)
	widthSpacer.SetMinSize(fyne.NewSize(SidebarWidth, 0))

	return container.NewStack(widthSpacer, container.NewPadded(container.NewVBox(items...)))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.mapLabel.Text = ui.localization.GetText(KeyMap)
	ui.mapLabel.Refresh()

	ui.refreshGlobalStatus()
	ui.refreshMissionButton()

	for key, killBtn := range ui.killButtons {
		if drone, exists := ui.fleetSvc.GetDrone(key); exists {
			killBtn.SetText(ui.killButtonText(drone.Name))
		}
	}

	// Cards carry localized captions and badges
	for key, card := range ui.cards {
		if drone, exists := ui.fleetSvc.GetDrone(key); exists {
			card.UpdateDrone(drone)
		}
	}
}

// refreshGlobalStatus reflects whether any drone link is live
func (ui *RootUI) refreshGlobalStatus() {
	if ui.fleetSvc.AnyLive() {
		ui.globalStatus.Color = ColorLive
		ui.globalStatus.Text = ui.localization.GetText(KeyStatusLive)
	} else {
		ui.globalStatus.Color = ColorOffline
		ui.globalStatus.Text = ui.localization.GetText(KeyStatusOffline)
	}
	ui.globalStatus.Refresh()
}

// refreshMissionButton toggles between start and abort
func (ui *RootUI) refreshMissionButton() {
	if _, active := ui.fleetSvc.CurrentMission(); active {
		ui.missionBtn.SetText(IconAbort + " " + ui.localization.GetText(KeyAbortMission))
	} else {
		ui.missionBtn.SetText(IconMission + " " + ui.localization.GetText(KeyStartMission))
	}
}

// killButtonText builds the kill button caption for a drone
func (ui *RootUI) killButtonText(droneName string) string {
	return fmt.Sprintf("%s %s %s", IconKill, ui.localization.GetText(KeyKill), droneName)
}

// onMissionClick starts a mission, or aborts the running one
func (ui *RootUI) onMissionClick() {
	if _, active := ui.fleetSvc.CurrentMission(); active {
		if err := ui.fleetSvc.AbortMission(); err != nil {
			ui.showError(err)
			return
		}
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyMissionAborted)), ui.window.Canvas())
		return
	}

	mission, err := ui.fleetSvc.StartMission()
	if err != nil {
		ui.showError(err)
		return
	}

	ui.log.Info().Str("mission", mission.ID).Msg("mission started from ui")
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyMissionStarted)), ui.window.Canvas())
}

// onKillClick shuts a drone down, confirming first when configured
func (ui *RootUI) onKillClick(droneName string) {
	if !ui.settings.GetConfirmKill() {
		ui.killDrone(droneName)
		return
	}

	message := fmt.Sprintf(ui.localization.GetText(KeyConfirmKillMessage), droneName)
	dialog.ShowConfirm(ui.localization.GetText(KeyConfirmKillTitle), message, func(confirmed bool) {
		if confirmed {
			ui.killDrone(droneName)
		}
	}, ui.window)
}

func (ui *RootUI) killDrone(droneName string) {
	if err := ui.fleetSvc.KillDrone(droneName); err != nil {
		ui.showError(err)
		return
	}

	if killBtn, exists := ui.killButtons[strings.ToLower(droneName)]; exists {
		killBtn.Disable()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved re-renders everything the dialog can change: language,
// altitude unit, and coordinate precision
func (ui *RootUI) onSettingsSaved() {
	ui.refreshUITexts()
	ui.createMenu()

	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
}

// onDroneUpdate handles drone state changes from the fleet registry.
// The registry may report from any goroutine; all rendering goes through
// the UI thread.
func (ui *RootUI) onDroneUpdate(drone *model.Drone) {
	if drone == nil {
		return
	}

	fyne.Do(func() {
		if card, exists := ui.cards[strings.ToLower(drone.Name)]; exists {
			card.UpdateDrone(drone)
		}
		ui.refreshGlobalStatus()
	})
}

// onMissionUpdate handles mission state changes from the fleet registry
func (ui *RootUI) onMissionUpdate(mission *model.Mission) {
	ui.log.Info().
		Str("mission", mission.ID).
		Str("state", mission.State.String()).
		Msg("mission state changed")

	fyne.Do(ui.refreshMissionButton)
}

// showError surfaces a fleet error as a popup
func (ui *RootUI) showError(err error) {
	ui.log.Error().Err(err).Msg("fleet command failed")
	widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
}

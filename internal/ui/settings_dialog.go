package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/projectmanas/manas-planner/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 460
	SettingsDialogHeight = 380
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect   *widget.Select
	unitSelect       *widget.Select
	precisionEntry   *widget.Entry
	confirmKillCheck *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Altitude unit selection
	sd.unitSelect = widget.NewSelect(sd.settings.GetAltitudeUnitOptions(), nil)

	// Coordinate precision
	sd.precisionEntry = widget.NewEntry()
	sd.precisionEntry.SetPlaceHolder("0-8")

	// Kill confirmation
	sd.confirmKillCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmKillSetting), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyAltitudeUnit)+":"),
		sd.unitSelect,

		widget.NewLabel(sd.localization.GetText(KeyCoordinatePrecision)+":"),
		sd.precisionEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyFleetSettings)),
		widget.NewSeparator(),

		sd.confirmKillCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.unitSelect.SetSelected(sd.settings.GetAltitudeUnit())
	sd.precisionEntry.SetText(strconv.Itoa(sd.settings.GetCoordinatePrecision()))
	sd.confirmKillCheck.SetChecked(sd.settings.GetConfirmKill())
}

// onConfirm persists the dialog values
func (sd *SettingsDialog) onConfirm(save bool) {
	if !save {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.localization.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.unitSelect.Selected != "" {
		sd.settings.SetAltitudeUnit(sd.unitSelect.Selected)
	}

	// Invalid precision input keeps the previous value
	if precision, err := strconv.Atoi(sd.precisionEntry.Text); err == nil {
		sd.settings.SetCoordinatePrecision(precision)
	}

	sd.settings.SetConfirmKill(sd.confirmKillCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

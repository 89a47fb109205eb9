package config

import (
	"fyne.io/fyne/v2"

	"github.com/projectmanas/manas-planner/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage            = "app_language"
	KeyAltitudeUnit        = "altitude_unit"
	KeyCoordinatePrecision = "coordinate_precision"
	KeyConfirmKill         = "confirm_kill"
)

// Default values
const (
	DefaultLanguage            = "system"
	DefaultAltitudeUnit        = model.AltitudeUnitMeters
	DefaultCoordinatePrecision = 6
	DefaultConfirmKill         = true

	MinCoordinatePrecision = 0
	MaxCoordinatePrecision = 8
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAltitudeUnit returns the unit used for altitude display
func (s *Settings) GetAltitudeUnit() string {
	unit := s.app.Preferences().String(KeyAltitudeUnit)
	if unit == "" {
		s.SetAltitudeUnit(DefaultAltitudeUnit)
		return DefaultAltitudeUnit
	}
	return unit
}

// SetAltitudeUnit sets the unit used for altitude display
func (s *Settings) SetAltitudeUnit(unit string) {
	if unit != model.AltitudeUnitMeters && unit != model.AltitudeUnitFeet {
		unit = DefaultAltitudeUnit
	}
	s.app.Preferences().SetString(KeyAltitudeUnit, unit)
}

// GetCoordinatePrecision returns the number of decimals for lat/lon display
func (s *Settings) GetCoordinatePrecision() int {
	value := s.app.Preferences().IntWithFallback(KeyCoordinatePrecision, -1)
	if value < MinCoordinatePrecision || value > MaxCoordinatePrecision {
		s.SetCoordinatePrecision(DefaultCoordinatePrecision)
		return DefaultCoordinatePrecision
	}
	return value
}

// SetCoordinatePrecision sets the number of decimals for lat/lon display
func (s *Settings) SetCoordinatePrecision(precision int) {
	if precision < MinCoordinatePrecision {
		precision = MinCoordinatePrecision
	}
	if precision > MaxCoordinatePrecision {
		precision = MaxCoordinatePrecision
	}
	s.app.Preferences().SetInt(KeyCoordinatePrecision, precision)
}

// GetConfirmKill returns whether kill commands require confirmation
func (s *Settings) GetConfirmKill() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmKill, DefaultConfirmKill)
}

// SetConfirmKill sets whether kill commands require confirmation
func (s *Settings) SetConfirmKill(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmKill, confirm)
}

// GetAltitudeUnitOptions returns available altitude unit options
func (s *Settings) GetAltitudeUnitOptions() []string {
	return []string{model.AltitudeUnitMeters, model.AltitudeUnitFeet}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"hi":     "हिन्दी",
	}
}

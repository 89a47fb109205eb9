package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/projectmanas/manas-planner/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAltitudeUnit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	unit := settings.GetAltitudeUnit()
	if unit != DefaultAltitudeUnit {
		t.Errorf("Expected default altitude unit %s, got %s", DefaultAltitudeUnit, unit)
	}

	// Test setting custom value
	settings.SetAltitudeUnit(model.AltitudeUnitFeet)

	retrievedUnit := settings.GetAltitudeUnit()
	if retrievedUnit != model.AltitudeUnitFeet {
		t.Errorf("Expected altitude unit %s, got %s", model.AltitudeUnitFeet, retrievedUnit)
	}

	// Unknown units fall back to the default
	settings.SetAltitudeUnit("furlongs")
	if settings.GetAltitudeUnit() != DefaultAltitudeUnit {
		t.Errorf("Unknown unit should fall back to %s, got %s", DefaultAltitudeUnit, settings.GetAltitudeUnit())
	}
}

func TestCoordinatePrecision(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	precision := settings.GetCoordinatePrecision()
	if precision != DefaultCoordinatePrecision {
		t.Errorf("Expected default precision %d, got %d", DefaultCoordinatePrecision, precision)
	}

	// Test setting custom value
	settings.SetCoordinatePrecision(4)

	retrievedPrecision := settings.GetCoordinatePrecision()
	if retrievedPrecision != 4 {
		t.Errorf("Expected precision 4, got %d", retrievedPrecision)
	}

	// Test boundary values
	settings.SetCoordinatePrecision(-2) // Should be clamped to 0
	if settings.GetCoordinatePrecision() != MinCoordinatePrecision {
		t.Errorf("Precision should be clamped to minimum %d", MinCoordinatePrecision)
	}

	settings.SetCoordinatePrecision(20) // Should be clamped to 8
	if settings.GetCoordinatePrecision() != MaxCoordinatePrecision {
		t.Errorf("Precision should be clamped to maximum %d", MaxCoordinatePrecision)
	}
}

func TestConfirmKill(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetConfirmKill() != DefaultConfirmKill {
		t.Errorf("Expected default confirm-kill %v", DefaultConfirmKill)
	}

	// Test setting custom value
	settings.SetConfirmKill(false)
	if settings.GetConfirmKill() {
		t.Error("Expected confirm-kill to be false after disabling")
	}
}

func TestGetAltitudeUnitOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetAltitudeUnitOptions()
	expectedOptions := []string{model.AltitudeUnitMeters, model.AltitudeUnitFeet}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d unit options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Unit option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "hi"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/projectmanas/manas-planner/internal/config"
	"github.com/projectmanas/manas-planner/internal/model"
)

func TestDroneCard_LocalizedBadges(t *testing.T) {
	settings := config.NewSettings(test.NewApp())

	tests := []struct {
		name           string
		language       string
		drone          model.Drone
		expectedStatus string
		expectedGPS    string
	}{
		{"never seen", "en", model.Drone{Name: "Freyja"}, "Status: Offline", "GPS: --"},
		{"live with gps", "en", model.Drone{Name: "Freyja", Link: model.LinkStatusLive, GPSActive: true}, "Status: Live", "GPS: Active"},
		{"live without gps", "en", model.Drone{Name: "Freyja", Link: model.LinkStatusLive}, "Status: Live", "GPS: Inactive"},
		{"killed", "en", model.Drone{Name: "Freyja", Link: model.LinkStatusKilled}, "Status: Killed", "GPS: Inactive"},
		{"live hindi", "hi", model.Drone{Name: "Freyja", Link: model.LinkStatusLive, GPSActive: true}, "स्थिति: लाइव", "GPS: सक्रिय"},
		{"never seen hindi", "hi", model.Drone{Name: "Freyja"}, "स्थिति: ऑफ़लाइन", "GPS: --"},
	}

	for _, tc := range tests {
		localization := NewLocalization()
		localization.SetLanguage(tc.language)

		drone := tc.drone
		card := NewDroneCard(&drone, settings, localization)

		if card.statusLabel.Text != tc.expectedStatus {
			t.Errorf("%s: status pill = %q, expected %q", tc.name, card.statusLabel.Text, tc.expectedStatus)
		}
		if card.gpsLabel.Text != tc.expectedGPS {
			t.Errorf("%s: gps badge = %q, expected %q", tc.name, card.gpsLabel.Text, tc.expectedGPS)
		}
	}
}

func TestDroneCard_CaptionsFollowLanguage(t *testing.T) {
	settings := config.NewSettings(test.NewApp())
	localization := NewLocalization()

	drone := model.Drone{Name: "Cleo"}
	card := NewDroneCard(&drone, settings, localization)
	if card.latCaption.Text != "Latitude" {
		t.Errorf("Expected English caption, got %q", card.latCaption.Text)
	}

	localization.SetLanguage("hi")
	card.UpdateDrone(&drone)
	if card.latCaption.Text != "अक्षांश" {
		t.Errorf("Expected Hindi caption after language change, got %q", card.latCaption.Text)
	}
	if card.updatedCaption.Text != "अद्यतन" {
		t.Errorf("Expected Hindi caption after language change, got %q", card.updatedCaption.Text)
	}
}

package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyFile                = "file"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeyMap                 = "map"
	KeyStatusLive          = "status_live"
	KeyStatusOffline       = "status_offline"
	KeyStatus              = "status"
	KeyStateLive           = "state_live"
	KeyStateOffline        = "state_offline"
	KeyStateKilled         = "state_killed"
	KeyGPS                 = "gps"
	KeyGPSActive           = "gps_active"
	KeyGPSInactive         = "gps_inactive"
	KeyLatitude            = "latitude"
	KeyLongitude           = "longitude"
	KeyAltitude            = "altitude"
	KeyUpdated             = "updated"
	KeyStartMission        = "start_mission"
	KeyAbortMission        = "abort_mission"
	KeyKill                = "kill"
	KeyConfirmKillTitle    = "confirm_kill_title"
	KeyConfirmKillMessage  = "confirm_kill_message"
	KeyMissionStarted      = "mission_started"
	KeyMissionAborted      = "mission_aborted"
	KeyAltitudeUnit        = "altitude_unit"
	KeyCoordinatePrecision = "coordinate_precision"
	KeyConfirmKillSetting  = "confirm_kill_setting"
	KeyInterfaceSettings   = "interface_settings"
	KeyFleetSettings       = "fleet_settings"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"hi": "हिन्दी",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Manas Planner",
		KeyFile:                "File",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeyMap:                 "Map",
		KeyStatusLive:          "Status: Live",
		KeyStatusOffline:       "Status: Offline",
		KeyStatus:              "Status",
		KeyStateLive:           "Live",
		KeyStateOffline:        "Offline",
		KeyStateKilled:         "Killed",
		KeyGPS:                 "GPS",
		KeyGPSActive:           "Active",
		KeyGPSInactive:         "Inactive",
		KeyLatitude:            "Latitude",
		KeyLongitude:           "Longitude",
		KeyAltitude:            "Altitude",
		KeyUpdated:             "Updated",
		KeyStartMission:        "Start Mission",
		KeyAbortMission:        "Abort Mission",
		KeyKill:                "Kill",
		KeyConfirmKillTitle:    "Kill drone",
		KeyConfirmKillMessage:  "Shut down %s? The drone stays down for the rest of the session.",
		KeyMissionStarted:      "Mission started",
		KeyMissionAborted:      "Mission aborted",
		KeyAltitudeUnit:        "Altitude Unit",
		KeyCoordinatePrecision: "Coordinate Precision",
		KeyConfirmKillSetting:  "Confirm before kill",
		KeyInterfaceSettings:   "Interface Settings",
		KeyFleetSettings:       "Fleet Settings",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved",
	}

	// Hindi texts
	l.texts["hi"] = map[string]string{
		KeyAppTitle:            "मानस प्लानर",
		KeyFile:                "फ़ाइल",
		KeySettings:            "सेटिंग्स",
		KeyLanguage:            "भाषा",
		KeyMap:                 "नक्शा",
		KeyStatusLive:          "स्थिति: लाइव",
		KeyStatusOffline:       "स्थिति: ऑफ़लाइन",
		KeyStatus:              "स्थिति",
		KeyStateLive:           "लाइव",
		KeyStateOffline:        "ऑफ़लाइन",
		KeyStateKilled:         "बंद",
		KeyGPS:                 "GPS",
		KeyGPSActive:           "सक्रिय",
		KeyGPSInactive:         "निष्क्रिय",
		KeyLatitude:            "अक्षांश",
		KeyLongitude:           "देशांतर",
		KeyAltitude:            "ऊँचाई",
		KeyUpdated:             "अद्यतन",
		KeyStartMission:        "मिशन शुरू करें",
		KeyAbortMission:        "मिशन रोकें",
		KeyKill:                "बंद करें",
		KeyConfirmKillTitle:    "ड्रोन बंद करें",
		KeyConfirmKillMessage:  "%s को बंद करें? यह सत्र के बाकी समय के लिए बंद रहेगा।",
		KeyMissionStarted:      "मिशन शुरू हुआ",
		KeyMissionAborted:      "मिशन रोका गया",
		KeyAltitudeUnit:        "ऊँचाई की इकाई",
		KeyCoordinatePrecision: "निर्देशांक परिशुद्धता",
		KeyConfirmKillSetting:  "बंद करने से पहले पुष्टि करें",
		KeyInterfaceSettings:   "इंटरफ़ेस सेटिंग्स",
		KeyFleetSettings:       "फ्लीट सेटिंग्स",
		KeySave:                "सहेजें",
		KeyCancel:              "रद्द करें",
		KeySettingsSaved:       "सेटिंग्स सहेजी गईं",
	}
}

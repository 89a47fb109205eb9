package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconMission  = "▶"
	IconAbort    = "⏹"
	IconKill     = "✖"
)

// Text fragments
const (
	DashPlaceholder      = "--"
	DronePlaceholderText = "[drone]"
	LogoFallbackText     = "PROJECT MANAS"
)

// Layout sizing
const (
	SidebarWidth  float32 = 280
	HeaderHeight  float32 = 70
	LogoHeight    float32 = 50
	CardImageSize float32 = 86

	MapLabelTextSize    float32 = 48
	GlobalStatusSize    float32 = 18
	CardMinWidth        float32 = 244
	MissionButtonHeight float32 = 56
)

// Asset file names, preferred name first
var (
	LogoAssetNames = []string{"manas-full-white.png", "logo.png"}

	DroneFallbackAsset = "drone.png"
)

package constants

const (
	// Preference keys
	SettingUsername     = "username"
	SettingAvatarName   = "avatarName"
	SettingThemeIndex   = "themeIndex"
	SettingLanguageCode = "languageCode"
	SettingTextSize     = "textSize"
	SettingFirstLaunch  = "firstLaunchTimestamp"
	SettingTimezone     = "timezone"

	// SettingStickyPrefix prefixes event-driven achievement flags, e.g. "achievement.11.unlocked"
	SettingStickyPrefix = "achievement."
	SettingStickySuffix = ".unlocked"

	// Default preference values
	DefaultUsername     = "Alex Johnson"
	DefaultAvatarName   = ""
	DefaultThemeIndex   = 0
	DefaultLanguageCode = "en"
	DefaultTextSize     = "Normal"
	DefaultTimezone     = "Local" // Use system local timezone by default

	// ThemeCount is the number of selectable themes (indices 0..ThemeCount-1)
	ThemeCount = 5
)

// TextSizes lists the accepted text-size labels.
var TextSizes = []string{"Small", "Normal", "Large"}

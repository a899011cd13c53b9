package constants

const (
	AppName           = "mindping"
	DefaultConfigPath = "~/.config/mindping/mindping.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is used for calendar selection (YYYY-MM)
	MonthFormat = "2006-01"

	// SinceFormat renders the "Reflecting since" month
	SinceFormat = "Jan 2006"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mindping-"

	// JSON provider file names
	ReflectionsFileName = "reflections.json"
	PreferencesFileName = "preferences.json"

	// BadgeLimit is the number of distinct emoji shown on a calendar cell
	BadgeLimit = 3

	// LongFormMinChars is the text length that counts as a long-form entry
	LongFormMinChars = 120
)

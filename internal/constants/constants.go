package constants

const (
	AppName           = "moodlit"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/moodlit"
	DefaultStorePath  = DefaultConfigDir + "/moodlit.db"
	DefaultConfigFile = "config.yaml"
	EnvPrefix         = "MOODLIT"

	// Storage keys. The names match the keys written by earlier releases,
	// so existing stores keep loading.
	KeyHistory   = "moodDiaryHistory"
	KeyTodayMood = "todayMood"
	KeyTodayNote = "todayNote"

	// Store kinds
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
	StoreDiskv  = "diskv"

	// Log constants
	LogDirName      = "logs"
	LogFileName     = "moodlit.log"
	LogMaxSizeMB    = 10
	LogMaxBackups   = 3
	LogMaxAgeDays   = 28
	DiskvCacheBytes = 1024 * 1024
)

package constants

const (
	AppName           = "habitmini"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/habitmini/habitmini.db"

	// StateKey is the fixed namespace key the persisted snapshot is stored
	// under, in every storage provider.
	StateKey = "habitmini:state"

	// Keyring account names
	KeyringInitDataUser = "telegram-init-data"
	KeyringDSNUser      = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitmini-"

	// Environment variables consulted when flags are not set
	EnvAPIURL      = "HABITMINI_API_URL"
	EnvInitData    = "HABITMINI_INIT_DATA"
	EnvPostgresDSN = "HABITMINI_POSTGRES_DSN"
)

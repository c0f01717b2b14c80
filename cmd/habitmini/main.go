package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"habitmini/internal/api"
	"habitmini/internal/cli"
	"habitmini/internal/constants"
	"habitmini/internal/errors"
	"habitmini/internal/keyring"
	"habitmini/internal/logger"
	"habitmini/internal/reminder"
	"habitmini/internal/storage"
	"habitmini/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path." type:"path" default:"~/.config/habitmini/habitmini.db"`
	APIURL  string `help:"Backend base URL." env:"HABITMINI_API_URL" default:"http://localhost:8000"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd `cmd:"" help:"Initialize habitmini storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Sync  cli.SyncCmd `cmd:"" help:"Pull habits and profile from the backend."`
	Habit struct {
		Add      cli.HabitAddCmd      `cmd:"" help:"Add a new habit."`
		List     cli.HabitListCmd     `cmd:"" help:"List all habits."`
		Complete cli.HabitCompleteCmd `cmd:"" help:"Mark a habit done for today."`
		Skip     cli.HabitSkipCmd     `cmd:"" help:"Skip a habit for today."`
		Edit     cli.HabitEditCmd     `cmd:"" help:"Edit an existing habit."`
		Delete   cli.HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show today's progress and streaks."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the weekly breakdown."`
	Summary  cli.SummaryCmd  `cmd:"" help:"Fetch the AI weekly summary."`
	Analyze  cli.AnalyzeCmd  `cmd:"" help:"Analyze skip patterns."`
	Advice   cli.AdviceCmd   `cmd:"" help:"Get a piece of AI advice."`
	Chat     cli.ChatCmd     `cmd:"" help:"Chat with the habit coach."`
	Suggest  cli.SuggestCmd  `cmd:"" help:"Ask the AI to suggest a habit."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change user settings."`
	Auth     cli.AuthCmd     `cmd:"" help:"Manage the Telegram auth token."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage state backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" help:"Inspect the persisted state."`
}

func main() {
	// Local .env is optional
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("habitmini"),
		kong.Description("Habit tracker companion for the Telegram Mini App backend"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		logger.Warn("File logging unavailable", "error", err)
	}

	appCtx := &cli.Context{
		Storage:  selectStorage(CLI.Config),
		API:      api.New(CLI.APIURL, loadInitData()),
		Reminder: reminder.New(),
	}
	appCtx.Store = store.New(appCtx.Storage)
	appCtx.Store.OnPersistError(func(err error) {
		logger.Warn("Failed to persist snapshot", "error", err)
	})

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// selectStorage picks the provider: a Postgres DSN (keyring or env) wins,
// then the state file extension decides between JSON and SQLite.
func selectStorage(configPath string) storage.Provider {
	if dsn, err := keyring.GetConnectionString(); err == nil && dsn != "" {
		return storage.NewPostgresStore(dsn)
	}
	if dsn := os.Getenv(constants.EnvPostgresDSN); dsn != "" {
		return storage.NewPostgresStore(dsn)
	}
	if strings.HasSuffix(configPath, ".json") {
		return storage.NewJSONStore(configPath)
	}
	return storage.NewSQLiteStore(configPath)
}

// loadInitData resolves the Telegram init-data token: keyring first, env as
// fallback. An empty token just means unauthenticated requests.
func loadInitData() string {
	if token, err := keyring.GetInitData(); err == nil {
		return token
	}
	return os.Getenv(constants.EnvInitData)
}

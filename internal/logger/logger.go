// Package logger wraps charmbracelet/log with file rotation. Logs go to a
// rotating file next to the storage path so TUI output stays clean.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"habitmini/internal/constants"
)

var Logger *log.Logger

type Config struct {
	Debug     bool
	ConfigDir string
}

// Init sets up the global logger. Safe to call before storage is loaded;
// falls back to stderr when the log file cannot be opened.
func Init(cfg Config) error {
	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          constants.AppName,
	}

	if cfg.ConfigDir == "" {
		Logger = log.NewWithOptions(os.Stderr, opts)
		return nil
	}

	logDir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(logDir, 0700); err != nil {
		Logger = log.NewWithOptions(os.Stderr, opts)
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.AppName+".log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	Logger = log.NewWithOptions(writer, opts)
	return nil
}

func ensure() *log.Logger {
	if Logger == nil {
		Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          constants.AppName,
		})
	}
	return Logger
}

func Debug(msg interface{}, keyvals ...interface{}) {
	ensure().Debug(msg, keyvals...)
}

func Info(msg interface{}, keyvals ...interface{}) {
	ensure().Info(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	ensure().Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	ensure().Error(msg, keyvals...)
}

func Fatal(msg interface{}, keyvals ...interface{}) {
	ensure().Fatal(msg, keyvals...)
}

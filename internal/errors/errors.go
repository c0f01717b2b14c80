// Package errors renders user-facing CLI errors consistently and mirrors
// fatal ones to the log file.
package errors

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"habitmini/internal/logger"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Format prints an error to stderr in the standard style.
func Format(err error) {
	fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
}

// Formatf prints a formatted error message to stderr.
func Formatf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errStyle.Render("error:"), fmt.Sprintf(format, args...))
}

// Fatal prints the error, logs it, and exits.
func Fatal(err error) {
	logger.Error("fatal error", "err", err)
	Format(err)
	os.Exit(1)
}

// Fatalf prints a formatted error, logs it, and exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("fatal error", "err", msg)
	Formatf("%s", msg)
	os.Exit(1)
}

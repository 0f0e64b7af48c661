// Package output provides styled terminal output shared by all
// inkwell commands.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// Writer is where all output goes; tests may redirect it.
	Writer io.Writer = os.Stdout
)

// SetVerbose enables verbose output. Called by the CLI when --verbose
// is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message.
func Success(msg string) {
	fmt.Fprintln(Writer, successStyle.Render("✓ "+msg))
}

// Error prints a failure that needs user attention.
func Error(msg string) {
	fmt.Fprintln(Writer, errorStyle.Render("✗ "+msg))
}

// Warn prints a non-fatal problem, such as a note kept during cleanup.
func Warn(msg string) {
	fmt.Fprintln(Writer, warnStyle.Render("! "+msg))
}

// Info prints a status update or explanation.
func Info(msg string) {
	fmt.Fprintln(Writer, infoStyle.Render(msg))
}

// Step prints an indented sub-item.
func Step(msg string) {
	fmt.Fprintln(Writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message when verbose mode is on.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(Writer, stepStyle.Render("· "+msg))
	}
}

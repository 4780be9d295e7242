// Package styles provides the color palette and text styles for ouisync's
// terminal output. All visual constants live here so command code can
// reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	White = lipgloss.Color("#E2E2E2")
	Gray  = lipgloss.Color("#888888")
	Muted = lipgloss.Color("#555555")

	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

// --- Text styles ---

var (
	// Success is used for final result lines.
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Warn is used for non-fatal notices, like a default source falling
	// through to its fallback.
	Warn = lipgloss.NewStyle().
		Foreground(Yellow)

	// MutedText is for hints and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

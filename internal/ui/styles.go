// Package ui holds the colour palette, icons and shared lipgloss styles used
// by the interactive screens and the plain CLI output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lakshaymaurya-felt/projclean/internal/core"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.Color("#8b5cf6")
	ColorSecondary = lipgloss.Color("#06b6d4")
	ColorCoral     = lipgloss.Color("#f97316")
	ColorSuccess   = lipgloss.Color("#22c55e")
	ColorWarning   = lipgloss.Color("#eab308")
	ColorError     = lipgloss.Color("#ef4444")
	ColorText      = lipgloss.Color("#e5e7eb")
	ColorTextDim   = lipgloss.Color("#9ca3af")
	ColorMuted     = lipgloss.Color("#6b7280")
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconFolder   = "▸ "
	IconBullet   = "•"
	IconBlock    = "▌"
	IconPipe     = "│"
	IconDiamond  = "◆"
	IconChevron  = "›"
	IconCheck    = "✓"
	IconError    = "✗"
	IconWarning  = "⚠"
	IconSelected = "[x]"
	IconEmpty    = "[ ]"
)

func init() {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ─── Shared styles ───────────────────────────────────────────────────────────

// HintBarStyle renders the key hint line at the bottom of a screen.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// TagWarningStyle renders a small inverted warning badge.
func TagWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#111827")).
		Background(ColorWarning).
		Bold(true)
}

// TitleStyle renders screen titles.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorCoral)
}

// FormatSize is core.FormatSize, re-exported for view code.
func FormatSize(bytes int64) string {
	return core.FormatSize(bytes)
}

// ─── Inline helpers ──────────────────────────────────────────────────────────

func Muted(s string) string   { return lipgloss.NewStyle().Foreground(ColorMuted).Render(s) }
func Bold(s string) string    { return lipgloss.NewStyle().Bold(true).Render(s) }
func Success(s string) string { return lipgloss.NewStyle().Foreground(ColorSuccess).Render(s) }
func Warning(s string) string { return lipgloss.NewStyle().Foreground(ColorWarning).Render(s) }
func Error(s string) string   { return lipgloss.NewStyle().Foreground(ColorError).Render(s) }

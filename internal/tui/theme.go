package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorCrust    lipgloss.Color = "#11111b"
)

// Marker colours of the map pins.
const (
	colorMarkerRing lipgloss.Color = "#BD9847"
	colorMarkerCore lipgloss.Color = "#D5B36A"
)

// ---------------------------------------------------------------------------
// Semantic aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPeach
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay0
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	gridStyle    = lipgloss.NewStyle().Foreground(colorSurface1)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	currentStyle = lipgloss.NewStyle().Background(colorSurface0)
	currentBar   = lipgloss.NewStyle().Foreground(colorMarkerRing).Bold(true)

	markerDefaultStyle  = lipgloss.NewStyle().Foreground(colorMarkerCore)
	markerSelectedStyle = lipgloss.NewStyle().Foreground(colorCrust).Background(colorMarkerRing).Bold(true)
	markerHoverStyle    = lipgloss.NewStyle().Foreground(colorMarkerRing).Bold(true)
	clusterStyle        = lipgloss.NewStyle().Foreground(colorCrust).Background(colorBlue).Bold(true)
	readyStyle          = lipgloss.NewStyle().Foreground(colorSuccess)
)

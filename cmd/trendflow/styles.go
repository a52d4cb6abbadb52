package main

import "github.com/charmbracelet/lipgloss"

// TrendFlow brand palette.
var (
	colorPrimary = lipgloss.Color("#a78bfa") // violet
	colorAccent  = lipgloss.Color("#f472b6") // pink
	colorSuccess = lipgloss.Color("#4ade80")
	colorWarning = lipgloss.Color("#facc15")
	colorDanger  = lipgloss.Color("#f87171")
	colorMuted   = lipgloss.Color("#6b7280")
	colorBorder  = lipgloss.Color("#374151")
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	inputStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	userLabelStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Background(colorBorder).
				Foreground(lipgloss.Color("#e5e7eb")).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

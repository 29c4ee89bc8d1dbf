package main

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#00AAAA")
	errorColor  = lipgloss.Color("#A40000")
	okColor     = lipgloss.Color("#00AA00")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	rowStyle = lipgloss.NewStyle().
			Foreground(okColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

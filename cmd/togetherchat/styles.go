package main

import "github.com/charmbracelet/lipgloss"

var (
	colorMuted  = lipgloss.Color("#656d76")
	colorAccent = lipgloss.Color("#0969da")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dimStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	modelStyle = lipgloss.NewStyle().Bold(true)
)

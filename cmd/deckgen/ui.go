package main

import "github.com/charmbracelet/lipgloss"

// Terminal color palette.
var (
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorCyan  = lipgloss.Color("36")  // values and counts
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// successMark returns the styled success icon.
func successMark() string { return styleSuccess.Render(iconSuccess) }

// errorMark returns the styled failure icon.
func errorMark() string { return styleError.Render(iconError) }

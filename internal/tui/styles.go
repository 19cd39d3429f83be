// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kako-jun/gitp/internal/progress"
)

// Terminal palette indices.
const (
	colourGreen  = "10"
	colourRed    = "9"
	colourYellow = "11"
	colourGrey   = "8"
	colourCyan   = "14"
	colourWhite  = "15"
)

// Styles contains all the styling for the TUI.
type Styles struct {
	Title   lipgloss.Style
	Box     lipgloss.Style
	Pending lipgloss.Style
	Running lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
	Message lipgloss.Style
	Label   lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colourCyan)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colourGrey)).
			Padding(0, 1),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color(colourGrey)),
		Running: lipgloss.NewStyle().Foreground(lipgloss.Color(colourYellow)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(colourGreen)),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color(colourRed)),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color(colourWhite)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(colourWhite)),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color(colourGrey)),
	}
}

// For returns the style of a status.
func (s *Styles) For(st progress.Status) lipgloss.Style {
	switch st {
	case progress.Running:
		return s.Running
	case progress.Success:
		return s.Success
	case progress.Failed:
		return s.Failed
	default:
		return s.Pending
	}
}

func statusColour(st progress.Status) string {
	switch st {
	case progress.Running:
		return colourYellow
	case progress.Success:
		return colourGreen
	case progress.Failed:
		return colourRed
	default:
		return colourGrey
	}
}

// File: indicator.go
// Title: Activity Indicator
// Description: Spinner widget backed by the bubbles spinner model.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IndicatorStyle selects the spinner glyphs
type IndicatorStyle int

const (
	IndicatorMedium IndicatorStyle = iota
	IndicatorLarge
)

// ActivityIndicator shows ongoing work. It plugs into a bubbletea model:
// Start returns the first tick command, Update advances the animation and
// Render draws the current frame.
type ActivityIndicator struct {
	View
	Style            IndicatorStyle
	Color            Color
	HidesWhenStopped bool

	animating bool
	spinner   spinner.Model
}

// NewActivityIndicator creates a stopped indicator. Typical arguments are
// IndicatorMedium, SystemBlue and true.
func NewActivityIndicator(style IndicatorStyle, color Color, hidesWhenStopped bool) *ActivityIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	if style == IndicatorLarge {
		s.Spinner = spinner.Globe
	}
	s.Style = lipgloss.NewStyle().Foreground(color.Terminal())

	a := &ActivityIndicator{
		Style:            style,
		Color:            color,
		HidesWhenStopped: hidesWhenStopped,
		spinner:          s,
	}
	a.init()
	a.Hidden = hidesWhenStopped
	return a
}

// Start begins animating and returns the command producing the first tick
func (a *ActivityIndicator) Start() tea.Cmd {
	a.animating = true
	a.Hidden = false
	return a.spinner.Tick
}

// Stop ends the animation. The indicator hides if HidesWhenStopped is set.
func (a *ActivityIndicator) Stop() {
	a.animating = false
	if a.HidesWhenStopped {
		a.Hidden = true
	}
}

// IsAnimating reports whether the indicator is running
func (a *ActivityIndicator) IsAnimating() bool {
	return a.animating
}

// Update advances the spinner on its tick messages while animating
func (a *ActivityIndicator) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok || !a.animating {
		return nil
	}
	var cmd tea.Cmd
	a.spinner, cmd = a.spinner.Update(msg)
	return cmd
}

// Tick produces the next spinner tick message
func (a *ActivityIndicator) Tick() tea.Msg {
	return a.spinner.Tick()
}

// Render returns the current frame, or nothing when hidden
func (a *ActivityIndicator) Render() string {
	if a.Hidden {
		return ""
	}
	return a.spinner.View()
}

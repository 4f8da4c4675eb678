// File: render.go
// Title: Terminal Rendering
// Description: lipgloss rendering of views, widgets and alerts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Alert rendering

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws itself as terminal text
type Renderer interface {
	Render() string
}

var (
	alertTitleStyle  = lipgloss.NewStyle().Bold(true)
	alertBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	alertActionStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// style translates layer attributes into a lipgloss style
func (v *View) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if !v.Background.IsClear() {
		s = s.Background(v.Background.Terminal())
	}
	if v.Border.Width > 0 {
		border := lipgloss.NormalBorder()
		if v.CornerRadius > 0 {
			border = lipgloss.RoundedBorder()
		}
		if v.Border.Width >= 3 {
			border = lipgloss.ThickBorder()
		}
		s = s.Border(border).BorderForeground(v.Border.Color.Terminal())
	}
	return s
}

// Render draws the bare view box
func (v *View) Render() string {
	if v.Hidden {
		return ""
	}
	return v.style().Render("")
}

// Render draws the title on the button background
func (b *Button) Render() string {
	if b.Hidden {
		return ""
	}
	return b.style().Padding(0, 1).Render(b.Title)
}

// Render draws a placeholder naming the image
func (iv *ImageView) Render() string {
	if iv.Hidden {
		return ""
	}
	label := "[no image]"
	if iv.Image != nil {
		label = "[image: " + iv.Image.Name + "]"
	}
	return iv.style().Render(label)
}

// Render draws the switch state in its tint
func (s *Switch) Render() string {
	if s.Hidden {
		return ""
	}
	if s.IsOn {
		return s.style().Foreground(s.OnTintColor.Terminal()).Render("(● on)")
	}
	return s.style().Foreground(s.TintColor.Terminal()).Render("(○ off)")
}

// Render joins the arranged views that can render themselves
func (s *StackView) Render() string {
	if s.Hidden {
		return ""
	}
	gap := int(s.Spacing)
	var parts []string
	for _, v := range s.ArrangedSubviews() {
		r, ok := v.(Renderer)
		if !ok || v.AsView().Hidden {
			continue
		}
		if len(parts) > 0 && gap > 0 {
			if s.Axis == AxisHorizontal {
				parts = append(parts, strings.Repeat(" ", gap))
			} else {
				parts = append(parts, strings.Repeat("\n", gap-1))
			}
		}
		parts = append(parts, r.Render())
	}
	if len(parts) == 0 {
		return ""
	}
	if s.Axis == AxisHorizontal {
		return s.style().Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return s.style().Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Render draws the alert box with its actions
func (a *Alert) Render() string {
	actions := make([]string, 0, len(a.Actions))
	for _, act := range a.Actions {
		actions = append(actions, alertActionStyle.Render("[ "+act.Title+" ]"))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		alertTitleStyle.Render(a.Title),
		a.Message,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, actions...),
	)
	return alertBoxStyle.Render(body)
}

// File: layout.go
// Title: Layout Helpers
// Description: Constraint builders pinning a view to its superview.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: CenterInSuperview returns nil without superview

package ui

import (
	"github.com/msto63/gopress/core/log"
)

func logger() *log.Logger {
	return log.GetDefault().WithName("ui")
}

// prepare returns the superview of v and hands positioning to constraints.
// Without a superview nothing changes and nil is returned.
func prepare(v ViewLike, op string) (*View, *View) {
	view := v.AsView()
	parent := view.Superview()
	if parent == nil {
		logger().Warn("view has no superview", log.Fields{
			"operation": op,
			"view":      view.ID().String(),
		})
		return view, nil
	}
	view.TranslatesAutoresizingMaskIntoConstraints = false
	return view, parent
}

func install(parent *View, constraints ...*Constraint) []*Constraint {
	for _, c := range constraints {
		parent.AddConstraint(c)
	}
	return constraints
}

// EdgesEqualToSuperview pins all four edges of v inside its superview with
// padding. Top and bottom follow the superview safe area.
func EdgesEqualToSuperview(v ViewLike, padding float64) []*Constraint {
	view, parent := prepare(v, "EdgesEqualToSuperview")
	if parent == nil {
		return nil
	}
	return install(parent,
		view.LeadingAnchor().ConstraintEqualTo(parent.LeadingAnchor(), padding),
		view.TrailingAnchor().ConstraintEqualTo(parent.TrailingAnchor(), -padding),
		view.TopAnchor().ConstraintEqualTo(parent.SafeAreaTopAnchor(), padding),
		view.BottomAnchor().ConstraintEqualTo(parent.SafeAreaBottomAnchor(), -padding),
	)
}

// HorizontalEdgesEqualToSuperview pins leading and trailing with padding and
// top and bottom to the safe area without padding
func HorizontalEdgesEqualToSuperview(v ViewLike, padding float64) []*Constraint {
	view, parent := prepare(v, "HorizontalEdgesEqualToSuperview")
	if parent == nil {
		return nil
	}
	return install(parent,
		view.LeadingAnchor().ConstraintEqualTo(parent.LeadingAnchor(), padding),
		view.TrailingAnchor().ConstraintEqualTo(parent.TrailingAnchor(), -padding),
		view.TopAnchor().ConstraintEqualTo(parent.SafeAreaTopAnchor(), 0),
		view.BottomAnchor().ConstraintEqualTo(parent.SafeAreaBottomAnchor(), 0),
	)
}

// HeightEqualToWidth makes v square
func HeightEqualToWidth(v ViewLike) *Constraint {
	view, parent := prepare(v, "HeightEqualToWidth")
	if parent == nil {
		return nil
	}
	return install(parent, view.HeightAnchor().ConstraintEqualTo(view.WidthAnchor(), 0))[0]
}

// HeightEqualTo fixes the height of v
func HeightEqualTo(v ViewLike, constant float64) *Constraint {
	view, parent := prepare(v, "HeightEqualTo")
	if parent == nil {
		return nil
	}
	return install(parent, view.HeightAnchor().ConstraintEqualToConstant(constant))[0]
}

// CenterInSuperview centers v on both axes with the given priority
func CenterInSuperview(v ViewLike, priority Priority) []*Constraint {
	view, parent := prepare(v, "CenterInSuperview")
	if parent == nil {
		return nil
	}
	x := view.CenterXAnchor().ConstraintEqualTo(parent.CenterXAnchor(), 0)
	y := view.CenterYAnchor().ConstraintEqualTo(parent.CenterYAnchor(), 0)
	x.Priority = priority
	y.Priority = priority
	return install(parent, x, y)
}

// CenterYEqualTo aligns the vertical center of v with anchor
func CenterYEqualTo(v ViewLike, anchor Anchor) *Constraint {
	view, parent := prepare(v, "CenterYEqualTo")
	if parent == nil {
		return nil
	}
	return install(parent, view.CenterYAnchor().ConstraintEqualTo(anchor, 0))[0]
}

// File: view.go
// Title: Views
// Description: View hierarchy, layer attributes and the ViewLike interface.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Border and shadow helpers

package ui

import (
	"slices"

	"github.com/google/uuid"
)

// Size is a width and height pair
type Size struct {
	Width, Height float64
}

// Rect is an origin plus size
type Rect struct {
	X, Y float64
	Size
}

// Border describes the layer border
type Border struct {
	Width float64
	Color Color
}

// Shadow describes the layer shadow
type Shadow struct {
	Color   Color
	Opacity float32
	Offset  Size
	Radius  float64
}

// ViewLike is implemented by every widget embedding View
type ViewLike interface {
	AsView() *View
}

// View is a node of the widget tree
type View struct {
	id         uuid.UUID
	superview  *View
	subviews   []*View
	owned      []*Constraint
	safeInsets Insets

	// TranslatesAutoresizingMaskIntoConstraints is true until a layout
	// helper or Configure takes over positioning
	TranslatesAutoresizingMaskIntoConstraints bool

	Frame         Rect
	Background    Color
	Border        Border
	Shadow        Shadow
	CornerRadius  float64
	ClipsToBounds bool
	MasksToBounds bool
	Hidden        bool
}

// Insets are edge distances
type Insets struct {
	Top, Leading, Bottom, Trailing float64
}

// NewView creates an empty view
func NewView() *View {
	v := &View{}
	v.init()
	return v
}

func (v *View) init() {
	if v.id == uuid.Nil {
		v.id = uuid.New()
		v.TranslatesAutoresizingMaskIntoConstraints = true
	}
}

// AsView implements ViewLike
func (v *View) AsView() *View {
	return v
}

// ID identifies the view
func (v *View) ID() uuid.UUID {
	return v.id
}

// Superview returns the parent or nil
func (v *View) Superview() *View {
	return v.superview
}

// Subviews returns a copy of the children in insertion order
func (v *View) Subviews() []*View {
	return slices.Clone(v.subviews)
}

// AddSubview moves child under v. Adding a view to itself or to one of its
// descendants is ignored.
func (v *View) AddSubview(child ViewLike) {
	if child == nil {
		return
	}
	c := child.AsView()
	if c == nil || c == v || c.isAncestorOf(v) {
		return
	}
	c.RemoveFromSuperview()
	c.superview = v
	v.subviews = append(v.subviews, c)
}

// RemoveFromSuperview detaches v and deactivates the constraints its former
// superview owned that reference v
func (v *View) RemoveFromSuperview() {
	parent := v.superview
	if parent == nil {
		return
	}
	parent.subviews = slices.DeleteFunc(parent.subviews, func(s *View) bool { return s == v })
	parent.owned = slices.DeleteFunc(parent.owned, func(c *Constraint) bool {
		if c.references(v) {
			c.active = false
			return true
		}
		return false
	})
	v.superview = nil
}

func (v *View) isAncestorOf(other *View) bool {
	for p := other.superview; p != nil; p = p.superview {
		if p == v {
			return true
		}
	}
	return false
}

// SetSafeAreaInsets sets the insets reported by the safe-area anchors
func (v *View) SetSafeAreaInsets(in Insets) {
	v.safeInsets = in
}

// SafeAreaInsets returns the safe-area insets
func (v *View) SafeAreaInsets() Insets {
	return v.safeInsets
}

// AddConstraint stores c on v and activates it
func (v *View) AddConstraint(c *Constraint) {
	if c == nil {
		return
	}
	c.active = true
	v.owned = append(v.owned, c)
}

// Constraints returns the constraints stored on v
func (v *View) Constraints() []*Constraint {
	return slices.Clone(v.owned)
}

// AddBorder sets the layer border
func AddBorder(v ViewLike, width float64, color Color) {
	view := v.AsView()
	view.Border = Border{Width: width, Color: color}
}

// AddShadow sets the layer shadow and disables bounds masking
func AddShadow(v ViewLike, color Color, opacity float32, offset Size, radius float64) {
	view := v.AsView()
	view.Shadow = Shadow{Color: color, Opacity: opacity, Offset: offset, Radius: radius}
	view.MasksToBounds = false
}

// File: constraint.go
// Title: Anchors and Constraints
// Description: Layout anchors, constraint construction and activation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package ui

import "fmt"

// Attribute names the edge or dimension an anchor refers to
type Attribute int

const (
	AttributeLeading Attribute = iota
	AttributeTrailing
	AttributeTop
	AttributeBottom
	AttributeWidth
	AttributeHeight
	AttributeCenterX
	AttributeCenterY
)

var attributeNames = [...]string{"leading", "trailing", "top", "bottom", "width", "height", "centerX", "centerY"}

// String implements fmt.Stringer
func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attributeNames) {
		return fmt.Sprintf("attribute(%d)", int(a))
	}
	return attributeNames[a]
}

// Priority of a constraint, 1 to 1000
type Priority float32

const (
	PriorityRequired       Priority = 1000
	PriorityDefaultHigh    Priority = 750
	PriorityDefaultLow     Priority = 250
	PriorityFittingSizeLow Priority = 50
)

// Anchor is one attribute of a view, optionally of its safe area
type Anchor struct {
	View      *View
	Attribute Attribute
	SafeArea  bool
}

// String implements fmt.Stringer
func (a Anchor) String() string {
	if a.View == nil {
		return "nil." + a.Attribute.String()
	}
	prefix := ""
	if a.SafeArea {
		prefix = "safeArea."
	}
	return fmt.Sprintf("%s.%s%s", a.View.id.String()[:8], prefix, a.Attribute)
}

func (v *View) anchor(attr Attribute) Anchor { return Anchor{View: v, Attribute: attr} }

// LeadingAnchor is the leading (left) edge of v
func (v *View) LeadingAnchor() Anchor { return v.anchor(AttributeLeading) }

// TrailingAnchor is the trailing (right) edge of v
func (v *View) TrailingAnchor() Anchor { return v.anchor(AttributeTrailing) }

// TopAnchor is the top edge of v, ignoring safe-area insets
func (v *View) TopAnchor() Anchor { return v.anchor(AttributeTop) }

// BottomAnchor is the bottom edge of v, ignoring safe-area insets
func (v *View) BottomAnchor() Anchor { return v.anchor(AttributeBottom) }

// WidthAnchor is the width of v
func (v *View) WidthAnchor() Anchor { return v.anchor(AttributeWidth) }

// HeightAnchor is the height of v
func (v *View) HeightAnchor() Anchor { return v.anchor(AttributeHeight) }

// CenterXAnchor is the horizontal center of v
func (v *View) CenterXAnchor() Anchor { return v.anchor(AttributeCenterX) }

// CenterYAnchor is the vertical center of v
func (v *View) CenterYAnchor() Anchor { return v.anchor(AttributeCenterY) }

// SafeAreaTopAnchor is the top edge of the safe-area layout guide
func (v *View) SafeAreaTopAnchor() Anchor {
	return Anchor{View: v, Attribute: AttributeTop, SafeArea: true}
}

// SafeAreaBottomAnchor is the bottom edge of the safe-area layout guide
func (v *View) SafeAreaBottomAnchor() Anchor {
	return Anchor{View: v, Attribute: AttributeBottom, SafeArea: true}
}

// Constraint relates First to Second (or to a constant when Second is nil):
// First = Second * Multiplier + Constant
type Constraint struct {
	First      Anchor
	Second     *Anchor
	Multiplier float64
	Constant   float64
	Priority   Priority
	active     bool
}

// ConstraintEqualTo builds an inactive constraint a = other + constant
func (a Anchor) ConstraintEqualTo(other Anchor, constant float64) *Constraint {
	return &Constraint{
		First:      a,
		Second:     &other,
		Multiplier: 1,
		Constant:   constant,
		Priority:   PriorityRequired,
	}
}

// ConstraintEqualToConstant builds an inactive constraint a = constant
func (a Anchor) ConstraintEqualToConstant(constant float64) *Constraint {
	return &Constraint{
		First:      a,
		Multiplier: 1,
		Constant:   constant,
		Priority:   PriorityRequired,
	}
}

// IsActive reports whether the constraint takes part in layout
func (c *Constraint) IsActive() bool {
	return c.active
}

// SetActive toggles participation in layout
func (c *Constraint) SetActive(active bool) {
	c.active = active
}

func (c *Constraint) references(v *View) bool {
	return c.First.View == v || (c.Second != nil && c.Second.View == v)
}

// String implements fmt.Stringer
func (c *Constraint) String() string {
	if c.Second == nil {
		return fmt.Sprintf("%s == %g @%g", c.First, c.Constant, float32(c.Priority))
	}
	return fmt.Sprintf("%s == %s*%g%+g @%g", c.First, *c.Second, c.Multiplier, c.Constant, float32(c.Priority))
}

// Activate activates every constraint
func Activate(constraints []*Constraint) {
	for _, c := range constraints {
		if c != nil {
			c.active = true
		}
	}
}

// Deactivate deactivates every constraint
func Deactivate(constraints []*Constraint) {
	for _, c := range constraints {
		if c != nil {
			c.active = false
		}
	}
}

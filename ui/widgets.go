// File: widgets.go
// Title: Widget Factories
// Description: Buttons, image views, switches and stack views with their
//              factory defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Stack views

package ui

import "slices"

// Event is a control event
type Event int

const (
	EventTouchUpInside Event = iota
	EventTouchDown
	EventValueChanged
	EventPrimaryActionTriggered
)

// Button is a titled control invoking an action for one event
type Button struct {
	View
	Title  string
	action func()
	event  Event
}

// NewButton creates a button with a title, background and action bound to
// event. The event defaults to EventTouchUpInside.
func NewButton(title string, background Color, action func(), event ...Event) *Button {
	b := &Button{Title: title, action: action, event: EventTouchUpInside}
	b.init()
	b.Background = background
	if len(event) > 0 {
		b.event = event[0]
	}
	return b
}

// Event returns the event the action is bound to
func (b *Button) Event() Event {
	return b.event
}

// Send delivers e and reports whether the action ran
func (b *Button) Send(e Event) bool {
	if e != b.event || b.action == nil || b.Hidden {
		return false
	}
	b.action()
	return true
}

// ContentMode controls how an image fills its view
type ContentMode int

const (
	ContentModeScaleToFill ContentMode = iota
	ContentModeScaleAspectFit
	ContentModeScaleAspectFill
	ContentModeCenter
)

// Image references a named image asset
type Image struct {
	Name string
	Size Size
}

// ImageView displays an image
type ImageView struct {
	View
	Image       *Image
	ContentMode ContentMode
}

// NewImageView creates an image view for the named asset. An empty name
// leaves the image nil. The mode defaults to ContentModeScaleAspectFit.
func NewImageView(imageName string, mode ...ContentMode) *ImageView {
	iv := &ImageView{ContentMode: ContentModeScaleAspectFit}
	iv.init()
	if imageName != "" {
		iv.Image = &Image{Name: imageName}
	}
	if len(mode) > 0 {
		iv.ContentMode = mode[0]
	}
	return iv
}

// Border defaults for NewCircularImageView
var (
	DefaultCircularBorderWidth = 2.0
	DefaultCircularBorderColor = SystemGray
)

// NewCircularImageView creates an aspect-filling image view sized to image,
// clipped to a circle with a border
func NewCircularImageView(image Image, borderWidth float64, borderColor Color) *ImageView {
	iv := &ImageView{Image: &image, ContentMode: ContentModeScaleAspectFill}
	iv.init()
	iv.Frame.Size = image.Size
	iv.ClipsToBounds = true
	iv.CornerRadius = image.Size.Width / 2
	AddBorder(iv, borderWidth, borderColor)
	return iv
}

// Switch is an on/off control
type Switch struct {
	View
	IsOn        bool
	TintColor   Color
	OnTintColor Color
	onChange    func(bool)
}

// NewSwitch creates a switch. Typical colors are SystemBlue and SystemGreen.
func NewSwitch(isOn bool, tint, onTint Color) *Switch {
	s := &Switch{IsOn: isOn, TintColor: tint, OnTintColor: onTint}
	s.init()
	return s
}

// OnChange registers the EventValueChanged handler
func (s *Switch) OnChange(fn func(bool)) {
	s.onChange = fn
}

// Toggle flips the state and notifies the handler
func (s *Switch) Toggle() {
	s.IsOn = !s.IsOn
	if s.onChange != nil {
		s.onChange(s.IsOn)
	}
}

// Axis of a stack view
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// StackView lays out arranged subviews along an axis
type StackView struct {
	View
	Axis     Axis
	Spacing  float64
	arranged []ViewLike
}

// NewStackView creates an empty stack view
func NewStackView(axis Axis) *StackView {
	s := &StackView{Axis: axis}
	s.init()
	return s
}

// AddArrangedSubview appends v to the arranged views and the subviews
func (s *StackView) AddArrangedSubview(v ViewLike) {
	if v == nil {
		return
	}
	s.AddSubview(v)
	s.arranged = append(s.arranged, v)
}

// AddArrangedSubviews appends every view in order
func (s *StackView) AddArrangedSubviews(views ...ViewLike) {
	for _, v := range views {
		s.AddArrangedSubview(v)
	}
}

// ArrangedSubviews returns the arranged views in order. Views removed from
// the stack view since they were arranged are dropped.
func (s *StackView) ArrangedSubviews() []ViewLike {
	out := make([]ViewLike, 0, len(s.arranged))
	for _, v := range s.arranged {
		if v.AsView().Superview() == &s.View {
			out = append(out, v)
		}
	}
	s.arranged = out
	return slices.Clone(out)
}

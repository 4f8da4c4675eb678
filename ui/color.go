// File: color.go
// Title: Colors
// Description: RGBA colors, hex parsing and lipgloss conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is an sRGB color with alpha in [0, 1]
type Color struct {
	R, G, B uint8
	A       float64
}

// System palette
var (
	Clear       = Color{}
	Black       = Color{0x00, 0x00, 0x00, 1}
	White       = Color{0xFF, 0xFF, 0xFF, 1}
	SystemBlue  = Color{0x00, 0x7A, 0xFF, 1}
	SystemGreen = Color{0x34, 0xC7, 0x59, 1}
	SystemGray  = Color{0x8E, 0x8E, 0x93, 1}
	SystemRed   = Color{0xFF, 0x3B, 0x30, 1}
)

// ColorFromHex parses six hex digits, ignoring surrounding whitespace and
// any '#'. Alpha is clamped to [0, 1].
func ColorFromHex(hex string, alpha float64) (Color, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(hex), "#", "")
	if len(s) != 6 {
		return Color{}, false
	}
	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}

	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: alpha,
	}, true
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsClear reports a fully transparent color
func (c Color) IsClear() bool {
	return c.A == 0
}

// Terminal converts the color for lipgloss. Clear maps to no color.
func (c Color) Terminal() lipgloss.TerminalColor {
	if c.IsClear() {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}

// String implements fmt.Stringer
func (c Color) String() string {
	return fmt.Sprintf("%s/%.2f", c.Hex(), c.A)
}

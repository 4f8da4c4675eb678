// File: doc.go
// Title: UI Package Documentation
// Description: Headless widget model with constraint helpers, widget
//              factories, reusable cells and terminal rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial package documentation

/*
Package ui is a headless model of a widget hierarchy.

Views form a tree through AddSubview. Anchors of a view are combined into
Constraints, which are recorded and flagged active but never solved; layout
resolution belongs to whatever engine consumes the model. The helpers in
layout.go return the constraints they activate, or nil when the view has no
superview.

Widgets embed View and are created by factories with sensible defaults:

	button := ui.Configure(ui.NewButton("Save", ui.SystemBlue, save), func(b *ui.Button) {
		b.CornerRadius = 8
	})

Table and collection views hand out reusable cells by identifier. Dequeuing
an unregistered identifier, or a cell of the wrong type, is a programming
error and panics.

Every widget can render itself for a terminal through lipgloss.
*/
package ui

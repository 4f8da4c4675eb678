// File: controller.go
// Title: View Controllers and Application
// Description: Alert presentation and URL opening.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Application.OpenURL

package ui

import (
	"net/url"

	"github.com/msto63/gopress/core/log"
	"github.com/msto63/gopress/net/fetch"
)

// ActionStyle of an alert action
type ActionStyle int

const (
	ActionDefault ActionStyle = iota
	ActionCancel
	ActionDestructive
)

// AlertAction is a button of an alert
type AlertAction struct {
	Title   string
	Style   ActionStyle
	Handler func()
}

// Alert is a modal message with actions
type Alert struct {
	Title   string
	Message string
	Actions []AlertAction
}

// Select runs the handler of the action at index i and reports whether it
// exists
func (a *Alert) Select(i int) bool {
	if i < 0 || i >= len(a.Actions) {
		return false
	}
	if h := a.Actions[i].Handler; h != nil {
		h()
	}
	return true
}

// ViewController owns a root view and presents alerts over it
type ViewController struct {
	Root      *View
	presented *Alert
}

// NewViewController creates a controller with an empty root view
func NewViewController() *ViewController {
	return &ViewController{Root: NewView()}
}

// ShowAlert presents an alert with a single default "OK" action that
// dismisses it
func (vc *ViewController) ShowAlert(title, message string) *Alert {
	alert := &Alert{Title: title, Message: message}
	alert.Actions = []AlertAction{{
		Title: "OK",
		Style: ActionDefault,
		Handler: func() {
			if vc.presented == alert {
				vc.presented = nil
			}
		},
	}}
	vc.presented = alert
	return alert
}

// Presented returns the alert currently shown, or nil
func (vc *ViewController) Presented() *Alert {
	return vc.presented
}

// Application opens URLs through a platform opener
type Application struct {
	Opener func(*url.URL) error
}

// OpenURL validates s and passes it to the opener. It reports false for
// strings without a scheme or that do not parse; opener failures are logged
// and still report true, the request having been handed off.
func (app *Application) OpenURL(s string) bool {
	u, ok := fetch.ValidateOpenURL(s)
	if !ok {
		return false
	}
	if app.Opener != nil {
		if err := app.Opener(u); err != nil {
			logger().WarnWithErr("open url failed", err, log.Field("url", u.String()))
		}
	}
	return true
}

// cmd/toolstate/handlers.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"

	"github.com/mmp/toolstate/actions"
)

// demoHandlers returns handlers for the actions used by the built-in
// toolbars. They just report that they ran through the provided
// function; "editing.simulate" always fails.
func demoHandlers(report func(string)) map[string]actions.Handler {
	say := func(msg string) actions.Handler {
		return func() error {
			report(msg)
			return nil
		}
	}

	return map[string]actions.Handler{
		"tools.select":   say("select tool"),
		"tools.build":    say("build tool"),
		"tools.lighting": say("lighting tool"),
		"tools.debug":    say("debug tool"),

		"selection.objects":  say("selecting objects"),
		"selection.faces":    say("selecting faces"),
		"selection.edges":    say("selecting edges"),
		"selection.vertices": say("selecting vertices"),

		"editing.grid_snap":      say("grid snap toggled"),
		"editing.grid_size":      say("grid size changed"),
		"editing.angle_snap":     say("angle snap toggled"),
		"editing.lock_selection": say("selection lock toggled"),
		"editing.simulate": func() error {
			return errors.New("no scene is loaded")
		},

		"view.lit":       say("lit shading"),
		"view.unlit":     say("unlit shading"),
		"view.wireframe": say("wireframe shading"),
		"view.grid":      say("grid visibility toggled"),
		"view.gizmos":    say("gizmo visibility toggled"),
		"view.help":      say("arrows/tab: move  enter/space: click  e: external  o: override icon  q: quit"),
	}
}

// statusDispatcher runs actions and records their outcome for display.
type statusDispatcher struct {
	actions *actions.Registry
	report  func(string)
}

func (d *statusDispatcher) Dispatch(action string) actions.Outcome {
	outcome := d.actions.Dispatch(action)
	if outcome == actions.NotFound || outcome == actions.Failed {
		d.report(action + ": " + outcome.String())
	}
	return outcome
}

// cmd/toolstate/tui.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/mmp/toolstate/actions"
	"github.com/mmp/toolstate/log"
	"github.com/mmp/toolstate/toolbar"
)

// Action represents the result of handling an event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionClick
	ActionToggleExternal
	ActionToggleOverride
	ActionReload
)

// overrideIcon is the icon shown for options whose icon has been
// overridden with the 'o' key.
const overrideIcon = "Lock"

type item struct {
	toolbar   string
	control   toolbar.Control
	separator bool
}

type row struct {
	name, label string
	items       []item
}

// termRenderer implements toolbar.Renderer by collecting the controls so
// that they can be laid out in the terminal.
type termRenderer struct {
	rows []row
}

func (r *termRenderer) BeginToolbar(name, label string, iconSize int) {
	r.rows = append(r.rows, row{name: name, label: label})
}

func (r *termRenderer) Option(c toolbar.Control) {
	cur := &r.rows[len(r.rows)-1]
	cur.items = append(cur.items, item{toolbar: cur.name, control: c})
}

func (r *termRenderer) Separator() {
	cur := &r.rows[len(r.rows)-1]
	cur.items = append(cur.items, item{toolbar: cur.name, separator: true})
}

func (r *termRenderer) EndToolbar() {}

// controls returns all of the non-separator items in display order.
func (r *termRenderer) controls() []item {
	var c []item
	for _, row := range r.rows {
		for _, it := range row.items {
			if !it.separator {
				c = append(c, it)
			}
		}
	}
	return c
}

// AppState holds the runtime state of the application.
type AppState struct {
	reg     *toolbar.Registry
	actions *actions.Registry
	lg      *log.Logger

	view  termRenderer
	focus int

	status string
}

func (state *AppState) report(s string) {
	state.status = s
}

func (state *AppState) layout() {
	state.view = termRenderer{}
	state.reg.Draw(&state.view)
	if n := len(state.view.controls()); state.focus >= n {
		state.focus = max(n-1, 0)
	}
}

func (state *AppState) focused() (item, bool) {
	c := state.view.controls()
	if state.focus < 0 || state.focus >= len(c) {
		return item{}, false
	}
	return c[state.focus], true
}

func runUI(contents []byte, lg *log.Logger) error {
	state := &AppState{lg: lg}
	state.actions = actions.NewRegistry(lg)
	if err := state.actions.RegisterMap(demoHandlers(state.report)); err != nil {
		return err
	}

	reg, err := buildRegistry(contents, &statusDispatcher{actions: state.actions, report: state.report}, lg)
	if err != nil {
		return err
	}
	state.reg = reg
	defer func() { state.reg.Close() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))

	if *watchDefs {
		w, err := watchFile(*defsFilename, screen, lg)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	for {
		state.layout()
		render(screen, state)
		screen.Show()

		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch handleEvent(ev, state, screen) {
		case ActionQuit:
			return nil

		case ActionClick:
			if it, ok := state.focused(); ok {
				state.status = ""
				it.control.OnClick()
				if !it.control.Enabled {
					state.status = it.control.Name + " is disabled"
				}
			}

		case ActionToggleExternal:
			if it, ok := state.focused(); ok {
				opt, _ := state.reg.Option(it.toolbar, it.control.Name)
				if opt.GroupType != toolbar.GroupExternallyControlled {
					state.status = it.control.Name + " is not externally controlled"
				} else {
					state.reg.SetOptionEnabled(it.toolbar, it.control.Name, !opt.ExternalEnabled)
				}
			}

		case ActionToggleOverride:
			if it, ok := state.focused(); ok {
				opt, _ := state.reg.Option(it.toolbar, it.control.Name)
				icon := overrideIcon
				if opt.OverrideIcon != "" {
					icon = ""
				}
				state.reg.SetIconOverride(it.toolbar, it.control.Name, icon)
			}

		case ActionReload:
			state.reload()
		}
	}
}

// reload rebuilds the toolbars from the definitions file; the current
// toolbars are kept if it has errors.
func (state *AppState) reload() {
	contents, err := os.ReadFile(*defsFilename)
	if err != nil {
		state.status = err.Error()
		return
	}

	reg, err := buildRegistry(contents, &statusDispatcher{actions: state.actions, report: state.report}, state.lg)
	if err != nil {
		state.lg.Warnf("%s: %v", *defsFilename, err)
		state.status = "reload failed: " + err.Error()
		return
	}

	state.reg.Close()
	state.reg = reg
	state.status = "reloaded " + *defsFilename
}

func render(screen tcell.Screen, state *AppState) {
	screen.Clear()
	width, height := screen.Size()

	styleDefault := tcell.StyleDefault
	styleName := tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleDisabled := tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHelp := tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	y := 0
	idx := 0
	for _, row := range state.view.rows {
		if y >= height-3 {
			break
		}
		drawText(screen, 0, y, width, styleName, row.name)
		y++

		x := 2
		if row.label != "" {
			x += drawText(screen, x, y, width-x, styleDefault, row.label)
		}
		for _, it := range row.items {
			if it.separator {
				x += drawText(screen, x, y, width-x, styleDisabled, " | ")
				continue
			}

			c := it.control
			style := styleDefault
			if !c.Enabled {
				style = styleDisabled
			}
			if c.Checked {
				style = style.Reverse(true)
			}
			if idx == state.focus {
				style = style.Underline(true).Bold(true)
			}
			x += drawText(screen, x, y, width-x, style, controlText(c))
			x++
			idx++
		}
		y += 2
	}

	if it, ok := state.focused(); ok {
		drawText(screen, 0, height-3, width, styleDefault, it.control.Tooltip)
	}
	drawText(screen, 0, height-2, width, styleStatus, state.status)
	drawText(screen, 0, height-1, width, styleHelp,
		" [Tab/Arrows]=Move  [Enter/Space]=Click  [e]=External  [o]=Override icon  [q/Esc]=Quit ")
}

func controlText(c toolbar.Control) string {
	s := "[" + c.Icon + "] " + c.Name
	if c.Checkable {
		if c.Checked {
			s = "(x) " + s
		} else {
			s = "( ) " + s
		}
	}
	return s
}

// drawText draws a string at the given position and returns the number
// of cells used.
func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) int {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	return col
}

// handleEvent processes a tcell event and returns the appropriate action.
func handleEvent(ev tcell.Event, state *AppState, screen tcell.Screen) Action {
	n := len(state.view.controls())

	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()

	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(reloadRequest); ok {
			return ActionReload
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return ActionQuit

		case tcell.KeyEnter:
			return ActionClick

		case tcell.KeyRight, tcell.KeyDown, tcell.KeyTab:
			if n > 0 {
				state.focus = (state.focus + 1) % n
			}

		case tcell.KeyLeft, tcell.KeyUp, tcell.KeyBacktab:
			if n > 0 {
				state.focus = (state.focus + n - 1) % n
			}

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return ActionQuit
			case ' ':
				return ActionClick
			case 'e':
				return ActionToggleExternal
			case 'o':
				return ActionToggleOverride
			}
		}
	}

	return ActionNone
}

// toolbar/render.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

// Control is everything a renderer needs to show one option.
type Control struct {
	Name      string
	Tooltip   string
	Icon      string
	Enabled   bool
	Checked   bool
	Checkable bool
	// OnClick should be called when the user interacts with the control;
	// it is a no-op for disabled controls.
	OnClick func()
}

// Renderer draws toolbars. The toolbar package never draws anything
// itself; it only tells the renderer what to show.
type Renderer interface {
	BeginToolbar(name, label string, iconSize int)
	Option(c Control)
	Separator()
	EndToolbar()
}

// Draw passes each of the toolbar's options to the renderer, in order.
func (tb *Toolbar) Draw(r Renderer) {
	r.BeginToolbar(tb.Name, tb.Label, tb.IconSize)
	for _, b := range tb.batches {
		for _, o := range b.options {
			if o.Separator {
				r.Separator()
				continue
			}
			r.Option(Control{
				Name:      o.Name,
				Tooltip:   o.Tooltip(),
				Icon:      o.DisplayIcon,
				Enabled:   o.Enabled(),
				Checked:   o.Checked,
				Checkable: o.Checkable,
				OnClick:   func() { tb.click(b, o) },
			})
		}
	}
	r.EndToolbar()
}

// toolbar/activate.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

// transition is the kind of state change requested for an option. User
// clicks and programmatic control both go through activate().
type transition int

const (
	// click applies the regular click rules.
	click transition = iota
	// forceOn makes the option active.
	forceOn
	// forceOff makes the option inactive.
	forceOff
)

func (t transition) String() string {
	return [...]string{"click", "force on", "force off"}[t]
}

// activate applies the transition to o, which must belong to the batch,
// and reports whether it was accepted. A disabled option only accepts
// forceOff. Only the first matching rule applies:
//
//  1. SingleExclusive option with a group: deactivate the rest of the
//     group and activate o.
//  2. Single-select batch: o becomes the only active option.
//  3. Option with an icon cycle: advance to the next icon.
//  4. Otherwise, toggle o.
//
// Forced transitions set the active state directly in the cases where
// rules 3 and 4 would not.
func (b *Batch) activate(o *Option, t transition) bool {
	if o == nil || o.Separator || !b.contains(o) {
		return false
	}
	if o.Disabled && t != forceOff {
		return false
	}

	switch {
	case o.GroupType == GroupSingleExclusive && o.Group != "":
		if t == forceOff {
			o.setActive(false)
			break
		}
		for _, other := range b.options {
			if other != o && !other.Separator && other.Group == o.Group {
				other.setActive(false)
			}
		}
		o.setActive(true)

	case b.singleSelect:
		if t == forceOff {
			o.setActive(false)
			break
		}
		for _, other := range b.options {
			if !other.Separator {
				other.setActive(other == o)
			}
		}

	case len(o.IconCycle) > 0 && t == click:
		o.CurrentIconIndex = (o.CurrentIconIndex + 1) % len(o.IconCycle)
		o.refresh()

	default:
		switch t {
		case click:
			o.setActive(!o.Active)
		case forceOn:
			o.setActive(true)
		case forceOff:
			o.setActive(false)
		}
	}

	return true
}

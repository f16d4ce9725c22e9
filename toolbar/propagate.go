// toolbar/propagate.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

// propagate brings conditional, externally-controlled, and exclusive
// options up to date after any change to the batch. Parents are looked up
// by name within the batch only; a missing parent counts as inactive.
//
// Sweeps repeat until nothing changes so that chains of conditional
// options settle in one call regardless of their order in the batch.
// Sweeps can only deactivate options, so this terminates.
func (b *Batch) propagate() {
	for range len(b.options) + 1 {
		if !b.sweep() {
			return
		}
	}
}

// sweep makes a single pass over the batch and reports whether any
// option's active or enabled state changed.
func (b *Batch) sweep() bool {
	changed := false
	set := func(o *Option, active, disabled bool) {
		if o.Active != active || o.Disabled != disabled {
			changed = true
		}
		o.Disabled = disabled
		o.setActive(active)
	}

	for _, o := range b.options {
		if o.Separator {
			continue
		}

		switch o.GroupType {
		case GroupConditionalPreserveState, GroupConditionalClearState:
			if o.ConditionalOn == "" {
				break
			}
			parent := b.find(o.ConditionalOn)
			if parent == nil {
				b.tb.warnOnce("conditional:"+o.Name,
					"%s: conditional parent %q not found in batch; option disabled", o.Name, o.ConditionalOn)
			}
			parentActive := parent != nil && parent.Active

			active := o.Active
			if !parentActive && o.GroupType == GroupConditionalClearState {
				active = false
			}
			set(o, active, !parentActive)

		case GroupExternallyControlled:
			set(o, o.Active && o.ExternalEnabled, !o.ExternalEnabled)

		case GroupSingleExclusive:
			if o.Group == "" {
				break
			}
			for _, other := range b.options {
				if !other.Separator && other.Group == o.Group {
					other.refresh()
				}
			}
		}
	}

	return changed
}

// toolbar/icon.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

// ResolveIcon returns the icon that should be displayed for the option.
// An override icon always wins, then the current entry of the icon cycle,
// and finally the toggled icon (falling back to the regular icon) for
// active options.
func ResolveIcon(o Option) string {
	if o.OverrideIcon != "" {
		return o.OverrideIcon
	}
	if len(o.IconCycle) > 0 {
		if o.CurrentIconIndex >= 0 && o.CurrentIconIndex < len(o.IconCycle) {
			return o.IconCycle[o.CurrentIconIndex]
		}
		return o.IconCycle[0]
	}
	if o.Active && o.ToggledIcon != "" {
		return o.ToggledIcon
	}
	return o.Icon
}

// toolbar/option.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	"fmt"
	"strings"
)

// GroupType determines how an option's state interacts with the other
// options in its batch.
type GroupType int

const (
	// GroupNone is an independent toggle.
	GroupNone GroupType = iota
	// GroupSingleExclusive allows only one active option per group;
	// clicking the active one again leaves it active.
	GroupSingleExclusive
	// GroupSingleToggleable currently behaves as a plain toggle; see
	// DESIGN.md.
	GroupSingleToggleable
	// GroupConditionalPreserveState options are disabled while their
	// parent is inactive but keep their own active state.
	GroupConditionalPreserveState
	// GroupConditionalClearState options are disabled and deactivated
	// while their parent is inactive.
	GroupConditionalClearState
	// GroupExternallyControlled options are only available when code
	// outside the toolbar sets ExternalEnabled.
	GroupExternallyControlled
)

var groupTypeNames = []string{"none", "single_exclusive", "single_toggleable",
	"conditional_preserve", "conditional_clear", "external"}

func (g GroupType) String() string {
	if g < 0 || int(g) >= len(groupTypeNames) {
		return fmt.Sprintf("GroupType(%d)", int(g))
	}
	return groupTypeNames[g]
}

func (g GroupType) MarshalJSON() ([]byte, error) {
	if g < 0 || int(g) >= len(groupTypeNames) {
		return nil, fmt.Errorf("%d: %w", int(g), ErrUnknownGroupType)
	}
	return []byte(`"` + groupTypeNames[g] + `"`), nil
}

func (g *GroupType) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	for i, name := range groupTypeNames {
		if s == name {
			*g = GroupType(i)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", string(b), ErrUnknownGroupType)
}

// CheckJSON implements util.JSONChecker.
func (g *GroupType) CheckJSON(json any) bool {
	s, ok := json.(string)
	if !ok {
		return false
	}
	var gt GroupType
	return gt.UnmarshalJSON([]byte(`"`+s+`"`)) == nil
}

// Option is a single toolbar control: its definition, its logical state,
// and the state that is currently displayed for it.
type Option struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Hotkey      string `json:"hotkey,omitempty"`

	Icon             string   `json:"icon,omitempty"`
	ToggledIcon      string   `json:"toggled_icon,omitempty"`
	IconCycle        []string `json:"icon_cycle,omitempty"`
	CurrentIconIndex int      `json:"icon_index,omitempty"`
	OverrideIcon     string   `json:"override_icon,omitempty"`

	Checkable bool `json:"checkable,omitempty"`
	Separator bool `json:"separator,omitempty"`
	Active    bool `json:"active,omitempty"`
	// Disabled is the inverse of "enabled" so that the zero value is an
	// enabled option.
	Disabled bool `json:"disabled,omitempty"`

	Group           string    `json:"group,omitempty"`
	GroupType       GroupType `json:"group_type,omitempty"`
	ConditionalOn   string    `json:"conditional_on,omitempty"`
	ExternalEnabled bool      `json:"external_enabled,omitempty"`

	// ShortcutAction names the action handler to run when the option is
	// clicked, e.g. "mesh.vertex".
	ShortcutAction string `json:"shortcut_action,omitempty"`

	// What is currently shown for the option; only updated via refresh().
	DisplayIcon string `json:"-"`
	Checked     bool   `json:"-"`
}

func (o *Option) Enabled() bool {
	return !o.Disabled
}

func (o *Option) Tooltip() string {
	tip := o.Name
	if strings.TrimSpace(o.Hotkey) != "" {
		tip += " [" + o.Hotkey + "]"
	}
	if o.Description != "" {
		tip += "\n" + o.Description
	}
	return tip
}

func (o *Option) setActive(active bool) {
	o.Active = active
	o.refresh()
}

// refresh re-derives the displayed state from the logical state.
func (o *Option) refresh() {
	o.DisplayIcon = ResolveIcon(*o)
	o.Checked = o.Active
}

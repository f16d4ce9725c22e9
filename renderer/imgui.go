// renderer/imgui.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mmp/toolstate/toolbar"
)

// ImguiToolbar draws toolbars as rows of imgui buttons. It must be used
// between imgui.NewFrame() and imgui.Render().
type ImguiToolbar struct {
	// DefaultIconSize is used for toolbars that don't specify one.
	DefaultIconSize int

	iconSize float32
	first    bool
}

var _ toolbar.Renderer = (*ImguiToolbar)(nil)

func (r *ImguiToolbar) BeginToolbar(name, label string, iconSize int) {
	imgui.PushIDStr(name)
	if iconSize == 0 {
		iconSize = r.DefaultIconSize
	}
	r.iconSize = float32(iconSize)
	r.first = true

	if label != "" {
		imgui.Text(label)
		r.first = false
	}
}

func (r *ImguiToolbar) sameLine() {
	if !r.first {
		imgui.SameLine()
	}
	r.first = false
}

func (r *ImguiToolbar) Option(c toolbar.Control) {
	r.sameLine()
	imgui.PushIDStr(c.Name)
	defer imgui.PopID()

	if !c.Enabled {
		imgui.BeginDisabled()
	}
	if c.Checkable && c.Checked {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.CurrentStyle().Colors()[imgui.ColButtonActive])
	}

	if imgui.ButtonV(ButtonLabel(c.Icon, c.Name), imgui.Vec2{X: r.iconSize, Y: r.iconSize}) && c.OnClick != nil {
		c.OnClick()
	}

	if c.Checkable && c.Checked {
		imgui.PopStyleColor()
	}
	if !c.Enabled {
		imgui.EndDisabled()
	}

	if imgui.IsItemHoveredV(imgui.HoveredFlagsAllowWhenDisabled) {
		imgui.SetTooltip(c.Tooltip)
	}
}

func (r *ImguiToolbar) Separator() {
	r.sameLine()
	imgui.PushStyleColorVec4(imgui.ColText, imgui.Vec4{X: .5, Y: .5, Z: .5, W: 1})
	imgui.Text("|")
	imgui.PopStyleColor()
}

func (r *ImguiToolbar) EndToolbar() {
	imgui.PopID()
}

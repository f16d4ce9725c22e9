// toolbar/registry.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	"fmt"
	"slices"

	"github.com/iancoleman/orderedmap"

	"github.com/mmp/toolstate/log"
)

// Registry maps toolbar names to toolbars for the lifetime of an editor
// session so that code outside the UI can find and drive them. All of its
// setters go through the same transitions as user clicks.
type Registry struct {
	toolbars   *orderedmap.OrderedMap // name -> *Toolbar, in registration order
	lg         *log.Logger
	dispatcher Dispatcher
}

func NewRegistry(lg *log.Logger, d Dispatcher) *Registry {
	return &Registry{
		toolbars:   orderedmap.New(),
		lg:         lg,
		dispatcher: d,
	}
}

// NewToolbar creates an empty toolbar that uses the registry's logger and
// dispatcher and registers it under its name.
func (r *Registry) NewToolbar(name string) (*Toolbar, error) {
	tb, err := New(name, r.lg, r.dispatcher)
	if err != nil {
		return nil, err
	}
	return tb, r.Register(name, tb)
}

// CreateToolbar builds a toolbar from its definition and registers it.
// Nothing is registered if any of its batches is invalid.
func (r *Registry) CreateToolbar(def ToolbarDef) (*Toolbar, error) {
	tb, err := r.build(def)
	if err != nil {
		return nil, err
	}
	return tb, r.Register(def.Name, tb)
}

func (r *Registry) build(def ToolbarDef) (*Toolbar, error) {
	tb, err := New(def.Name, r.lg, r.dispatcher)
	if err != nil {
		return nil, err
	}
	tb.Label = def.Label
	tb.IconSize = def.IconSize

	for i, bd := range def.Batches {
		if _, err := tb.AddBatch(bd.SingleSelect, bd.Options...); err != nil {
			return nil, fmt.Errorf("%s: batch %d: %w", def.Name, i, err)
		}
	}
	return tb, nil
}

// Build creates and registers a toolbar for each definition. If any
// toolbar fails to build, none of them are registered.
func (r *Registry) Build(defs []ToolbarDef) error {
	var tbs []*Toolbar
	for _, def := range defs {
		tb, err := r.build(def)
		if err != nil {
			return err
		}
		tbs = append(tbs, tb)
	}
	for _, tb := range tbs {
		if err := r.Register(tb.Name, tb); err != nil {
			return err
		}
	}
	return nil
}

// Register makes the toolbar available under the given name, replacing
// any toolbar previously registered with it.
func (r *Registry) Register(name string, tb *Toolbar) error {
	if name == "" {
		return ErrEmptyToolbarName
	}
	if tb == nil {
		return fmt.Errorf("%s: %w", name, ErrNilToolbar)
	}
	if _, ok := r.toolbars.Get(name); ok {
		r.lg.Debugf("%s: replacing registered toolbar", name)
		// Delete first so that the replacement moves to the end.
		r.toolbars.Delete(name)
	}
	r.toolbars.Set(name, tb)
	return nil
}

func (r *Registry) Lookup(name string) (*Toolbar, bool) {
	v, ok := r.toolbars.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Toolbar), true
}

// Names returns the names of the registered toolbars in the order in
// which they were registered.
func (r *Registry) Names() []string {
	return slices.Clone(r.toolbars.Keys())
}

func (r *Registry) Remove(name string) bool {
	if _, ok := r.toolbars.Get(name); !ok {
		return false
	}
	r.toolbars.Delete(name)
	return true
}

// Close drops all of the registered toolbars at the end of the session.
func (r *Registry) Close() {
	r.lg.Debugf("closing toolbar registry with %d toolbars", len(r.toolbars.Keys()))
	r.toolbars = orderedmap.New()
}

func (r *Registry) lookup(name string) (*Toolbar, bool) {
	tb, ok := r.Lookup(name)
	if !ok {
		r.lg.Warnf("%s: no such toolbar", name)
	}
	return tb, ok
}

// AddOptions adds the options to the named toolbar as a new batch. It
// returns false if the toolbar is unknown or the options are invalid.
func (r *Registry) AddOptions(toolbar string, singleSelect bool, opts []Option) bool {
	tb, ok := r.lookup(toolbar)
	if !ok {
		return false
	}
	if _, err := tb.AddBatch(singleSelect, opts...); err != nil {
		r.lg.Errorf("%s: %v", toolbar, err)
		return false
	}
	return true
}

func (r *Registry) SetOptionEnabled(toolbar, option string, enabled bool) bool {
	tb, ok := r.lookup(toolbar)
	return ok && tb.SetEnabled(option, enabled)
}

func (r *Registry) SetOptionActive(toolbar, option string, active bool) bool {
	tb, ok := r.lookup(toolbar)
	return ok && tb.SetActive(option, active)
}

func (r *Registry) SetIconOverride(toolbar, option, icon string) bool {
	tb, ok := r.lookup(toolbar)
	return ok && tb.SetIconOverride(option, icon)
}

func (r *Registry) Click(toolbar, option string) bool {
	tb, ok := r.lookup(toolbar)
	return ok && tb.Click(option)
}

// Option returns a copy of the named option.
func (r *Registry) Option(toolbar, option string) (Option, bool) {
	tb, ok := r.lookup(toolbar)
	if !ok {
		return Option{}, false
	}
	return tb.Option(option)
}

// Draw draws all of the registered toolbars in registration order.
func (r *Registry) Draw(rd Renderer) {
	for _, name := range r.Names() {
		if tb, ok := r.Lookup(name); ok {
			tb.Draw(rd)
		}
	}
}

// toolbar/batch.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	"fmt"
	"slices"
)

// Batch is a set of options that were created together. Groups and
// conditional references are resolved only among the options of a single
// batch, even when several batches are shown in the same toolbar; a
// SingleExclusive group that is split across two batches therefore
// behaves as two independent groups.
type Batch struct {
	options []*Option
	// singleSelect is fixed when the batch is created: clicking any
	// option makes it the only active one in the batch.
	singleSelect bool

	// tb is the toolbar that owns the batch; it may be nil for a
	// standalone batch.
	tb *Toolbar
}

// newBatch validates the given options and returns a new batch holding
// copies of them. Either the whole batch is built or an error is
// returned. The conditional state of the new options is settled before
// newBatch returns.
func newBatch(tb *Toolbar, singleSelect bool, opts []Option) (*Batch, error) {
	if len(opts) == 0 {
		return nil, ErrEmptyBatch
	}

	b := &Batch{singleSelect: singleSelect, tb: tb}
	names := make(map[string]any)
	for i, opt := range opts {
		if opt.Separator {
			b.options = append(b.options, &Option{Name: opt.Name, Separator: true})
			continue
		}

		if opt.Name == "" {
			return nil, fmt.Errorf("option %d: %w", i, ErrEmptyOptionName)
		}
		if _, ok := names[opt.Name]; ok {
			return nil, fmt.Errorf("%s: %w", opt.Name, ErrDuplicateOption)
		}
		names[opt.Name] = nil

		if len(opt.IconCycle) == 0 {
			opt.CurrentIconIndex = 0
		} else if opt.CurrentIconIndex < 0 || opt.CurrentIconIndex >= len(opt.IconCycle) {
			return nil, fmt.Errorf("%s: index %d, %d icons: %w", opt.Name, opt.CurrentIconIndex,
				len(opt.IconCycle), ErrInvalidIconIndex)
		}
		if opt.GroupType < GroupNone || opt.GroupType > GroupExternallyControlled {
			return nil, fmt.Errorf("%s: %w", opt.Name, ErrUnknownGroupType)
		}

		o := opt
		o.IconCycle = slices.Clone(opt.IconCycle)
		o.refresh()
		b.options = append(b.options, &o)
	}
	b.propagate()

	return b, nil
}

func (b *Batch) SingleSelect() bool {
	return b.singleSelect
}

// Options returns copies of the batch's options.
func (b *Batch) Options() []Option {
	opts := make([]Option, len(b.options))
	for i, o := range b.options {
		opts[i] = *o
		opts[i].IconCycle = slices.Clone(o.IconCycle)
	}
	return opts
}

// find returns the first non-separator option in the batch with the given
// name, or nil if there is none.
func (b *Batch) find(name string) *Option {
	for _, o := range b.options {
		if !o.Separator && o.Name == name {
			return o
		}
	}
	return nil
}

func (b *Batch) contains(o *Option) bool {
	return slices.Contains(b.options, o)
}

// toolbar/toolbar.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	"time"

	"github.com/brunoga/deep"

	"github.com/mmp/toolstate/actions"
	"github.com/mmp/toolstate/log"
	"github.com/mmp/toolstate/util"
)

// Dispatcher runs the action attached to a clicked option. It is
// implemented by *actions.Registry.
type Dispatcher interface {
	Dispatch(action string) actions.Outcome
}

// Toolbar is a named, ordered collection of batches that are displayed
// together.
type Toolbar struct {
	Name  string
	Label string // e.g., "Select: ", shown before the first option
	// IconSize is a hint for renderers; 0 means the renderer's default.
	IconSize int

	batches    []*Batch
	lg         *log.Logger
	dispatcher Dispatcher
}

type warningKey struct {
	tb  *Toolbar
	key string
}

// recentWarnings is shared by all toolbars; each TransientSet runs its own
// expiry goroutine for the life of the process.
var recentWarnings = util.NewTransientSet[warningKey](256, time.Minute)

// New returns an empty toolbar. The logger and dispatcher may be nil; in
// the latter case clicked options don't run any actions.
func New(name string, lg *log.Logger, d Dispatcher) (*Toolbar, error) {
	if name == "" {
		return nil, ErrEmptyToolbarName
	}
	return &Toolbar{
		Name:       name,
		lg:         lg.With("toolbar", name),
		dispatcher: d,
	}, nil
}

// AddBatch validates opts and appends them to the toolbar as a new batch.
// Nothing is added if an error is returned.
func (tb *Toolbar) AddBatch(singleSelect bool, opts ...Option) (*Batch, error) {
	b, err := newBatch(tb, singleSelect, opts)
	if err != nil {
		return nil, err
	}
	tb.batches = append(tb.batches, b)
	return b, nil
}

func (tb *Toolbar) Batches() []*Batch {
	return tb.batches
}

// find returns the first option with the given name, searching the
// batches in order, along with the batch that holds it.
func (tb *Toolbar) find(name string) (*Batch, *Option) {
	for _, b := range tb.batches {
		if o := b.find(name); o != nil {
			return b, o
		}
	}
	return nil, nil
}

// Click performs the same transition as a user clicking on the named
// option: the click rules, propagation over its batch, and then the
// option's action, if any. It returns false if there is no such option or
// it is disabled.
func (tb *Toolbar) Click(name string) bool {
	b, o := tb.find(name)
	if o == nil {
		tb.warnOnce("option:"+name, "%s: no such option", name)
		return false
	}
	return tb.click(b, o)
}

func (tb *Toolbar) click(b *Batch, o *Option) bool {
	if !b.activate(o, click) {
		tb.lg.Debugf("%s: click ignored on disabled option", o.Name)
		return false
	}
	b.propagate()

	// State is final at this point; the action can't change it.
	if o.ShortcutAction != "" && tb.dispatcher != nil {
		tb.dispatcher.Dispatch(o.ShortcutAction)
	}
	return true
}

// SetActive forces the named option on or off without running its
// action.
func (tb *Toolbar) SetActive(name string, active bool) bool {
	b, o := tb.find(name)
	if o == nil {
		tb.warnOnce("option:"+name, "%s: no such option", name)
		return false
	}
	if !b.activate(o, util.Select(active, forceOn, forceOff)) {
		tb.lg.Debugf("%s: cannot activate disabled option", o.Name)
		return false
	}
	b.propagate()
	return true
}

// SetEnabled enables or disables the named option. For externally
// controlled options this sets ExternalEnabled; for conditional options
// the parent's state takes precedence once the batch is propagated.
func (tb *Toolbar) SetEnabled(name string, enabled bool) bool {
	b, o := tb.find(name)
	if o == nil {
		tb.warnOnce("option:"+name, "%s: no such option", name)
		return false
	}
	if o.GroupType == GroupExternallyControlled {
		o.ExternalEnabled = enabled
	} else {
		o.Disabled = !enabled
	}
	b.propagate()
	return true
}

// SetIconOverride forces the named option to display the given icon;
// an empty icon removes the override.
func (tb *Toolbar) SetIconOverride(name string, icon string) bool {
	b, o := tb.find(name)
	if o == nil {
		tb.warnOnce("option:"+name, "%s: no such option", name)
		return false
	}
	o.OverrideIcon = icon
	o.refresh()
	b.propagate()
	return true
}

// Option returns a copy of the named option.
func (tb *Toolbar) Option(name string) (Option, bool) {
	if _, o := tb.find(name); o != nil {
		return deep.MustCopy(*o), true
	}
	return Option{}, false
}

// Snapshot returns a deep copy of the options of each batch; changing it
// has no effect on the toolbar.
func (tb *Toolbar) Snapshot() [][]Option {
	snap := make([][]Option, len(tb.batches))
	for i, b := range tb.batches {
		snap[i] = make([]Option, len(b.options))
		for j, o := range b.options {
			snap[i][j] = *o
		}
	}
	return deep.MustCopy(snap)
}

// warnOnce logs a warning unless the toolbar reported the same key in the
// last minute. Batches that are being validated without a toolbar have
// nothing to report to, so a nil *Toolbar logs nothing.
func (tb *Toolbar) warnOnce(key string, format string, args ...any) {
	if tb == nil {
		return
	}
	if recentWarnings.Add(warningKey{tb: tb, key: key}) {
		tb.lg.Warnf(format, args...)
	}
}

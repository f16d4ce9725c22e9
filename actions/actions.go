// actions/actions.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package actions maps shortcut action identifiers, e.g. "view.grid", to
// the functions that carry them out.
package actions

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmp/toolstate/log"
	"github.com/mmp/toolstate/util"
)

var (
	ErrEmptyIdentifier = errors.New("action identifier cannot be empty")
	ErrNilHandler      = errors.New("action handler cannot be nil")
)

// Handler carries out an action. A returned error is logged; it never
// reaches the code that dispatched the action.
type Handler func() error

// Outcome describes what happened when an action was dispatched.
type Outcome int

const (
	// Skipped: no action identifier was given.
	Skipped Outcome = iota
	// NotFound: no handler is registered for the identifier.
	NotFound
	// Failed: the handler returned an error or panicked.
	Failed
	// Invoked: the handler ran successfully.
	Invoked
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case NotFound:
		return "not found"
	case Failed:
		return "failed"
	case Invoked:
		return "invoked"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Registry holds the registered handlers. It is populated at startup and
// is not safe for concurrent registration.
type Registry struct {
	handlers map[string][]Handler
	lg       *log.Logger
}

type warningKey struct {
	r       *Registry
	id      string
	outcome Outcome
}

// warningWindow is how long a repeated NotFound or Failed warning for the
// same action is suppressed.
const warningWindow = 30 * time.Second

// recentWarnings is shared by all registries; each TransientSet runs its
// own expiry goroutine for the life of the process.
var recentWarnings = util.NewTransientSet[warningKey](256, warningWindow)

func NewRegistry(lg *log.Logger) *Registry {
	return &Registry{
		handlers: make(map[string][]Handler),
		lg:       lg,
	}
}

// Register adds a handler for the given identifier. If more than one
// handler is registered for an identifier, the first one registered is
// the one that runs.
func (r *Registry) Register(id string, h Handler) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if h == nil {
		return fmt.Errorf("%s: %w", id, ErrNilHandler)
	}
	if len(r.handlers[id]) > 0 {
		r.lg.Debugf("%s: action already has a handler; the new one will not run", id)
	}
	r.handlers[id] = append(r.handlers[id], h)
	return nil
}

// RegisterMap registers all of the given handlers; identifiers are
// registered in sorted order so that errors are reported
// deterministically.
func (r *Registry) RegisterMap(m map[string]Handler) error {
	var errs []error
	for _, id := range util.SortedMapKeys(m) {
		if err := r.Register(id, m[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the handler that Dispatch would run for id.
func (r *Registry) Lookup(id string) (Handler, bool) {
	if hs := r.handlers[id]; len(hs) > 0 {
		return hs[0], true
	}
	return nil, false
}

// Identifiers returns the registered action identifiers, sorted.
func (r *Registry) Identifiers() []string {
	return util.SortedMapKeys(r.handlers)
}

// Dispatch runs the handler for id. Failures are logged and reported via
// the returned Outcome but are otherwise contained. A warning is logged the
// first time an id is NotFound or Failed; further warnings for the same id
// and outcome are suppressed for 30 seconds, so a NotFound followed by a
// Failed both log.
func (r *Registry) Dispatch(id string) Outcome {
	if id == "" {
		return Skipped
	}

	h, ok := r.Lookup(id)
	if !ok {
		r.warnOnce(id, NotFound, "%s: no handler registered for action", id)
		return NotFound
	}

	if err := r.invoke(h); err != nil {
		r.warnOnce(id, Failed, "%s: action failed: %v", id, err)
		return Failed
	}
	r.lg.Debugf("%s: action invoked", id)
	return Invoked
}

func (r *Registry) invoke(h Handler) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return h()
}

func (r *Registry) warnOnce(id string, outcome Outcome, format string, args ...any) {
	if recentWarnings.Add(warningKey{r: r, id: id, outcome: outcome}) {
		r.lg.Warnf(format, args...)
	}
}

// toolbar/registry_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/mmp/toolstate/log"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry(nil, nil)
	defer r.Close()

	tb, _ := New("View Settings", nil, nil)
	if err := r.Register("", tb); !errors.Is(err, ErrEmptyToolbarName) {
		t.Errorf("got %v, expected ErrEmptyToolbarName", err)
	}
	if err := r.Register("View Settings", nil); !errors.Is(err, ErrNilToolbar) {
		t.Errorf("got %v, expected ErrNilToolbar", err)
	}

	for _, name := range []string{"Main Tools", "View Settings", "Editing Settings"} {
		if _, err := r.NewToolbar(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	// Re-registering replaces the old toolbar and moves it to the end.
	if err := r.Register("Main Tools", tb); err != nil {
		t.Fatal(err)
	}
	if got, ok := r.Lookup("Main Tools"); !ok || got != tb {
		t.Errorf("registered toolbar was not replaced")
	}

	expected := []string{"View Settings", "Editing Settings", "Main Tools"}
	if names := r.Names(); !slices.Equal(names, expected) {
		t.Errorf("got %v, expected %v", names, expected)
	}

	if !r.Remove("View Settings") || r.Remove("View Settings") {
		t.Errorf("unexpected Remove results")
	}
	if _, ok := r.Lookup("View Settings"); ok {
		t.Errorf("removed toolbar still registered")
	}

	r.Close()
	if len(r.Names()) != 0 {
		t.Errorf("got %v after Close, expected no toolbars", r.Names())
	}
}

func TestRegistryOperations(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	r := NewRegistry(log.NewWriter(&buf, "warn"), rec)
	defer r.Close()

	if _, err := r.NewToolbar("Editing Settings"); err != nil {
		t.Fatal(err)
	}
	ok := r.AddOptions("Editing Settings", false, []Option{
		{Name: "Grid Snap", Active: true, ShortcutAction: "editing.grid_snap"},
		{Name: "Angle Snap", Active: true, GroupType: GroupConditionalClearState, ConditionalOn: "Grid Snap"},
		{Name: "Simulate", GroupType: GroupExternallyControlled},
	})
	if !ok {
		t.Fatalf("AddOptions failed")
	}

	if !r.SetOptionActive("Editing Settings", "Grid Snap", false) {
		t.Errorf("SetOptionActive failed")
	}
	if o, _ := r.Option("Editing Settings", "Angle Snap"); o.Active || o.Enabled() {
		t.Errorf("forced deactivation of parent didn't propagate")
	}

	if !r.Click("Editing Settings", "Grid Snap") {
		t.Errorf("Click failed")
	}
	if o, _ := r.Option("Editing Settings", "Grid Snap"); !o.Active {
		t.Errorf("Click didn't activate option")
	}
	if !slices.Equal(rec.dispatched, []string{"editing.grid_snap"}) {
		t.Errorf("got dispatched %v, expected [editing.grid_snap]", rec.dispatched)
	}

	if o, _ := r.Option("Editing Settings", "Simulate"); o.Enabled() {
		t.Errorf("external option enabled before being turned on")
	}
	r.SetOptionEnabled("Editing Settings", "Simulate", true)
	if o, _ := r.Option("Editing Settings", "Simulate"); !o.Enabled() || !o.ExternalEnabled {
		t.Errorf("SetOptionEnabled didn't enable external option")
	}

	r.SetIconOverride("Editing Settings", "Simulate", "Lock")
	if o, _ := r.Option("Editing Settings", "Simulate"); o.DisplayIcon != "Lock" {
		t.Errorf("got icon %q, expected \"Lock\"", o.DisplayIcon)
	}

	// Invalid batches are rejected as a whole.
	if r.AddOptions("Editing Settings", false, []Option{{Name: "X"}, {Name: "X"}}) {
		t.Errorf("AddOptions accepted duplicate names")
	}
	if tb, _ := r.Lookup("Editing Settings"); len(tb.Batches()) != 1 {
		t.Errorf("got %d batches, expected 1", len(tb.Batches()))
	}
}

func TestRegistryUnknownToolbar(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(log.NewWriter(&buf, "warn"), nil)

	if r.AddOptions("Nope", false, []Option{{Name: "A"}}) ||
		r.SetOptionEnabled("Nope", "A", true) ||
		r.SetOptionActive("Nope", "A", true) ||
		r.Click("Nope", "A") ||
		r.SetIconOverride("Nope", "A", "Lock") {
		t.Errorf("operation on unknown toolbar succeeded")
	}
	if _, ok := r.Option("Nope", "A"); ok {
		t.Errorf("Option found in unknown toolbar")
	}
	if !strings.Contains(buf.String(), "Nope: no such toolbar") {
		t.Errorf("expected warning in log output %q", buf.String())
	}
}

func TestRegistryOptionUnknownToolbar(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(log.NewWriter(&buf, "warn"), nil)

	if _, ok := r.Option("Nope", "Grid"); ok {
		t.Errorf("Option found in unknown toolbar")
	}
	if !strings.Contains(buf.String(), "Nope: no such toolbar") {
		t.Errorf("expected warning in log output %q", buf.String())
	}
}

func TestRegistryBuildDoesNotLeakGoroutines(t *testing.T) {
	lg := log.NewWriter(io.Discard, "warn")
	build := func() {
		r := NewRegistry(lg, nil)
		if err := r.Build(DefaultDefinitions()); err != nil {
			t.Fatal(err)
		}
		r.Click("Main Tools", "No such option")
		r.Close()
	}

	build()
	before := runtime.NumGoroutine()
	for range 200 {
		build()
	}

	if after := runtime.NumGoroutine(); after > before+10 {
		t.Errorf("got %d goroutines after 200 builds, expected about %d", after, before)
	}
}

func TestRegistryBuild(t *testing.T) {
	r := NewRegistry(nil, nil)

	if err := r.Build(DefaultDefinitions()); err != nil {
		t.Fatal(err)
	}
	expected := []string{"Main Tools", "Selection Modes", "Editing Settings", "View Settings"}
	if names := r.Names(); !slices.Equal(names, expected) {
		t.Errorf("got %v, expected %v", names, expected)
	}

	tb, _ := r.Lookup("Selection Modes")
	if tb.Label != "Select: " || tb.IconSize != 24 || !tb.Batches()[0].SingleSelect() {
		t.Errorf("unexpected toolbar %+v", tb)
	}

	// Nothing is registered if any definition is bad.
	r2 := NewRegistry(nil, nil)
	err := r2.Build([]ToolbarDef{
		{Name: "Good", Batches: []BatchDef{{Options: []Option{{Name: "A"}}}}},
		{Name: "Bad", Batches: []BatchDef{{Options: []Option{{Name: ""}}}}},
	})
	if !errors.Is(err, ErrEmptyOptionName) {
		t.Errorf("got %v, expected ErrEmptyOptionName", err)
	}
	if len(r2.Names()) != 0 {
		t.Errorf("got %v, expected nothing registered", r2.Names())
	}

	if _, err := r2.CreateToolbar(ToolbarDef{}); !errors.Is(err, ErrEmptyToolbarName) {
		t.Errorf("got %v, expected ErrEmptyToolbarName", err)
	}
}

func TestRegistryDraw(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.CreateToolbar(ToolbarDef{Name: "A", Batches: []BatchDef{{Options: []Option{{Name: "a"}}}}})
	r.CreateToolbar(ToolbarDef{Name: "B", Batches: []BatchDef{{Options: []Option{{Name: "b"}}}}})

	var tr textRenderer
	r.Draw(&tr)
	expected := []string{"begin A", "a", "end", "begin B", "b", "end"}
	if !slices.Equal(tr.drawn, expected) {
		t.Errorf("got %v, expected %v", tr.drawn, expected)
	}
}

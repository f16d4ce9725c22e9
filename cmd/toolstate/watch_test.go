// cmd/toolstate/watch_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mmp/toolstate/log"
	"github.com/mmp/toolstate/toolbar"
)

const smallDefs = `{ "Only": { "batches": [ { "options": [ { "name": "A" } ] } ] } }`

func TestWatchFilePostsReload(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	fn := filepath.Join(t.TempDir(), "toolbars.json")
	if err := os.WriteFile(fn, toolbar.DefaultDefinitionsJSON(), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := watchFile(fn, screen, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Changes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(filepath.Dir(fn), "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, []byte(smallDefs), 0o644); err != nil {
		t.Fatal(err)
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("screen closed before reload was posted")
			}
			intr, ok := ev.(*tcell.EventInterrupt)
			if !ok {
				continue
			}
			req, ok := intr.Data().(reloadRequest)
			if !ok {
				t.Fatalf("got interrupt data %T, expected reloadRequest", intr.Data())
			}
			if req.filename != fn {
				t.Errorf("got filename %q, expected %q", req.filename, fn)
			}
			if a := handleEvent(ev, newTestState(t), nil); a != ActionReload {
				t.Errorf("got action %d, expected ActionReload", a)
			}
			return

		case <-timeout:
			t.Fatal("no reload posted after the definitions file was written")
		}
	}
}

func TestReload(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "toolbars.json")
	saved := *defsFilename
	*defsFilename = fn
	defer func() { *defsFilename = saved }()

	var buf bytes.Buffer
	state := newTestState(t)
	state.lg = log.NewWriter(&buf, "warn")
	names := state.reg.Names()

	// Broken JSON keeps the current toolbars.
	if err := os.WriteFile(fn, []byte(`{ "Only": { "batches": [ `), 0o644); err != nil {
		t.Fatal(err)
	}
	old := state.reg
	state.reload()
	if state.reg != old || !slices.Equal(state.reg.Names(), names) {
		t.Errorf("got toolbars %v after failed reload, expected %v", state.reg.Names(), names)
	}
	if !strings.HasPrefix(state.status, "reload failed: ") {
		t.Errorf("got status %q, expected reload failure", state.status)
	}
	if !strings.Contains(buf.String(), fn) {
		t.Errorf("expected warning naming %q in log output %q", fn, buf.String())
	}

	// A good file replaces them.
	if err := os.WriteFile(fn, []byte(smallDefs), 0o644); err != nil {
		t.Fatal(err)
	}
	state.reload()
	if got := state.reg.Names(); !slices.Equal(got, []string{"Only"}) {
		t.Errorf("got toolbars %v, expected [Only]", got)
	}
	if len(old.Names()) != 0 {
		t.Errorf("replaced registry was not closed")
	}
	if state.status != "reloaded "+fn {
		t.Errorf("got status %q, expected %q", state.status, "reloaded "+fn)
	}
}

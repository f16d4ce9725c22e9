// cmd/toolstate/watch.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"github.com/mmp/toolstate/log"
)

// reloadRequest is posted to the UI event loop when the definitions file
// changes so that the toolbars are only modified from the UI goroutine.
type reloadRequest struct {
	filename string
}

// watchFile watches the directory holding filename, since editors often
// replace files rather than writing them in place, and posts a
// reloadRequest to the screen whenever the file is written or created.
func watchFile(filename string, screen tcell.Screen, lg *log.Logger) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}

	target := filepath.Clean(filename)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				lg.Debugf("%s: %s", ev.Name, ev.Op)
				if err := screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{filename: filename})); err != nil {
					lg.Warnf("%s: unable to post reload: %v", filename, err)
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				lg.Warnf("%s: watch error: %v", filename, err)
			}
		}
	}()

	return w, nil
}

// cmd/toolstate/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// toolstate shows the editor toolbars in the terminal so that their
// behavior can be tried out interactively, and it can check toolbar
// definition files for errors.

import (
	"flag"
	"fmt"
	"os"

	"github.com/goforj/godump"
	"github.com/mmp/toolstate/actions"
	"github.com/mmp/toolstate/log"
	"github.com/mmp/toolstate/toolbar"
	"github.com/mmp/toolstate/util"

	"github.com/apenwarr/fixconsole"
)

var (
	defsFilename = flag.String("defs", "", "filename of JSON file with toolbar definitions (default: built-in toolbars)")
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	lintDefs     = flag.Bool("lint", false, "check the validity of the toolbar definitions and exit")
	dumpDefs     = flag.Bool("dump", false, "print the initial state of all toolbars and exit")
	watchDefs    = flag.Bool("watch", false, "reload the definitions file when it changes")
)

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	contents, err := loadDefinitions(*defsFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *defsFilename, err)
		os.Exit(1)
	}

	if *lintDefs {
		var e util.ErrorLogger
		lint(contents, &e)
		if e.HaveErrors() {
			e.PrintErrors(os.Stderr, lg)
			os.Exit(1)
		}
		fmt.Println("no errors found")
		return
	}

	if *dumpDefs {
		reg, err := buildRegistry(contents, nil, lg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer reg.Close()

		for _, name := range reg.Names() {
			tb, _ := reg.Lookup(name)
			fmt.Printf("%s:\n", name)
			godump.Dump(tb.Snapshot())
		}
		return
	}

	if *watchDefs && *defsFilename == "" {
		fmt.Fprintln(os.Stderr, "-watch requires -defs")
		os.Exit(1)
	}

	if err := runUI(contents, lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func loadDefinitions(filename string) ([]byte, error) {
	if filename == "" {
		return toolbar.DefaultDefinitionsJSON(), nil
	}
	return os.ReadFile(filename)
}

// buildRegistry creates a registry holding the toolbars defined in
// contents.
func buildRegistry(contents []byte, d toolbar.Dispatcher, lg *log.Logger) (*toolbar.Registry, error) {
	defs, err := toolbar.ParseDefinitions(contents)
	if err != nil {
		return nil, err
	}

	reg := toolbar.NewRegistry(lg, d)
	if err := reg.Build(defs); err != nil {
		return nil, err
	}
	return reg, nil
}

// lint checks the definitions and also that all of the shortcut actions
// they refer to have handlers.
func lint(contents []byte, e *util.ErrorLogger) {
	toolbar.CheckDefinitions(contents, e)
	if e.HaveErrors() {
		return
	}

	reg := actions.NewRegistry(nil)
	if err := reg.RegisterMap(demoHandlers(func(string) {})); err != nil {
		e.Error(err)
		return
	}

	defs, err := toolbar.ParseDefinitions(contents)
	if err != nil {
		e.Error(err)
		return
	}
	for _, def := range defs {
		e.Push(def.Name)
		for _, bd := range def.Batches {
			for _, opt := range bd.Options {
				if opt.ShortcutAction == "" {
					continue
				}
				if _, ok := reg.Lookup(opt.ShortcutAction); !ok {
					e.ErrorString("%s: no handler for action %q", opt.Name, opt.ShortcutAction)
				}
			}
		}
		e.Pop()
	}
}

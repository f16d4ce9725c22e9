// util/error.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmp/toolstate/log"
)

// ErrorLogger accumulates the problems found while checking a toolbar
// definitions file so that all of them can be reported at once. Push and
// Pop maintain the path to the item being checked, which prefixes each
// error, e.g. "View Settings / batch 0: ...".
type ErrorLogger struct {
	hierarchy []string
	errors    []string
}

func (e *ErrorLogger) Push(s string) { e.hierarchy = append(e.hierarchy, s) }

func (e *ErrorLogger) Pop() { e.hierarchy = e.hierarchy[:len(e.hierarchy)-1] }

func (e *ErrorLogger) ErrorString(s string, args ...any) {
	msg := fmt.Sprintf(s, args...)
	if len(e.hierarchy) > 0 {
		msg = strings.Join(e.hierarchy, " / ") + ": " + msg
	}
	e.errors = append(e.errors, msg)
}

func (e *ErrorLogger) Error(err error) {
	e.ErrorString("%s", err.Error())
}

func (e *ErrorLogger) HaveErrors() bool { return len(e.errors) > 0 }

func (e *ErrorLogger) Errors() []string { return e.errors }

func (e *ErrorLogger) String() string { return strings.Join(e.errors, "\n") }

// PrintErrors writes one error per line to w and also logs them if lg is
// non-nil.
func (e *ErrorLogger) PrintErrors(w io.Writer, lg *log.Logger) {
	for _, err := range e.errors {
		if lg != nil {
			lg.Error(err)
		}
		fmt.Fprintln(w, err)
	}
}

// CurrentDepth and CheckDepth are used together by checking functions:
//
//	defer e.CheckDepth(e.CurrentDepth())
//
// CheckDepth panics if the function returned with unbalanced Push/Pop
// calls.
func (e *ErrorLogger) CurrentDepth() int {
	if e == nil {
		return 0
	}
	return len(e.hierarchy)
}

func (e *ErrorLogger) CheckDepth(d int) {
	if e != nil && len(e.hierarchy) != d {
		panic(fmt.Sprintf("ErrorLogger: depth %d on return, expected %d", len(e.hierarchy), d))
	}
}

// log/stack.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const maxCallstackDepth = 8

// Callstack returns "file:line function" entries for the caller of the
// function that called Callstack, innermost first. It stops at main.main.
func Callstack() []string {
	var pcs [maxCallstackDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, n)
	for {
		f, more := frames.Next()
		if f.Function == "" {
			break
		}
		fn := strings.TrimPrefix(f.Function, "github.com/mmp/toolstate/")
		stack = append(stack, filepath.Base(f.File)+":"+strconv.Itoa(f.Line)+" "+fn)
		if !more || f.Function == "main.main" {
			break
		}
	}
	return stack
}

// toolbar/defs_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	"bytes"
	stdlog "log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/mmp/toolstate/util"
)

func TestParseDefinitions(t *testing.T) {
	defs, err := ParseDefinitions([]byte(`{
    "Zeta": { "label": "Z: ", "batches": [ { "options": [ { "name": "z" } ] } ] },
    "Alpha": { "icon_size": 16, "batches": [
        { "single_select": true, "options": [ { "name": "a" }, { "separator": true }, { "name": "b" } ] } ] }
}`))
	if err != nil {
		t.Fatal(err)
	}

	if len(defs) != 2 {
		t.Fatalf("got %d definitions, expected 2", len(defs))
	}
	// File order, not sorted order.
	if defs[0].Name != "Zeta" || defs[1].Name != "Alpha" {
		t.Errorf("got %q, %q, expected \"Zeta\", \"Alpha\"", defs[0].Name, defs[1].Name)
	}
	if defs[0].Label != "Z: " || defs[1].IconSize != 16 {
		t.Errorf("unexpected definitions %+v", defs)
	}
	if bd := defs[1].Batches[0]; !bd.SingleSelect || len(bd.Options) != 3 || !bd.Options[1].Separator {
		t.Errorf("unexpected batch %+v", bd)
	}
}

func TestParseDefinitionsErrors(t *testing.T) {
	for _, test := range []struct {
		json     string
		expected string
	}{
		{"{\n  \"A\": { \"batches\": [ }\n}", "line 2"},
		{`{ "A": { "icon_size": "big" } }`, "invalid for type int"},
		{`{ "A": { "batches": [ { "options": [ { "name": "a", "group_type": "radio" } ] } ] } }`, "unknown group type"},
	} {
		_, err := ParseDefinitions([]byte(test.json))
		if err == nil {
			t.Errorf("%s: expected error", test.json)
		} else if !strings.Contains(err.Error(), test.expected) {
			t.Errorf("got %q, expected it to contain %q", err.Error(), test.expected)
		}
	}
}

func TestDefaultDefinitions(t *testing.T) {
	var e util.ErrorLogger
	CheckDefinitions(DefaultDefinitionsJSON(), &e)
	if e.HaveErrors() {
		t.Errorf("built-in definitions have errors: %s", e.String())
	}

	var names []string
	for _, def := range DefaultDefinitions() {
		names = append(names, def.Name)
	}
	expected := []string{"Main Tools", "Selection Modes", "Editing Settings", "View Settings"}
	if !slices.Equal(names, expected) {
		t.Errorf("got %v, expected %v", names, expected)
	}
}

func TestCheckDefinitions(t *testing.T) {
	for _, test := range []struct {
		json     string
		expected []string
	}{
		{`{ "A": { "batchs": [] } }`, []string{`"batchs" is not an expected JSON object`}},
		{`{ "A": { "batches": [ { "options": [ { "name": "a", "group_type": "radio" } ] } ] } }`,
			[]string{"unexpected data format"}},
		{`{ "A": { "batches": [ { "options": [ { "name": "a" } ] } ] },
            "A": { "batches": [ { "options": [ { "name": "b" } ] } ] } }`,
			[]string{`toolbar "A" is defined more than once`}},
		{`{ "A": { "batches": [ { "options": [ { "name": "a" }, { "name": "a" } ] } ] } }`,
			[]string{"A / batch 0: a: duplicate option name"}},
		{`{ "A": { "batches": [] } }`, []string{"A: no batches defined"}},
		{`{ "A": { "batches": [
              { "options": [ { "name": "p" } ] },
              { "options": [ { "name": "c", "group_type": "conditional_clear", "conditional_on": "p" },
                             { "name": "d", "conditional_on": "c" } ] } ] } }`,
			[]string{`c: conditional parent "p" is not in the same batch`,
				`d: "conditional_on" given but group type is "none"`}},
	} {
		var e util.ErrorLogger
		CheckDefinitions([]byte(test.json), &e)
		s := e.String()
		for _, exp := range test.expected {
			if !strings.Contains(s, exp) {
				t.Errorf("%s: got errors %q, expected %q", test.json, s, exp)
			}
		}
	}
}

func TestCheckDefinitionsQuiet(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer func() {
		slog.SetDefault(old)
		stdlog.SetOutput(os.Stderr)
		stdlog.SetFlags(stdlog.LstdFlags)
	}()

	var e util.ErrorLogger
	CheckDefinitions([]byte(`{ "A": { "batches": [ { "options": [
            { "name": "c", "group_type": "conditional_clear", "conditional_on": "missing" } ] } ] } }`), &e)

	if !strings.Contains(e.String(), `c: conditional parent "missing" is not in the same batch`) {
		t.Errorf("got errors %q, expected missing parent to be reported", e.String())
	}
	if buf.Len() > 0 {
		t.Errorf("got log output %q, expected none", buf.String())
	}
}

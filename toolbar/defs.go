// toolbar/defs.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"

	"github.com/mmp/toolstate/util"
)

// ToolbarDef describes a toolbar in a definitions file. Definitions files
// are JSON objects keyed by toolbar name; toolbars are created in the
// order they appear in the file.
type ToolbarDef struct {
	Name     string     `json:"-"`
	Label    string     `json:"label,omitempty"`
	IconSize int        `json:"icon_size,omitempty"`
	Batches  []BatchDef `json:"batches"`
}

type BatchDef struct {
	SingleSelect bool     `json:"single_select,omitempty"`
	Options      []Option `json:"options"`
}

//go:embed resources/toolbars.json
var defaultToolbarsJSON []byte

// DefaultDefinitionsJSON returns the contents of the built-in definitions
// file.
func DefaultDefinitionsJSON() []byte {
	return defaultToolbarsJSON
}

// DefaultDefinitions returns the definitions of the editor's built-in
// toolbars.
func DefaultDefinitions() []ToolbarDef {
	defs, err := ParseDefinitions(defaultToolbarsJSON)
	if err != nil {
		panic(fmt.Sprintf("built-in toolbar definitions: %v", err))
	}
	return defs
}

// ParseDefinitions parses a definitions file and returns its toolbars in
// file order.
func ParseDefinitions(b []byte) ([]ToolbarDef, error) {
	var byName map[string]ToolbarDef
	if err := util.UnmarshalJSONBytes(b, &byName); err != nil {
		return nil, err
	}

	// encoding/json doesn't preserve the order of object keys.
	order := orderedmap.New()
	if err := json.Unmarshal(b, order); err != nil {
		return nil, err
	}

	defs := make([]ToolbarDef, 0, len(byName))
	seen := make(map[string]bool)
	for _, name := range order.Keys() {
		if seen[name] {
			continue
		}
		seen[name] = true
		def := byName[name]
		def.Name = name
		defs = append(defs, def)
	}
	return defs, nil
}

// CheckDefinitions reports all of the problems it finds with the given
// definitions file to e: JSON that doesn't match the expected types,
// duplicated toolbar or option keys, batches that can't be built, and
// conditional options whose parent isn't in the same batch.
func CheckDefinitions(b []byte, e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	util.CheckJSON[map[string]ToolbarDef](b, e)
	if e.HaveErrors() {
		return
	}

	for _, dup := range util.FindDuplicateJSONKeys(b) {
		if dup.Path == "" {
			e.ErrorString("toolbar %q is defined more than once", dup.Key)
		} else {
			e.ErrorString("%s: key %q is repeated", dup.Path, dup.Key)
		}
	}

	defs, err := ParseDefinitions(b)
	if err != nil {
		e.Error(err)
		return
	}

	for _, def := range defs {
		e.Push(def.Name)
		if len(def.Batches) == 0 {
			e.ErrorString("no batches defined")
		}
		for i, bd := range def.Batches {
			e.Push(fmt.Sprintf("batch %d", i))
			if _, err := newBatch(nil, bd.SingleSelect, bd.Options); err != nil {
				e.Error(err)
			}
			for _, opt := range bd.Options {
				if opt.ConditionalOn == "" {
					continue
				}
				if opt.GroupType != GroupConditionalPreserveState && opt.GroupType != GroupConditionalClearState {
					e.ErrorString("%s: \"conditional_on\" given but group type is %q", opt.Name, opt.GroupType)
				} else if !batchHas(bd.Options, opt.ConditionalOn) {
					e.ErrorString("%s: conditional parent %q is not in the same batch", opt.Name, opt.ConditionalOn)
				}
			}
			e.Pop()
		}
		e.Pop()
	}
}

func batchHas(opts []Option, name string) bool {
	for _, o := range opts {
		if !o.Separator && o.Name == name {
			return true
		}
	}
	return false
}

// util/json.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

///////////////////////////////////////////////////////////////////////////
// JSON

// DuplicateJSONKey represents a duplicate key found in JSON.
type DuplicateJSONKey struct {
	Path string // JSON path to the object holding the duplicate (e.g., "View Settings.batches")
	Key  string // The duplicate key name
}

// FindDuplicateJSONKeys scans JSON content and returns all duplicate
// object keys found; encoding/json silently keeps the last one, which
// makes for confusing definition files.
func FindDuplicateJSONKeys(data []byte) []DuplicateJSONKey {
	dec := json.NewDecoder(bytes.NewReader(data))
	var dups []DuplicateJSONKey

	// walk consumes one JSON value; path is the list of object keys
	// leading to it.
	var walk func(path []string) bool
	walk = func(path []string) bool {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			return true // scalar
		}

		switch delim {
		case '{':
			seen := make(map[string]bool)
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return false
				}
				key, _ := tok.(string)
				if seen[key] {
					dups = append(dups, DuplicateJSONKey{Path: strings.Join(path, "."), Key: key})
				}
				seen[key] = true
				if !walk(append(path, key)) {
					return false
				}
			}
		case '[':
			for dec.More() {
				if !walk(path) {
					return false
				}
			}
		}
		// Closing delimiter.
		_, err = dec.Token()
		return err == nil
	}
	walk(nil)

	return dups
}

// UnmarshalJSON reads all of r and then unmarshals it as with
// UnmarshalJSONBytes; we need the contents as an array of bytes so that
// errors can be reported with line and character positions.
func UnmarshalJSON[T any](r io.Reader, out *T) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// Unmarshal the bytes into the given type but go through some efforts to
// return useful error messages when the JSON is invalid...
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	decodeOffset := func(offset int64) (line, char int) {
		line, char = 1, 1
		for i := 0; i < int(offset) && i < len(b); i++ {
			if b[i] == '\n' {
				line++
				char = 1
			} else {
				char++
			}
		}
		return
	}

	switch jerr := err.(type) {
	case *json.SyntaxError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %v", line, char, jerr)

	case *json.UnmarshalTypeError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %s value for %s.%s invalid for type %s",
			line, char, jerr.Value, jerr.Struct, jerr.Field, jerr.Type.String())

	default:
		return err
	}
}

///////////////////////////////////////////////////////////////////////////

// CheckJSON checks whether the provided JSON is syntactically valid and
// then typechecks it with respect to the provided type T.
func CheckJSON[T any](contents []byte, e *ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	var items any
	if err := UnmarshalJSONBytes(contents, &items); err != nil {
		e.Error(err)
		return
	}

	ty := reflect.TypeOf((*T)(nil)).Elem()
	typeCheckJSON(items, ty, make(map[reflect.Type]map[string]reflect.Type), e)
}

// TypeCheckJSON returns a Boolean indicating whether the provided raw
// unmarshaled JSON values are type-compatible with the given type T.
func TypeCheckJSON[T any](json any) bool {
	var e ErrorLogger
	ty := reflect.TypeOf((*T)(nil)).Elem()
	typeCheckJSON(json, ty, make(map[reflect.Type]map[string]reflect.Type), &e)
	return !e.HaveErrors()
}

// JSONChecker is an interface that allows types that implement custom JSON
// unmarshalers to check whether raw unmarshled JSON types are compatible
// with their underlying type.
type JSONChecker interface {
	CheckJSON(json any) bool
}

var jsonCheckerType = reflect.TypeOf((*JSONChecker)(nil)).Elem()

func typeCheckJSON(json any, ty reflect.Type, fieldCache map[reflect.Type]map[string]reflect.Type, e *ErrorLogger) {
	for ty.Kind() == reflect.Ptr {
		ty = ty.Elem()
	}

	if ty.Implements(jsonCheckerType) || reflect.PointerTo(ty).Implements(jsonCheckerType) {
		checker := reflect.New(ty).Interface().(JSONChecker)
		if !checker.CheckJSON(json) {
			e.ErrorString("unexpected data format provided for object: %s", reflect.TypeOf(json))
		}
		return
	}

	mismatch := func() {
		e.ErrorString("unexpected data format provided for object: %s", reflect.TypeOf(json))
	}

	switch ty.Kind() {
	case reflect.Array, reflect.Slice:
		array, ok := json.([]any)
		if !ok {
			mismatch()
			return
		}
		for _, item := range array {
			typeCheckJSON(item, ty.Elem(), fieldCache, e)
		}

	case reflect.Map:
		m, ok := json.(map[string]any)
		if !ok {
			mismatch()
			return
		}
		for k, v := range m {
			e.Push(k)
			typeCheckJSON(v, ty.Elem(), fieldCache, e)
			e.Pop()
		}

	case reflect.Struct:
		items, ok := json.(map[string]any)
		if !ok {
			mismatch()
			return
		}

		// Map from the JSON name of each field to its type; cached per
		// struct type to avoid repeated calls to reflect.VisibleFields.
		fields, ok := fieldCache[ty]
		if !ok {
			fields = make(map[string]reflect.Type)
			for _, field := range reflect.VisibleFields(ty) {
				if jtag, ok := field.Tag.Lookup("json"); ok {
					if name, _, _ := strings.Cut(jtag, ","); name != "-" {
						fields[name] = field.Type
					}
				}
			}
			fieldCache[ty] = fields
		}

		for item, values := range items {
			if fty, ok := fields[item]; ok {
				e.Push(item)
				typeCheckJSON(values, fty, fieldCache, e)
				e.Pop()
			} else {
				e.ErrorString("The entry %q is not an expected JSON object. Is it misspelled?", item)
			}
		}

	case reflect.String:
		if _, ok := json.(string); !ok {
			mismatch()
		}

	case reflect.Bool:
		if _, ok := json.(bool); !ok {
			mismatch()
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if _, ok := json.(float64); !ok {
			mismatch()
		}
	}
}

// renderer/font.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"unicode/utf8"

	"github.com/mmp/IconFontCppHeaders"
)

// IconGlyph returns the FontAwesome glyph for the given icon identifier,
// e.g. "CheckSquare".
func IconGlyph(id string) (string, bool) {
	s, ok := IconFontCppHeaders.FontAwesome5.Icons[id]
	return s, ok
}

// FontAwesomeString is like IconGlyph but panics if the icon is unknown;
// it is meant for icons that are hard-coded in the program.
func FontAwesomeString(id string) string {
	s, ok := IconGlyph(id)
	if !ok {
		panic(fmt.Sprintf("%s: FA string unknown", id))
	}
	return s
}

// ButtonLabel returns the text to use for a toolbar button: the icon's
// glyph if the icon is a known FontAwesome icon, otherwise the icon
// identifier itself, or the option's name if it has no icon.
func ButtonLabel(icon, name string) string {
	if icon == "" {
		return name
	}
	if g, ok := IconGlyph(icon); ok {
		return g
	}
	return icon
}

// IconRunes returns the code points of the given icons, skipping unknown
// ones, so that only the icons that are used need to be added to the
// font atlas.
func IconRunes(icons []string) []rune {
	seen := make(map[rune]bool)
	var r []rune
	for _, id := range icons {
		if g, ok := IconGlyph(id); ok {
			ch, _ := utf8.DecodeRuneInString(g)
			if !seen[ch] {
				seen[ch] = true
				r = append(r, ch)
			}
		}
	}
	return r
}

// toolbar/errors.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package toolbar

import "errors"

// Configuration errors; these are only returned at the registration
// boundary. Lookup misses at runtime are logged, not returned.
var (
	ErrEmptyToolbarName = errors.New("toolbar name cannot be empty")
	ErrNilToolbar       = errors.New("toolbar cannot be nil")
	ErrEmptyOptionName  = errors.New("option name cannot be empty")
	ErrDuplicateOption  = errors.New("duplicate option name in batch")
	ErrInvalidIconIndex = errors.New("icon index out of range for icon cycle")
	ErrEmptyBatch       = errors.New("batch has no options")
	ErrUnknownGroupType = errors.New("unknown group type")
)

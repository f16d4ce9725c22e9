// util/generic.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/exp/constraints"
)

///////////////////////////////////////////////////////////////////////////
// TransientSet

// TransientSet holds a bounded number of keys, each of which is forgotten
// once the given time-to-live has passed. It is used to report a
// recurring problem once rather than every time it is encountered.
type TransientSet[K comparable] struct {
	lru *expirable.LRU[K, struct{}]
}

func NewTransientSet[K comparable](size int, ttl time.Duration) *TransientSet[K] {
	return &TransientSet[K]{lru: expirable.NewLRU[K, struct{}](size, nil, ttl)}
}

// Add adds the key to the set and returns true if it was not already
// present.
func (t *TransientSet[K]) Add(key K) bool {
	if t.Contains(key) {
		return false
	}
	t.lru.Add(key, struct{}{})
	return true
}

func (t *TransientSet[K]) Contains(key K) bool {
	// Peek (unlike Contains) checks for expiry.
	_, ok := t.lru.Peek(key)
	return ok
}

func (t *TransientSet[K]) Delete(key K) {
	t.lru.Remove(key)
}

func (t *TransientSet[K]) Len() int {
	return t.lru.Len()
}

///////////////////////////////////////////////////////////////////////////

// Select returns a if sel is true and b otherwise.
func Select[T any](sel bool, a, b T) T {
	if sel {
		return a
	}
	return b
}

// SortedMapKeys returns the keys of the given map, sorted from low to high.
func SortedMapKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

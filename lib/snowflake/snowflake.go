// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package snowflake provides the 64-bit time-sortable identifier used
// for every referenceable entity on the platform. Snowflakes travel on
// the wire as decimal strings (JavaScript clients cannot represent the
// full 64-bit range as numbers) and are held in memory as uint64.
package snowflake

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

// Epoch is the platform epoch: the first second of 2015 UTC, in
// milliseconds since the Unix epoch. The top 42 bits of a snowflake
// count milliseconds from this instant.
const Epoch int64 = 1420070400000

// ID is a snowflake identifier. The zero value is not a valid ID on
// the wire; use IsZero to check.
type ID uint64

// Parse validates and converts a wire-format decimal string into an ID.
func Parse(raw string) (ID, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty snowflake")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", raw, err)
	}
	return ID(n), nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("snowflake.MustParse(%q): %v", raw, err))
	}
	return id
}

// FromTime returns the smallest ID whose embedded timestamp equals t.
// Useful as an exclusive lower bound when filtering entities by
// creation time.
func FromTime(t time.Time) ID {
	return ID(uint64(t.UnixMilli()-Epoch) << 22)
}

// String returns the wire-format decimal representation.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsZero reports whether the ID is the zero value (uninitialized).
func (id ID) IsZero() bool { return id == 0 }

// Time returns the creation instant embedded in the ID.
func (id ID) Time() time.Time {
	ms := int64(id>>22) + Epoch
	return time.UnixMilli(ms).UTC()
}

// MarshalText implements encoding.TextMarshaler. IDs serialize as
// decimal strings in both JSON and CBOR.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// SortedKeys returns the keys of m in ascending numeric order. Map
// iteration order is randomized in Go; anything that needs a stable
// walk over an ID-keyed mapping (deterministic encodes, diffable
// output) goes through this.
func SortedKeys[V any](m map[ID]V) []ID {
	keys := make([]ID, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

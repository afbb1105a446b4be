// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package optional provides the three-state value wrapper used
// throughout the wire model. JSON on this platform distinguishes a
// field that was never sent ("leave the cached value alone") from a
// field sent as null ("clear the value") from a field with a concrete
// value. A nullable Go type collapses the first two; Value keeps all
// three apart.
//
// The same type serves as the "unspecified" sentinel for decode-time
// context parameters: a caller passing optional.Null[T]() is
// deliberately providing null, which is not the same as passing
// optional.Undefined[T]() and providing nothing.
package optional

import "fmt"

// Value is a three-state wrapper: undefined (never sent), null
// (sent as explicitly empty), or present with a concrete value.
// The zero Value is undefined.
type Value[T any] struct {
	state state
	value T
}

type state uint8

const (
	stateUndefined state = iota
	stateNull
	statePresent
)

// Undefined returns the "never sent / not provided" Value.
func Undefined[T any]() Value[T] { return Value[T]{} }

// Null returns the "sent as explicitly empty" Value.
func Null[T any]() Value[T] { return Value[T]{state: stateNull} }

// Present wraps a concrete value.
func Present[T any](v T) Value[T] {
	return Value[T]{state: statePresent, value: v}
}

// IsUndefined reports whether the value was never provided.
func (v Value[T]) IsUndefined() bool { return v.state == stateUndefined }

// IsNull reports whether the value was provided as explicit null.
func (v Value[T]) IsNull() bool { return v.state == stateNull }

// IsPresent reports whether a concrete value is available.
func (v Value[T]) IsPresent() bool { return v.state == statePresent }

// Get returns the concrete value and whether one is present. For null
// and undefined it returns the zero value and false.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.state == statePresent
}

// MustGet returns the concrete value, panicking if the state is null
// or undefined. Use where presence has already been established.
func (v Value[T]) MustGet() T {
	if v.state != statePresent {
		panic(fmt.Sprintf("optional: MustGet on %s value", v.stateName()))
	}
	return v.value
}

// Or returns the concrete value if present, otherwise fallback. Null
// and undefined both take the fallback; callers that care about the
// difference must check IsNull first.
func (v Value[T]) Or(fallback T) T {
	if v.state == statePresent {
		return v.value
	}
	return fallback
}

// Map converts the concrete value through f, preserving the null and
// undefined states unchanged.
func Map[T, U any](v Value[T], f func(T) U) Value[U] {
	switch v.state {
	case statePresent:
		return Present(f(v.value))
	case stateNull:
		return Null[U]()
	default:
		return Undefined[U]()
	}
}

// String implements fmt.Stringer for diagnostics and test failure
// messages.
func (v Value[T]) String() string {
	if v.state == statePresent {
		return fmt.Sprintf("%v", v.value)
	}
	return "<" + v.stateName() + ">"
}

func (v Value[T]) stateName() string {
	switch v.state {
	case stateNull:
		return "null"
	case statePresent:
		return "present"
	default:
		return "undefined"
	}
}

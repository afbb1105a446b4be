// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package optional

import "testing"

func TestZeroValueIsUndefined(t *testing.T) {
	var v Value[int]
	if !v.IsUndefined() {
		t.Error("zero Value is not undefined")
	}
	if v.IsNull() || v.IsPresent() {
		t.Error("zero Value claims null or present")
	}
}

func TestThreeStatesAreDistinct(t *testing.T) {
	undefined := Undefined[string]()
	null := Null[string]()
	present := Present("")

	if undefined == null || undefined == present || null == present {
		t.Error("states compare equal")
	}
	if !null.IsNull() {
		t.Error("Null is not null")
	}
	if !present.IsPresent() {
		t.Error("Present(zero) is not present")
	}
}

func TestGet(t *testing.T) {
	if v, ok := Present(42).Get(); !ok || v != 42 {
		t.Errorf("Present(42).Get() = %d, %v", v, ok)
	}
	if _, ok := Null[int]().Get(); ok {
		t.Error("Null.Get() reported present")
	}
	if _, ok := Undefined[int]().Get(); ok {
		t.Error("Undefined.Get() reported present")
	}
}

func TestOr(t *testing.T) {
	if got := Present(1).Or(9); got != 1 {
		t.Errorf("Present(1).Or(9) = %d", got)
	}
	if got := Null[int]().Or(9); got != 9 {
		t.Errorf("Null.Or(9) = %d", got)
	}
	if got := Undefined[int]().Or(9); got != 9 {
		t.Errorf("Undefined.Or(9) = %d", got)
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet on undefined did not panic")
		}
	}()
	Undefined[int]().MustGet()
}

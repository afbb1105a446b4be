// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload provides typed access to the untyped JSON objects
// the platform sends and receives. An Object is the payload exactly as
// it came off the wire; the getters on it are where the wire's loose
// typing is converted into concrete Go values, and where every shape
// violation turns into a MalformedPayloadError naming the offending
// field.
//
// Every getter comes in two forms. The plain form is for fields the
// target entity requires: absence is itself a malformation. The
// Optional form returns an optional.Value so the caller can tell a
// field that was never sent from one sent as explicit null.
package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// Object is an untyped wire payload: string keys mapping to
// heterogeneous JSON values. Numbers inside an Object parsed by this
// package are json.Number, never float64, so 64-bit identifiers and
// permission bitfields survive intact.
type Object map[string]any

// Has reports whether key exists in the payload, regardless of
// whether its value is null.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the required string field key.
func (o Object) String(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", missingField(key)
	}
	return asString(key, v)
}

// OptionalString returns the string field key, distinguishing absent
// from null from present.
func (o Object) OptionalString(key string) (optional.Value[string], error) {
	return getOptional(o, key, asString)
}

// Bool returns the required boolean field key.
func (o Object) Bool(key string) (bool, error) {
	v, ok := o[key]
	if !ok {
		return false, missingField(key)
	}
	return asBool(key, v)
}

// OptionalBool returns the boolean field key, distinguishing absent
// from null from present.
func (o Object) OptionalBool(key string) (optional.Value[bool], error) {
	return getOptional(o, key, asBool)
}

// Int returns the required integer field key.
func (o Object) Int(key string) (int, error) {
	v, ok := o[key]
	if !ok {
		return 0, missingField(key)
	}
	return asInt(key, v)
}

// OptionalInt returns the integer field key, distinguishing absent
// from null from present.
func (o Object) OptionalInt(key string) (optional.Value[int], error) {
	return getOptional(o, key, asInt)
}

// Int64 returns the required 64-bit integer field key.
func (o Object) Int64(key string) (int64, error) {
	v, ok := o[key]
	if !ok {
		return 0, missingField(key)
	}
	return asInt64(key, v)
}

// OptionalInt64 returns the 64-bit integer field key, distinguishing
// absent from null from present.
func (o Object) OptionalInt64(key string) (optional.Value[int64], error) {
	return getOptional(o, key, asInt64)
}

// Uint64 returns the required unsigned 64-bit field key. The wire
// sends bitfields either as JSON numbers or as decimal strings; both
// are accepted.
func (o Object) Uint64(key string) (uint64, error) {
	v, ok := o[key]
	if !ok {
		return 0, missingField(key)
	}
	return asUint64(key, v)
}

// OptionalUint64 returns the unsigned 64-bit field key, distinguishing
// absent from null from present.
func (o Object) OptionalUint64(key string) (optional.Value[uint64], error) {
	return getOptional(o, key, asUint64)
}

// Snowflake returns the required snowflake field key. Snowflakes
// travel as decimal strings.
func (o Object) Snowflake(key string) (snowflake.ID, error) {
	v, ok := o[key]
	if !ok {
		return 0, missingField(key)
	}
	return asSnowflake(key, v)
}

// OptionalSnowflake returns the snowflake field key, distinguishing
// absent from null from present.
func (o Object) OptionalSnowflake(key string) (optional.Value[snowflake.ID], error) {
	return getOptional(o, key, asSnowflake)
}

// Time returns the required ISO-8601 timestamp field key.
func (o Object) Time(key string) (time.Time, error) {
	v, ok := o[key]
	if !ok {
		return time.Time{}, missingField(key)
	}
	return asTime(key, v)
}

// OptionalTime returns the timestamp field key, distinguishing absent
// from null from present.
func (o Object) OptionalTime(key string) (optional.Value[time.Time], error) {
	return getOptional(o, key, asTime)
}

// Object returns the required nested object field key.
func (o Object) Object(key string) (Object, error) {
	v, ok := o[key]
	if !ok {
		return nil, missingField(key)
	}
	return asObject(key, v)
}

// OptionalObject returns the nested object field key, distinguishing
// absent from null from present.
func (o Object) OptionalObject(key string) (optional.Value[Object], error) {
	return getOptional(o, key, asObject)
}

// Array returns the required array field key with elements left
// untyped.
func (o Object) Array(key string) ([]any, error) {
	v, ok := o[key]
	if !ok {
		return nil, missingField(key)
	}
	return asArray(key, v)
}

// OptionalArray returns the array field key, distinguishing absent
// from null from present.
func (o Object) OptionalArray(key string) (optional.Value[[]any], error) {
	return getOptional(o, key, asArray)
}

// ObjectArray returns the required array field key with every element
// converted to an Object. A non-object element is a malformation.
func (o Object) ObjectArray(key string) ([]Object, error) {
	raw, err := o.Array(key)
	if err != nil {
		return nil, err
	}
	return objectElements(key, raw)
}

// OptionalObjectArray returns the array-of-objects field key,
// distinguishing absent from null from present.
func (o Object) OptionalObjectArray(key string) (optional.Value[[]Object], error) {
	raw, err := o.OptionalArray(key)
	if err != nil || !raw.IsPresent() {
		return optional.Value[[]Object]{}, err
	}
	if raw.IsNull() {
		return optional.Null[[]Object](), nil
	}
	elements, err := objectElements(key, raw.MustGet())
	if err != nil {
		return optional.Value[[]Object]{}, err
	}
	return optional.Present(elements), nil
}

// StringArray returns the required array field key with every element
// converted to a string.
func (o Object) StringArray(key string) ([]string, error) {
	raw, err := o.Array(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, element := range raw {
		s, err := asString(key, element)
		if err != nil {
			return nil, elementError(key, i, err)
		}
		out[i] = s
	}
	return out, nil
}

// IntArray returns the required array field key with every element
// converted to an int.
func (o Object) IntArray(key string) ([]int, error) {
	raw, err := o.Array(key)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(raw))
	for i, element := range raw {
		n, err := asInt(key, element)
		if err != nil {
			return nil, elementError(key, i, err)
		}
		out[i] = n
	}
	return out, nil
}

// SnowflakeArray returns the required array field key with every
// element converted to a snowflake ID.
func (o Object) SnowflakeArray(key string) ([]snowflake.ID, error) {
	raw, err := o.Array(key)
	if err != nil {
		return nil, err
	}
	out := make([]snowflake.ID, len(raw))
	for i, element := range raw {
		id, err := asSnowflake(key, element)
		if err != nil {
			return nil, elementError(key, i, err)
		}
		out[i] = id
	}
	return out, nil
}

// getOptional implements the absent/null/present split shared by
// every Optional getter.
func getOptional[T any](o Object, key string, convert func(string, any) (T, error)) (optional.Value[T], error) {
	v, ok := o[key]
	if !ok {
		return optional.Undefined[T](), nil
	}
	if v == nil {
		return optional.Null[T](), nil
	}
	converted, err := convert(key, v)
	if err != nil {
		return optional.Undefined[T](), err
	}
	return optional.Present(converted), nil
}

func objectElements(key string, raw []any) ([]Object, error) {
	out := make([]Object, len(raw))
	for i, element := range raw {
		obj, err := asObject(key, element)
		if err != nil {
			return nil, elementError(key, i, err)
		}
		out[i] = obj
	}
	return out, nil
}

// Conversion functions. Each receives the field name purely for error
// reporting; a required field that is present-but-null is a type
// mismatch from the required getter's point of view.

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string", v)
	}
	return s, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, "boolean", v)
	}
	return b, nil
}

func asInt(key string, v any) (int, error) {
	n, err := asInt64(key, v)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, &MalformedPayloadError{Field: key, Reason: fmt.Sprintf("integer %d out of range", n)}
	}
	return int(n), nil
}

func asInt64(key string, v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, &MalformedPayloadError{Field: key, Reason: "not an integer", Err: err}
		}
		return parsed, nil
	case float64:
		// Objects built in-process (tests, encode helpers) may carry
		// plain Go numbers rather than json.Number.
		if n != math.Trunc(n) {
			return 0, wrongType(key, "integer", v)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, wrongType(key, "integer", v)
	}
}

func asUint64(key string, v any) (uint64, error) {
	switch n := v.(type) {
	case string:
		id, err := snowflake.Parse(n)
		if err != nil {
			return 0, &MalformedPayloadError{Field: key, Reason: "not an unsigned integer", Err: err}
		}
		return uint64(id), nil
	case uint64:
		return n, nil
	default:
		signed, err := asInt64(key, v)
		if err != nil {
			return 0, wrongType(key, "unsigned integer", v)
		}
		if signed < 0 {
			return 0, &MalformedPayloadError{Field: key, Reason: fmt.Sprintf("negative value %d", signed)}
		}
		return uint64(signed), nil
	}
}

func asSnowflake(key string, v any) (snowflake.ID, error) {
	s, ok := v.(string)
	if !ok {
		return 0, wrongType(key, "snowflake string", v)
	}
	id, err := snowflake.Parse(s)
	if err != nil {
		return 0, &MalformedPayloadError{Field: key, Reason: "invalid snowflake", Err: err}
	}
	return id, nil
}

func asTime(key string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, wrongType(key, "ISO-8601 timestamp", v)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &MalformedPayloadError{Field: key, Reason: "invalid timestamp", Err: err}
	}
	return t, nil
}

func asObject(key string, v any) (Object, error) {
	switch obj := v.(type) {
	case Object:
		return obj, nil
	case map[string]any:
		return Object(obj), nil
	default:
		return nil, wrongType(key, "object", v)
	}
}

func asArray(key string, v any) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, wrongType(key, "array", v)
	}
	return arr, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// reader is a sticky-error view over one payload during one entity
// decode. The first getter that fails latches the error; subsequent
// getters return zero values without reading, and the decode function
// checks once at the end. This keeps decode bodies declarative while
// preserving the all-or-nothing contract: a latched error always
// aborts the entire entity.
type reader struct {
	entity  string
	obj     payload.Object
	failure error
}

func newReader(entity string, obj payload.Object) *reader {
	return &reader{entity: entity, obj: obj}
}

// err returns the latched failure, stamped with the entity kind.
func (r *reader) err() error {
	return annotate(r.entity, r.failure)
}

// fail latches err if no earlier failure did.
func (r *reader) fail(err error) {
	if r.failure == nil && err != nil {
		r.failure = err
	}
}

func sticky[T any](r *reader, get func(string) (T, error), key string) T {
	var zero T
	if r.failure != nil {
		return zero
	}
	v, err := get(key)
	if err != nil {
		r.fail(err)
		return zero
	}
	return v
}

func (r *reader) string(key string) string { return sticky(r, r.obj.String, key) }
func (r *reader) optString(key string) optional.Value[string] {
	return sticky(r, r.obj.OptionalString, key)
}

func (r *reader) bool(key string) bool { return sticky(r, r.obj.Bool, key) }
func (r *reader) optBool(key string) optional.Value[bool] {
	return sticky(r, r.obj.OptionalBool, key)
}

func (r *reader) int(key string) int { return sticky(r, r.obj.Int, key) }
func (r *reader) optInt(key string) optional.Value[int] {
	return sticky(r, r.obj.OptionalInt, key)
}

func (r *reader) uint64(key string) uint64 { return sticky(r, r.obj.Uint64, key) }
func (r *reader) optUint64(key string) optional.Value[uint64] {
	return sticky(r, r.obj.OptionalUint64, key)
}

func (r *reader) snowflake(key string) snowflake.ID { return sticky(r, r.obj.Snowflake, key) }
func (r *reader) optSnowflake(key string) optional.Value[snowflake.ID] {
	return sticky(r, r.obj.OptionalSnowflake, key)
}

func (r *reader) time(key string) time.Time { return sticky(r, r.obj.Time, key) }
func (r *reader) optTime(key string) optional.Value[time.Time] {
	return sticky(r, r.obj.OptionalTime, key)
}

func (r *reader) object(key string) payload.Object { return sticky(r, r.obj.Object, key) }
func (r *reader) optObject(key string) optional.Value[payload.Object] {
	return sticky(r, r.obj.OptionalObject, key)
}

func (r *reader) objectArray(key string) []payload.Object { return sticky(r, r.obj.ObjectArray, key) }
func (r *reader) optObjectArray(key string) optional.Value[[]payload.Object] {
	return sticky(r, r.obj.OptionalObjectArray, key)
}

func (r *reader) stringArray(key string) []string { return sticky(r, r.obj.StringArray, key) }
func (r *reader) snowflakeArray(key string) []snowflake.ID {
	return sticky(r, r.obj.SnowflakeArray, key)
}

// seconds reads an integer field expressed in whole seconds.
func (r *reader) seconds(key string) time.Duration {
	return time.Duration(r.int(key)) * time.Second
}

// milliseconds reads a required integer field expressed in whole
// milliseconds since the Unix epoch.
func (r *reader) milliseconds(key string) time.Time {
	return time.UnixMilli(sticky(r, r.obj.Int64, key)).UTC()
}

// optMilliseconds reads an optional integer field expressed in whole
// milliseconds since the Unix epoch.
func (r *reader) optMilliseconds(key string) optional.Value[time.Time] {
	return millisecondsValue(r.optInt64(key))
}

// stickyMilliseconds is optMilliseconds against a nested object.
func stickyMilliseconds(r *reader, obj payload.Object, key string) optional.Value[time.Time] {
	return millisecondsValue(sticky(r, obj.OptionalInt64, key))
}

func millisecondsValue(v optional.Value[int64]) optional.Value[time.Time] {
	if ms, ok := v.Get(); ok {
		return optional.Present(time.UnixMilli(ms).UTC())
	}
	if v.IsNull() {
		return optional.Null[time.Time]()
	}
	return optional.Undefined[time.Time]()
}

func (r *reader) optInt64(key string) optional.Value[int64] {
	return sticky(r, r.obj.OptionalInt64, key)
}

// decodeNested runs a nested entity decode, latching its failure.
// The zero result of a failed nested decode is never observed because
// the caller checks err() before returning.
func decodeNested[T any](r *reader, obj payload.Object, decode func(payload.Object) (T, error)) T {
	var zero T
	if r.failure != nil {
		return zero
	}
	v, err := decode(obj)
	if err != nil {
		r.fail(err)
		return zero
	}
	return v
}

// decodeNestedOpt applies decodeNested through an optional object:
// absent stays undefined, null stays null, present is decoded.
func decodeNestedOpt[T any](r *reader, v optional.Value[payload.Object], decode func(payload.Object) (T, error)) optional.Value[T] {
	if obj, ok := v.Get(); ok {
		return optional.Present(decodeNested(r, obj, decode))
	}
	if v.IsNull() {
		return optional.Null[T]()
	}
	return optional.Undefined[T]()
}

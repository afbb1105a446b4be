// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"errors"
	"fmt"
)

// MalformedPayloadError reports a payload whose shape does not match
// the schema of the entity being decoded: a wrong JSON type, a missing
// required field, or an invalid enumeration value. It aborts the whole
// decode of that entity; no partially constructed entity is ever
// returned alongside one.
//
// Callers use errors.As to extract the structured information:
//
//	var malformed *payload.MalformedPayloadError
//	if errors.As(err, &malformed) {
//	    log.Printf("bad %s payload: field %s", malformed.Entity, malformed.Field)
//	}
type MalformedPayloadError struct {
	// Entity is the entity kind being decoded ("user", "guild text
	// channel", ...). Filled in by the decode operation; empty while
	// the error is in flight inside this package.
	Entity string
	// Field is the payload key whose value violated the schema.
	Field string
	// Reason describes the violation.
	Reason string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *MalformedPayloadError) Error() string {
	entity := e.Entity
	if entity == "" {
		entity = "payload"
	}
	msg := fmt.Sprintf("malformed %s: field %q: %s", entity, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// IsMalformed reports whether err is (or wraps) a MalformedPayloadError.
func IsMalformed(err error) bool {
	var malformed *MalformedPayloadError
	return errors.As(err, &malformed)
}

func missingField(key string) *MalformedPayloadError {
	return &MalformedPayloadError{Field: key, Reason: "required field absent"}
}

func wrongType(key, want string, got any) *MalformedPayloadError {
	if got == nil {
		return &MalformedPayloadError{Field: key, Reason: fmt.Sprintf("expected %s, got null", want)}
	}
	return &MalformedPayloadError{Field: key, Reason: fmt.Sprintf("expected %s, got %T", want, got)}
}

func elementError(key string, index int, err error) error {
	var malformed *MalformedPayloadError
	if errors.As(err, &malformed) {
		return &MalformedPayloadError{
			Field:  fmt.Sprintf("%s[%d]", key, index),
			Reason: malformed.Reason,
			Err:    malformed.Err,
		}
	}
	return err
}

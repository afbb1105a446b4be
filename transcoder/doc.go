// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package transcoder converts the platform's JSON wire payloads into
// the typed entities of package model, and a small set of entities
// back into payloads. It is a pure function library: every operation
// reads only its arguments, allocates only its result, and retains
// nothing, so arbitrarily many calls may run in parallel with no
// coordination.
//
// The wire format is context-dependent: the same logical entity
// arrives with different field sets depending on whether it came from
// a REST response, a gateway event, or nested inside an aggregate.
// Operations whose target shape needs a field some delivery contexts
// omit take that field as an optional context parameter. The
// precedence rule is fixed: a context value the caller actually
// supplies always beats the same-named payload field; when neither
// exists the operation fails with MissingContextError.
//
// Failures come in exactly two classes. MissingContextError means the
// caller invoked the wrong decode path or forgot required context: an
// integration bug, surfaced so it can be fixed, never retried.
// payload.MalformedPayloadError means the payload's shape does not
// match the entity's schema; the decode aborts and returns nothing.
// No operation ever returns a partially populated entity.
package transcoder

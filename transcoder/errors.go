// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"errors"
	"fmt"

	"github.com/cadenza-project/cadenza/lib/payload"
)

// MissingContextError reports that a field the target entity requires
// (a guild ID, a member, a user) was absent from the payload and not
// supplied as a context parameter. It is the only error class in the
// decode surface a caller is expected to branch on:
//
//	var missing *transcoder.MissingContextError
//	if errors.As(err, &missing) {
//	    // wrong decode path or forgotten context parameter
//	}
type MissingContextError struct {
	// Entity is the entity kind being decoded.
	Entity string
	// Field is the identity field that could not be resolved.
	Field string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("decode %s: field %q absent from payload and not supplied as context", e.Entity, e.Field)
}

// IsMissingContext reports whether err is (or wraps) a
// MissingContextError.
func IsMissingContext(err error) bool {
	var missing *MissingContextError
	return errors.As(err, &missing)
}

// annotate stamps the entity kind onto an error raised while decoding
// it, so the failure names both the entity and the field. Errors that
// already carry an entity (from a nested decode) keep theirs.
func annotate(entity string, err error) error {
	if err == nil {
		return nil
	}
	var malformed *payload.MalformedPayloadError
	if errors.As(err, &malformed) && malformed.Entity == "" {
		malformed.Entity = entity
	}
	return err
}

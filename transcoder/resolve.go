// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// resolveGuildID applies the context-injection precedence rule to a
// guild identifier: a caller-supplied value wins outright, the
// payload's guild_id field is the fallback, and having neither is a
// MissingContextError. A malformed guild_id field in the payload is
// still a malformation even when context was not supplied.
func resolveGuildID(entity string, p payload.Object, guildID optional.Value[snowflake.ID]) (snowflake.ID, error) {
	if id, ok := guildID.Get(); ok {
		return id, nil
	}
	fromPayload, err := p.OptionalSnowflake("guild_id")
	if err != nil {
		return 0, annotate(entity, err)
	}
	if id, ok := fromPayload.Get(); ok {
		return id, nil
	}
	return 0, &MissingContextError{Entity: entity, Field: "guild_id"}
}

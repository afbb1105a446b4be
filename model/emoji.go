// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// Emoji is the sealed emoji variant family. The wire discriminates by
// presence of an "id" field: absent means a literal unicode emoji,
// present means a guild-uploaded custom emoji.
type Emoji interface {
	emoji()
}

// UnicodeEmoji is a built-in emoji identified by its literal unicode
// string. It has no snowflake ID.
type UnicodeEmoji struct {
	// Name is the literal unicode codepoint sequence (e.g. "🔥").
	Name string
}

func (UnicodeEmoji) emoji() {}

// CustomEmoji is a guild-uploaded emoji as it appears outside guild
// context, in reactions and activities, where only id, name, and the
// animated flag travel.
type CustomEmoji struct {
	ID snowflake.ID
	// Name may be null in reaction deliveries where the emoji's
	// source guild is no longer visible.
	Name       optional.Value[string]
	IsAnimated bool
}

func (CustomEmoji) emoji() {}

// KnownCustomEmoji is a custom emoji delivered through a guild-scoped
// listing, which additionally carries ownership and availability
// metadata. The guild ID is never on the wire here; it is injected
// from the delivery context.
type KnownCustomEmoji struct {
	CustomEmoji
	GuildID snowflake.ID
	// RoleIDs restricts use of the emoji to the listed roles; empty
	// means unrestricted.
	RoleIDs []snowflake.ID
	// User is the uploader, present when the listing endpoint had
	// permission to see it.
	User             optional.Value[User]
	IsColonsRequired bool
	IsManaged        bool
	// IsAvailable is false when the emoji is unusable, e.g. after a
	// boost-tier downgrade.
	IsAvailable bool
}

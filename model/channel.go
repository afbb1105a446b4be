// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// ChannelType is the wire discriminant that selects a channel variant.
// Values outside the known set decode to the generic PartialChannel;
// they are not an error, so new channel kinds the platform ships do
// not break old decoders.
type ChannelType int

const (
	ChannelTypeGuildText        ChannelType = 0
	ChannelTypePrivateText      ChannelType = 1
	ChannelTypeGuildVoice       ChannelType = 2
	ChannelTypeGroupPrivateText ChannelType = 3
	ChannelTypeGuildCategory    ChannelType = 4
	ChannelTypeGuildNews        ChannelType = 5
	ChannelTypeGuildStore       ChannelType = 6
)

// String returns the human-readable name of the channel type.
func (t ChannelType) String() string {
	switch t {
	case ChannelTypeGuildText:
		return "guild_text"
	case ChannelTypePrivateText:
		return "private_text"
	case ChannelTypeGuildVoice:
		return "guild_voice"
	case ChannelTypeGroupPrivateText:
		return "group_private_text"
	case ChannelTypeGuildCategory:
		return "guild_category"
	case ChannelTypeGuildNews:
		return "guild_news"
	case ChannelTypeGuildStore:
		return "guild_store"
	default:
		return "unknown"
	}
}

// PermissionOverwriteType says what kind of subject an overwrite
// applies to.
type PermissionOverwriteType string

const (
	PermissionOverwriteTypeRole   PermissionOverwriteType = "role"
	PermissionOverwriteTypeMember PermissionOverwriteType = "member"
)

// PermissionOverwrite grants and denies permissions for one role or
// member within a channel.
type PermissionOverwrite struct {
	// ID is the role or user the overwrite applies to, per Type.
	ID    snowflake.ID
	Type  PermissionOverwriteType
	Allow Permission
	Deny  Permission
}

// Unset returns the permissions the overwrite leaves untouched.
func (o PermissionOverwrite) Unset() Permission {
	return ^(o.Allow | o.Deny)
}

// Channel is the sealed channel variant family. Every variant embeds
// PartialChannel, so Partial always yields the common shape; consumers
// pick a variant with a type switch.
type Channel interface {
	// Partial returns the common id/name/type shape shared by every
	// variant.
	Partial() PartialChannel
}

// PartialChannel is the common shape every channel delivery carries.
// It is also the decode result for unrecognized channel types.
type PartialChannel struct {
	ID   snowflake.ID
	Name optional.Value[string]
	Type ChannelType
}

// Partial implements Channel.
func (c PartialChannel) Partial() PartialChannel { return c }

// PrivateTextChannel is a direct-message channel between the current
// user and one recipient.
type PrivateTextChannel struct {
	PartialChannel
	LastMessageID optional.Value[snowflake.ID]
	// Recipients maps user ID to user for everyone in the channel
	// other than the current user.
	Recipients map[snowflake.ID]User
}

// GroupPrivateTextChannel is a group direct-message channel. Unlike a
// one-to-one DM it has an owner and may have a name and icon.
type GroupPrivateTextChannel struct {
	PrivateTextChannel
	OwnerID  snowflake.ID
	IconHash optional.Value[string]
	// Nicknames maps user ID to the per-channel nickname, for
	// recipients that set one.
	Nicknames map[snowflake.ID]string
	// ApplicationID is set when a bot created the channel.
	ApplicationID optional.Value[snowflake.ID]
}

// GuildChannel is the common shape of every guild-scoped variant. It
// is always embedded, never a decode result of its own.
type GuildChannel struct {
	PartialChannel
	// GuildID is resolved from the payload's guild_id field or from
	// caller-supplied context; aggregate deliveries omit it
	// per-channel.
	GuildID              snowflake.ID
	Position             int
	PermissionOverwrites map[snowflake.ID]PermissionOverwrite
	IsNSFW               optional.Value[bool]
	// ParentID is the category the channel sits under; null means
	// top level.
	ParentID optional.Value[snowflake.ID]
}

// GuildCategory groups other guild channels. It carries no fields
// beyond the common guild-channel shape.
type GuildCategory struct {
	GuildChannel
}

// GuildTextChannel is a text channel in a guild.
type GuildTextChannel struct {
	GuildChannel
	Topic         optional.Value[string]
	LastMessageID optional.Value[snowflake.ID]
	// RateLimitPerUser is the slowmode interval; zero means no
	// slowmode.
	RateLimitPerUser time.Duration
	LastPinTimestamp optional.Value[time.Time]
}

// GuildNewsChannel is an announcement channel other guilds can follow.
type GuildNewsChannel struct {
	GuildChannel
	Topic            optional.Value[string]
	LastMessageID    optional.Value[snowflake.ID]
	LastPinTimestamp optional.Value[time.Time]
}

// GuildStoreChannel is a store-page channel. It carries no fields
// beyond the common guild-channel shape.
type GuildStoreChannel struct {
	GuildChannel
}

// GuildVoiceChannel is a voice channel in a guild.
type GuildVoiceChannel struct {
	GuildChannel
	// Bitrate is the audio bitrate in bits per second.
	Bitrate int
	// UserLimit caps concurrent connections; zero means unlimited.
	UserLimit int
}

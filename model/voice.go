// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// VoiceState is a member's connection state in a guild's voice
// channels.
type VoiceState struct {
	// GuildID and Member are each resolved from the payload or from
	// caller-supplied context; aggregate deliveries omit both.
	GuildID snowflake.ID
	// ChannelID is null when the state describes a disconnect.
	ChannelID optional.Value[snowflake.ID]
	UserID    snowflake.ID
	Member    Member
	SessionID string
	// IsGuildDeafened and IsGuildMuted are server-side settings;
	// the self variants are the member's own toggles.
	IsGuildDeafened bool
	IsGuildMuted    bool
	IsSelfDeafened  bool
	IsSelfMuted     bool
	IsStreaming     bool
	IsVideoEnabled  bool
	IsSuppressed    bool
}

// VoiceRegion is a voice server region listing.
type VoiceRegion struct {
	// ID is the region's string identifier (e.g. "rotterdam"), not a
	// snowflake.
	ID                string
	Name              string
	IsVIP             bool
	IsOptimalLocation bool
	IsDeprecated      bool
	IsCustom          bool
}

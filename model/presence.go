// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// Status is a user's presence status on one client class.
type Status string

const (
	StatusOnline  Status = "online"
	StatusIdle    Status = "idle"
	StatusDND     Status = "dnd"
	StatusOffline Status = "offline"
)

// ActivityType discriminates what kind of activity is being shown.
type ActivityType int

const (
	ActivityTypePlaying   ActivityType = 0
	ActivityTypeStreaming ActivityType = 1
	ActivityTypeListening ActivityType = 2
	ActivityTypeWatching  ActivityType = 3
	ActivityTypeCustom    ActivityType = 4
)

// ActivityFlag is a bitfield describing what an activity payload
// supports.
type ActivityFlag uint

const (
	ActivityFlagInstance    ActivityFlag = 1 << 0
	ActivityFlagJoin        ActivityFlag = 1 << 1
	ActivityFlagSpectate    ActivityFlag = 1 << 2
	ActivityFlagJoinRequest ActivityFlag = 1 << 3
	ActivityFlagSync        ActivityFlag = 1 << 4
	ActivityFlagPlay        ActivityFlag = 1 << 5
)

// ActivityTimestamps bounds when an activity started and ends.
type ActivityTimestamps struct {
	Start optional.Value[time.Time]
	End   optional.Value[time.Time]
}

// ActivityParty describes the group an activity is happening in.
type ActivityParty struct {
	// ID is the party's opaque identifier, not a snowflake.
	ID          optional.Value[string]
	CurrentSize optional.Value[int]
	MaxSize     optional.Value[int]
}

// ActivityAssets names the rich-presence artwork for an activity.
type ActivityAssets struct {
	LargeImage optional.Value[string]
	LargeText  optional.Value[string]
	SmallImage optional.Value[string]
	SmallText  optional.Value[string]
}

// ActivitySecrets carries the join/spectate handshake secrets.
type ActivitySecrets struct {
	Join     optional.Value[string]
	Spectate optional.Value[string]
	Match    optional.Value[string]
}

// RichActivity is one activity in a member's presence.
type RichActivity struct {
	Name string
	// URL is only set for streaming activities.
	URL           optional.Value[string]
	Type          ActivityType
	CreatedAt     time.Time
	Timestamps    optional.Value[ActivityTimestamps]
	ApplicationID optional.Value[snowflake.ID]
	Details       optional.Value[string]
	State         optional.Value[string]
	// Emoji is the custom-status emoji; nil when the activity has
	// none.
	Emoji      Emoji
	Party      optional.Value[ActivityParty]
	Assets     optional.Value[ActivityAssets]
	Secrets    optional.Value[ActivitySecrets]
	IsInstance optional.Value[bool]
	Flags      optional.Value[ActivityFlag]
}

// ClientStatus breaks a member's status down by client class.
type ClientStatus struct {
	Desktop optional.Value[Status]
	Mobile  optional.Value[Status]
	Web     optional.Value[Status]
}

// MemberPresence is a member's visible presence in one guild.
type MemberPresence struct {
	UserID snowflake.ID
	// GuildID is resolved from the payload's guild_id field or from
	// caller-supplied context; aggregate deliveries omit it
	// per-presence.
	GuildID       snowflake.ID
	RoleIDs       optional.Value[[]snowflake.ID]
	VisibleStatus Status
	Activities    []RichActivity
	ClientStatus  ClientStatus
	PremiumSince  optional.Value[time.Time]
	Nickname      optional.Value[string]
}

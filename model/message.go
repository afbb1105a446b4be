// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// MessageType discriminates ordinary messages from system notices.
type MessageType int

const (
	MessageTypeDefault                        MessageType = 0
	MessageTypeRecipientAdd                   MessageType = 1
	MessageTypeRecipientRemove                MessageType = 2
	MessageTypeCall                           MessageType = 3
	MessageTypeChannelNameChange              MessageType = 4
	MessageTypeChannelIconChange              MessageType = 5
	MessageTypeChannelPinnedMessage           MessageType = 6
	MessageTypeGuildMemberJoin                MessageType = 7
	MessageTypeUserPremiumGuildSubscription   MessageType = 8
	MessageTypePremiumGuildSubscriptionTier1  MessageType = 9
	MessageTypePremiumGuildSubscriptionTier2  MessageType = 10
	MessageTypePremiumGuildSubscriptionTier3  MessageType = 11
	MessageTypeChannelFollowAdd               MessageType = 12
	MessageTypeGuildDiscoveryDisqualified     MessageType = 14
	MessageTypeGuildDiscoveryRequalified      MessageType = 15
)

// MessageFlag is a bitfield of message delivery modifiers.
type MessageFlag uint

const (
	MessageFlagCrossposted          MessageFlag = 1 << 0
	MessageFlagIsCrosspost          MessageFlag = 1 << 1
	MessageFlagSuppressEmbeds       MessageFlag = 1 << 2
	MessageFlagSourceMessageDeleted MessageFlag = 1 << 3
	MessageFlagUrgent               MessageFlag = 1 << 4
)

// MessageActivityType discriminates rich-presence message activities.
type MessageActivityType int

const (
	MessageActivityTypeJoin        MessageActivityType = 1
	MessageActivityTypeSpectate    MessageActivityType = 2
	MessageActivityTypeListen      MessageActivityType = 3
	MessageActivityTypeJoinRequest MessageActivityType = 5
)

// Attachment is a file attached to a message.
type Attachment struct {
	ID       snowflake.ID
	Filename string
	// Size is the file size in bytes.
	Size     int
	URL      string
	ProxyURL string
	// Height and Width are only set for images.
	Height optional.Value[int]
	Width  optional.Value[int]
}

// Reaction is one emoji's reaction tally on a message.
type Reaction struct {
	Count int
	Emoji Emoji
	// IsMe reports whether the current user is among the reactors.
	IsMe bool
}

// MessageActivity is a rich-presence invitation embedded in a message.
type MessageActivity struct {
	Type    MessageActivityType
	PartyID optional.Value[string]
}

// MessageApplication is the partial application shape embedded in
// rich-presence messages.
type MessageApplication struct {
	ID             snowflake.ID
	Name           string
	Description    string
	IconHash       optional.Value[string]
	CoverImageHash optional.Value[string]
}

// MessageCrosspost references the message a crosspost originated from.
type MessageCrosspost struct {
	// ID may be absent for crossposts whose source was deleted.
	ID        optional.Value[snowflake.ID]
	ChannelID snowflake.ID
	GuildID   optional.Value[snowflake.ID]
}

// Message is a fully-delivered message.
type Message struct {
	ID        snowflake.ID
	ChannelID snowflake.ID
	GuildID   optional.Value[snowflake.ID]
	Author    User
	// Member is the author's guild membership, sent only for
	// guild messages.
	Member            optional.Value[Member]
	Content           string
	Timestamp         time.Time
	EditedTimestamp   optional.Value[time.Time]
	IsTTS             bool
	MentionsEveryone  bool
	UserMentionIDs    []snowflake.ID
	RoleMentionIDs    []snowflake.ID
	ChannelMentionIDs []snowflake.ID
	Attachments       []Attachment
	Embeds            []Embed
	Reactions         []Reaction
	IsPinned          bool
	WebhookID         optional.Value[snowflake.ID]
	Type              MessageType
	Activity          optional.Value[MessageActivity]
	Application       optional.Value[MessageApplication]
	MessageReference  optional.Value[MessageCrosspost]
	Flags             optional.Value[MessageFlag]
	Nonce             optional.Value[string]
}

// PartialMessage is a message-update delivery, where every field
// beyond the identity pair may be absent. Absent means "unchanged",
// which is why nearly everything here is three-state.
type PartialMessage struct {
	ID        snowflake.ID
	ChannelID snowflake.ID
	GuildID   optional.Value[snowflake.ID]
	Author    optional.Value[User]
	Member    optional.Value[Member]
	// Content null means the content was cleared, absent means it
	// did not change.
	Content          optional.Value[string]
	Timestamp        optional.Value[time.Time]
	EditedTimestamp  optional.Value[time.Time]
	IsTTS            optional.Value[bool]
	MentionsEveryone optional.Value[bool]
	Attachments      optional.Value[[]Attachment]
	Embeds           optional.Value[[]Embed]
	IsPinned         optional.Value[bool]
	Type             optional.Value[MessageType]
	Flags            optional.Value[MessageFlag]
	Nonce            optional.Value[string]
}

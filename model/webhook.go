// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// WebhookType discriminates webhook kinds.
type WebhookType int

const (
	WebhookTypeIncoming        WebhookType = 1
	WebhookTypeChannelFollower WebhookType = 2
)

// Webhook posts messages into a channel without a bot session.
type Webhook struct {
	ID        snowflake.ID
	Type      WebhookType
	GuildID   optional.Value[snowflake.ID]
	ChannelID snowflake.ID
	// Author is the user that created the webhook; absent when the
	// webhook is fetched by its token.
	Author optional.Value[User]
	// Name and AvatarHash are null for never-configured defaults.
	Name       optional.Value[string]
	AvatarHash optional.Value[string]
	// Token is only present for incoming webhooks the caller owns.
	Token optional.Value[string]
	// ApplicationID is set when a bot created the webhook.
	ApplicationID optional.Value[snowflake.ID]
}

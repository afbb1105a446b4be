// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// AuditLogActionType identifies what moderation action an audit log
// entry records.
type AuditLogActionType int

const (
	AuditLogActionGuildUpdate            AuditLogActionType = 1
	AuditLogActionChannelCreate          AuditLogActionType = 10
	AuditLogActionChannelUpdate          AuditLogActionType = 11
	AuditLogActionChannelDelete          AuditLogActionType = 12
	AuditLogActionChannelOverwriteCreate AuditLogActionType = 13
	AuditLogActionChannelOverwriteUpdate AuditLogActionType = 14
	AuditLogActionChannelOverwriteDelete AuditLogActionType = 15
	AuditLogActionMemberKick             AuditLogActionType = 20
	AuditLogActionMemberPrune            AuditLogActionType = 21
	AuditLogActionMemberBanAdd           AuditLogActionType = 22
	AuditLogActionMemberBanRemove        AuditLogActionType = 23
	AuditLogActionMemberUpdate           AuditLogActionType = 24
	AuditLogActionMemberRoleUpdate       AuditLogActionType = 25
	AuditLogActionMemberMove             AuditLogActionType = 26
	AuditLogActionMemberDisconnect       AuditLogActionType = 27
	AuditLogActionBotAdd                 AuditLogActionType = 28
	AuditLogActionRoleCreate             AuditLogActionType = 30
	AuditLogActionRoleUpdate             AuditLogActionType = 31
	AuditLogActionRoleDelete             AuditLogActionType = 32
	AuditLogActionInviteCreate           AuditLogActionType = 40
	AuditLogActionInviteUpdate           AuditLogActionType = 41
	AuditLogActionInviteDelete           AuditLogActionType = 42
	AuditLogActionWebhookCreate          AuditLogActionType = 50
	AuditLogActionWebhookUpdate          AuditLogActionType = 51
	AuditLogActionWebhookDelete          AuditLogActionType = 52
	AuditLogActionEmojiCreate            AuditLogActionType = 60
	AuditLogActionEmojiUpdate            AuditLogActionType = 61
	AuditLogActionEmojiDelete            AuditLogActionType = 62
	AuditLogActionMessageDelete          AuditLogActionType = 72
	AuditLogActionMessageBulkDelete      AuditLogActionType = 73
	AuditLogActionMessagePin             AuditLogActionType = 74
	AuditLogActionMessageUnpin           AuditLogActionType = 75
	AuditLogActionIntegrationCreate      AuditLogActionType = 80
	AuditLogActionIntegrationUpdate      AuditLogActionType = 81
	AuditLogActionIntegrationDelete      AuditLogActionType = 82
)

// AuditLogChange is one before/after pair in an audit log entry. The
// value shapes vary per change key and are kept as raw decoded JSON;
// interpreting them is the caller's concern.
type AuditLogChange struct {
	Key      string
	NewValue any
	OldValue any
}

// AuditLogEntry is one recorded moderation action.
type AuditLogEntry struct {
	ID snowflake.ID
	// TargetID is the entity the action applied to; null for actions
	// without a single target (e.g. a prune).
	TargetID optional.Value[snowflake.ID]
	Changes  []AuditLogChange
	// UserID is the actor; null for automatic actions.
	UserID     optional.Value[snowflake.ID]
	ActionType AuditLogActionType
	// Options carries action-specific extras (delete counts, channel
	// of a pin, ...) in raw form.
	Options optional.Value[map[string]any]
	Reason  optional.Value[string]
}

// AuditLog is a page of a guild's audit log together with the
// entities its entries reference.
type AuditLog struct {
	Entries      map[snowflake.ID]AuditLogEntry
	Integrations map[snowflake.ID]PartialIntegration
	Users        map[snowflake.ID]User
	Webhooks     map[snowflake.ID]Webhook
}

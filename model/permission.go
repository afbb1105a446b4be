// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

// Permission is a bitfield of guild and channel permissions. The wire
// sends it either as a JSON number or, at some call sites, as a
// decimal string; the transcoder accepts both.
type Permission uint64

const (
	PermissionCreateInstantInvite Permission = 1 << 0
	PermissionKickMembers         Permission = 1 << 1
	PermissionBanMembers          Permission = 1 << 2
	PermissionAdministrator       Permission = 1 << 3
	PermissionManageChannels      Permission = 1 << 4
	PermissionManageGuild         Permission = 1 << 5
	PermissionAddReactions        Permission = 1 << 6
	PermissionViewAuditLog        Permission = 1 << 7
	PermissionPrioritySpeaker     Permission = 1 << 8
	PermissionStream              Permission = 1 << 9
	PermissionViewChannel         Permission = 1 << 10
	PermissionSendMessages        Permission = 1 << 11
	PermissionSendTTSMessages     Permission = 1 << 12
	PermissionManageMessages      Permission = 1 << 13
	PermissionEmbedLinks          Permission = 1 << 14
	PermissionAttachFiles         Permission = 1 << 15
	PermissionReadMessageHistory  Permission = 1 << 16
	PermissionMentionEveryone     Permission = 1 << 17
	PermissionUseExternalEmojis   Permission = 1 << 18
	PermissionConnect             Permission = 1 << 20
	PermissionSpeak               Permission = 1 << 21
	PermissionMuteMembers         Permission = 1 << 22
	PermissionDeafenMembers       Permission = 1 << 23
	PermissionMoveMembers         Permission = 1 << 24
	PermissionUseVoiceActivity    Permission = 1 << 25
	PermissionChangeNickname      Permission = 1 << 26
	PermissionManageNicknames     Permission = 1 << 27
	PermissionManageRoles         Permission = 1 << 28
	PermissionManageWebhooks      Permission = 1 << 29
	PermissionManageEmojis        Permission = 1 << 30
)

// Has reports whether every bit of want is set in p.
func (p Permission) Has(want Permission) bool {
	return p&want == want
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
)

// TargetUserType discriminates what an invite targets.
type TargetUserType int

const (
	TargetUserTypeStream TargetUserType = 1
)

// InviteGuild is the guild preview embedded in an invite.
type InviteGuild struct {
	PartialGuild
	SplashHash        optional.Value[string]
	BannerHash        optional.Value[string]
	Description       optional.Value[string]
	VerificationLevel VerificationLevel
	VanityURLCode     optional.Value[string]
}

// Invite is a channel invite as returned by the public invite
// endpoint.
type Invite struct {
	Code string
	// Guild is absent for group-DM invites.
	Guild   optional.Value[InviteGuild]
	Channel PartialChannel
	Inviter optional.Value[User]
	// TargetUser is the streaming user a stream invite points at.
	TargetUser     optional.Value[User]
	TargetUserType optional.Value[TargetUserType]
	// Approximate counts are only sent when the fetch asked for them.
	ApproximatePresenceCount optional.Value[int]
	ApproximateMemberCount   optional.Value[int]
}

// InviteWithMetadata is an invite as seen by someone with channel
// management permission, which adds usage accounting.
type InviteWithMetadata struct {
	Invite
	Uses    int
	MaxUses int
	// MaxAge zero means the invite never expires.
	MaxAge      time.Duration
	IsTemporary bool
	CreatedAt   time.Time
}

// VanityURL is a guild's vanity invite code.
type VanityURL struct {
	Code string
	Uses int
}

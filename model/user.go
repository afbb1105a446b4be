// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// UserFlag is a bitfield of public account flags.
type UserFlag uint32

const (
	UserFlagNone                   UserFlag = 0
	UserFlagEmployee               UserFlag = 1 << 0
	UserFlagPartneredServerOwner   UserFlag = 1 << 1
	UserFlagHypeSquadEvents        UserFlag = 1 << 2
	UserFlagBugHunterLevel1        UserFlag = 1 << 3
	UserFlagHouseBravery           UserFlag = 1 << 6
	UserFlagHouseBrilliance        UserFlag = 1 << 7
	UserFlagHouseBalance           UserFlag = 1 << 8
	UserFlagEarlySupporter         UserFlag = 1 << 9
	UserFlagTeamUser               UserFlag = 1 << 10
	UserFlagBugHunterLevel2        UserFlag = 1 << 14
	UserFlagVerifiedBot            UserFlag = 1 << 16
	UserFlagEarlyVerifiedDeveloper UserFlag = 1 << 17
)

// PremiumType is the subscription tier of an account.
type PremiumType int

const (
	PremiumTypeNone         PremiumType = 0
	PremiumTypeNitroClassic PremiumType = 1
	PremiumTypeNitro        PremiumType = 2
)

// User is a platform account as seen by other users.
type User struct {
	ID            snowflake.ID
	Username      string
	Discriminator string
	// AvatarHash is the CDN hash of the custom avatar; null means the
	// account uses a default avatar.
	AvatarHash optional.Value[string]
	IsBot      bool
	IsSystem   bool
	Flags      UserFlag
}

// OwnUser is the authenticated account, which exposes fields other
// users never see.
type OwnUser struct {
	User
	IsMFAEnabled bool
	Locale       optional.Value[string]
	IsVerified   optional.Value[bool]
	Email        optional.Value[string]
	PremiumType  optional.Value[PremiumType]
}

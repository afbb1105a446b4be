// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// ConnectionVisibility says who can see a linked external account.
type ConnectionVisibility int

const (
	ConnectionVisibilityNone     ConnectionVisibility = 0
	ConnectionVisibilityEveryone ConnectionVisibility = 1
)

// OwnConnection is an external account linked to the authenticated
// user.
type OwnConnection struct {
	// ID is the external service's account identifier, not a
	// snowflake.
	ID                  string
	Name                string
	Type                string
	IsRevoked           bool
	Integrations        []PartialIntegration
	IsVerified          bool
	IsFriendSyncEnabled bool
	IsActivityVisible   bool
	Visibility          ConnectionVisibility
}

// OwnGuild is a guild listing scoped to the authenticated user.
type OwnGuild struct {
	PartialGuild
	IsOwner bool
	// MyPermissions is the authenticated user's permission set in the
	// guild.
	MyPermissions Permission
}

// TeamMembershipState is a team member's invitation state.
type TeamMembershipState int

const (
	TeamMembershipStateInvited  TeamMembershipState = 1
	TeamMembershipStateAccepted TeamMembershipState = 2
)

// TeamMember is one member of a developer team.
type TeamMember struct {
	MembershipState TeamMembershipState
	Permissions     []string
	TeamID          snowflake.ID
	User            User
}

// Team is a developer team owning an application.
type Team struct {
	ID       snowflake.ID
	IconHash optional.Value[string]
	Members  map[snowflake.ID]TeamMember
	OwnerID  snowflake.ID
}

// Application is a developer application (bot, game, or integration).
type Application struct {
	ID          snowflake.ID
	Name        string
	Description string
	IsBotPublic optional.Value[bool]
	// IsBotCodeGrantRequired says whether the bot joins only via the
	// full OAuth2 code grant.
	IsBotCodeGrantRequired optional.Value[bool]
	Owner                  optional.Value[User]
	RPCOrigins             optional.Value[[]string]
	Summary                string
	// VerifyKey is the hex-encoded interaction verification key.
	VerifyKey      optional.Value[string]
	IconHash       optional.Value[string]
	Team           optional.Value[Team]
	GuildID        optional.Value[snowflake.ID]
	PrimarySKUID   optional.Value[snowflake.ID]
	Slug           optional.Value[string]
	CoverImageHash optional.Value[string]
}

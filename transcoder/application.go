// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeOwnConnection implements Transcoder.
func (f *Factory) DecodeOwnConnection(p payload.Object) (model.OwnConnection, error) {
	r := newReader("own connection", p)
	connection := model.OwnConnection{
		ID:                  r.string("id"),
		Name:                r.string("name"),
		Type:                r.string("type"),
		IsRevoked:           r.optBool("revoked").Or(false),
		IsVerified:          r.bool("verified"),
		IsFriendSyncEnabled: r.bool("friend_sync"),
		IsActivityVisible:   r.bool("show_activity"),
		Visibility:          model.ConnectionVisibility(r.int("visibility")),
	}
	for _, obj := range r.optObjectArray("integrations").Or(nil) {
		connection.Integrations = append(connection.Integrations,
			decodeNested(r, obj, f.DecodePartialIntegration))
	}
	if err := r.err(); err != nil {
		return model.OwnConnection{}, err
	}
	return connection, nil
}

// DecodeOwnGuild implements Transcoder.
func (f *Factory) DecodeOwnGuild(p payload.Object) (model.OwnGuild, error) {
	r := newReader("own guild", p)
	guild := model.OwnGuild{
		PartialGuild:  decodePartialGuildFields(r),
		IsOwner:       r.bool("owner"),
		MyPermissions: model.Permission(r.uint64("permissions")),
	}
	if err := r.err(); err != nil {
		return model.OwnGuild{}, err
	}
	return guild, nil
}

func (f *Factory) decodeTeam(p payload.Object) (model.Team, error) {
	r := newReader("application", p)
	team := model.Team{
		ID:       r.snowflake("id"),
		IconHash: r.optString("icon"),
		Members:  make(map[snowflake.ID]model.TeamMember),
		OwnerID:  r.snowflake("owner_user_id"),
	}
	for _, obj := range r.objectArray("members") {
		member := decodeNested(r, obj, f.decodeTeamMember)
		team.Members[member.User.ID] = member
	}
	if err := r.err(); err != nil {
		return model.Team{}, err
	}
	return team, nil
}

func (f *Factory) decodeTeamMember(p payload.Object) (model.TeamMember, error) {
	r := newReader("application", p)
	member := model.TeamMember{
		MembershipState: model.TeamMembershipState(r.int("membership_state")),
		Permissions:     r.stringArray("permissions"),
		TeamID:          r.snowflake("team_id"),
		User:            decodeNested(r, r.object("user"), f.DecodeUser),
	}
	if err := r.err(); err != nil {
		return model.TeamMember{}, err
	}
	return member, nil
}

// DecodeApplication implements Transcoder.
func (f *Factory) DecodeApplication(p payload.Object) (model.Application, error) {
	r := newReader("application", p)
	application := model.Application{
		ID:                     r.snowflake("id"),
		Name:                   r.string("name"),
		Description:            r.string("description"),
		IsBotPublic:            r.optBool("bot_public"),
		IsBotCodeGrantRequired: r.optBool("bot_require_code_grant"),
		Owner:                  decodeNestedOpt(r, r.optObject("owner"), f.DecodeUser),
		Summary:                r.string("summary"),
		VerifyKey:              r.optString("verify_key"),
		IconHash:               r.optString("icon"),
		Team:                   decodeNestedOpt(r, r.optObject("team"), f.decodeTeam),
		GuildID:                r.optSnowflake("guild_id"),
		PrimarySKUID:           r.optSnowflake("primary_sku_id"),
		Slug:                   r.optString("slug"),
		CoverImageHash:         r.optString("cover_image"),
	}
	if p.Has("rpc_origins") {
		application.RPCOrigins = optional.Present(r.stringArray("rpc_origins"))
	}
	if err := r.err(); err != nil {
		return model.Application{}, err
	}
	return application, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"errors"
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeGuildWidget implements Transcoder.
func (f *Factory) DecodeGuildWidget(p payload.Object) (model.GuildWidget, error) {
	r := newReader("guild widget", p)
	widget := model.GuildWidget{
		ChannelID: r.optSnowflake("channel_id"),
		IsEnabled: r.bool("enabled"),
	}
	if err := r.err(); err != nil {
		return model.GuildWidget{}, err
	}
	return widget, nil
}

// DecodeMember implements Transcoder.
func (f *Factory) DecodeMember(p payload.Object, guildID optional.Value[snowflake.ID], user optional.Value[model.User]) (model.Member, error) {
	const entity = "member"
	resolved, err := resolveGuildID(entity, p, guildID)
	if err != nil {
		return model.Member{}, err
	}
	r := newReader(entity, p)
	member := model.Member{
		GuildID:      resolved,
		Nickname:     r.optString("nick"),
		RoleIDs:      r.snowflakeArray("roles"),
		JoinedAt:     r.time("joined_at"),
		PremiumSince: r.optTime("premium_since"),
		IsDeaf:       r.optBool("deaf"),
		IsMute:       r.optBool("mute"),
	}
	if hoisted, ok := user.Get(); ok {
		member.User = hoisted
	} else {
		member.User = decodeNested(r, r.object("user"), f.DecodeUser)
	}
	if err := r.err(); err != nil {
		return model.Member{}, err
	}
	return member, nil
}

// DecodeRole implements Transcoder.
func (f *Factory) DecodeRole(p payload.Object, guildID optional.Value[snowflake.ID]) (model.Role, error) {
	const entity = "role"
	resolved, err := resolveGuildID(entity, p, guildID)
	if err != nil {
		return model.Role{}, err
	}
	r := newReader(entity, p)
	role := model.Role{
		ID:            r.snowflake("id"),
		GuildID:       resolved,
		Name:          r.string("name"),
		Color:         r.int("color"),
		IsHoisted:     r.bool("hoist"),
		Position:      r.int("position"),
		Permissions:   model.Permission(r.uint64("permissions")),
		IsManaged:     r.bool("managed"),
		IsMentionable: r.bool("mentionable"),
	}
	if err := r.err(); err != nil {
		return model.Role{}, err
	}
	return role, nil
}

func decodePartialIntegrationFields(r *reader) model.PartialIntegration {
	integration := model.PartialIntegration{
		ID:   r.snowflake("id"),
		Name: r.string("name"),
		Type: r.string("type"),
	}
	account := r.object("account")
	integration.Account = model.IntegrationAccount{
		ID:   sticky(r, account.String, "id"),
		Name: sticky(r, account.String, "name"),
	}
	return integration
}

// DecodePartialIntegration implements Transcoder.
func (f *Factory) DecodePartialIntegration(p payload.Object) (model.PartialIntegration, error) {
	r := newReader("partial integration", p)
	integration := decodePartialIntegrationFields(r)
	if err := r.err(); err != nil {
		return model.PartialIntegration{}, err
	}
	return integration, nil
}

// DecodeIntegration implements Transcoder.
func (f *Factory) DecodeIntegration(p payload.Object) (model.Integration, error) {
	r := newReader("integration", p)
	integration := model.Integration{
		PartialIntegration: decodePartialIntegrationFields(r),
		IsEnabled:          r.bool("enabled"),
		IsSyncing:          r.bool("syncing"),
		RoleID:             r.optSnowflake("role_id"),
		IsEmojisEnabled:    r.optBool("enable_emoticons"),
		ExpireBehavior:     model.IntegrationExpireBehavior(r.int("expire_behavior")),
		// The wire expresses the grace period in whole days.
		ExpireGracePeriod: time.Duration(r.int("expire_grace_period")) * 24 * time.Hour,
		User:              decodeNested(r, r.object("user"), f.DecodeUser),
		LastSyncedAt:      r.optTime("synced_at"),
	}
	if err := r.err(); err != nil {
		return model.Integration{}, err
	}
	return integration, nil
}

// DecodeGuildMemberBan implements Transcoder.
func (f *Factory) DecodeGuildMemberBan(p payload.Object) (model.GuildMemberBan, error) {
	r := newReader("guild member ban", p)
	ban := model.GuildMemberBan{
		Reason: r.optString("reason"),
		User:   decodeNested(r, r.object("user"), f.DecodeUser),
	}
	if err := r.err(); err != nil {
		return model.GuildMemberBan{}, err
	}
	return ban, nil
}

func decodePartialGuildFields(r *reader) model.PartialGuild {
	guild := model.PartialGuild{
		ID:       r.snowflake("id"),
		Name:     r.string("name"),
		IconHash: r.optString("icon"),
	}
	for _, feature := range r.stringArray("features") {
		guild.Features = append(guild.Features, model.GuildFeature(feature))
	}
	return guild
}

func decodeGuildFields(r *reader) model.Guild {
	return model.Guild{
		PartialGuild:                decodePartialGuildFields(r),
		SplashHash:                  r.optString("splash"),
		DiscoverySplashHash:         r.optString("discovery_splash"),
		OwnerID:                     r.snowflake("owner_id"),
		Region:                      r.string("region"),
		AFKChannelID:                r.optSnowflake("afk_channel_id"),
		AFKTimeout:                  r.seconds("afk_timeout"),
		VerificationLevel:           model.VerificationLevel(r.int("verification_level")),
		DefaultMessageNotifications: model.MessageNotificationsLevel(r.int("default_message_notifications")),
		ExplicitContentFilter:       model.ContentFilterLevel(r.int("explicit_content_filter")),
		MFALevel:                    model.MFALevel(r.int("mfa_level")),
		ApplicationID:               r.optSnowflake("application_id"),
		IsWidgetEnabled:             r.optBool("widget_enabled"),
		WidgetChannelID:             r.optSnowflake("widget_channel_id"),
		SystemChannelID:             r.optSnowflake("system_channel_id"),
		SystemChannelFlags:          model.SystemChannelFlag(r.int("system_channel_flags")),
		RulesChannelID:              r.optSnowflake("rules_channel_id"),
		MaxPresences:                r.optInt("max_presences"),
		MaxMembers:                  r.optInt("max_members"),
		MaxVideoChannelUsers:        r.optInt("max_video_channel_users"),
		VanityURLCode:               r.optString("vanity_url_code"),
		Description:                 r.optString("description"),
		BannerHash:                  r.optString("banner"),
		PremiumTier:                 model.PremiumTier(r.int("premium_tier")),
		PremiumSubscriptionCount:    r.optInt("premium_subscription_count"),
		PreferredLocale:             r.string("preferred_locale"),
		PublicUpdatesChannelID:      r.optSnowflake("public_updates_channel_id"),
	}
}

// decodeGuildEmojis decodes a guild's emoji array into a map keyed by
// emoji ID, with the owning guild injected as context.
func (f *Factory) decodeGuildEmojis(r *reader, key string, guildID optional.Value[snowflake.ID]) map[snowflake.ID]model.KnownCustomEmoji {
	emojis := make(map[snowflake.ID]model.KnownCustomEmoji)
	for _, obj := range r.objectArray(key) {
		emoji := decodeNested(r, obj, func(o payload.Object) (model.KnownCustomEmoji, error) {
			return f.DecodeKnownCustomEmoji(o, guildID)
		})
		emojis[emoji.ID] = emoji
	}
	return emojis
}

func (f *Factory) decodeGuildRoles(r *reader, guildID optional.Value[snowflake.ID]) map[snowflake.ID]model.Role {
	roles := make(map[snowflake.ID]model.Role)
	for _, obj := range r.objectArray("roles") {
		role := decodeNested(r, obj, func(o payload.Object) (model.Role, error) {
			return f.DecodeRole(o, guildID)
		})
		roles[role.ID] = role
	}
	return roles
}

// DecodeGuildPreview implements Transcoder.
func (f *Factory) DecodeGuildPreview(p payload.Object) (model.GuildPreview, error) {
	r := newReader("guild preview", p)
	preview := model.GuildPreview{
		PartialGuild:             decodePartialGuildFields(r),
		SplashHash:               r.optString("splash"),
		DiscoverySplashHash:      r.optString("discovery_splash"),
		Description:              r.optString("description"),
		ApproximateMemberCount:   r.int("approximate_member_count"),
		ApproximatePresenceCount: r.int("approximate_presence_count"),
	}
	preview.Emojis = f.decodeGuildEmojis(r, "emojis", optional.Present(preview.ID))
	if err := r.err(); err != nil {
		return model.GuildPreview{}, err
	}
	return preview, nil
}

// DecodeRESTGuild implements Transcoder.
func (f *Factory) DecodeRESTGuild(p payload.Object) (model.RESTGuild, error) {
	r := newReader("guild", p)
	guild := model.RESTGuild{
		Guild:                        decodeGuildFields(r),
		ApproximateMemberCount:       r.optInt("approximate_member_count"),
		ApproximateActiveMemberCount: r.optInt("approximate_presence_count"),
	}
	guildCtx := optional.Present(guild.ID)
	guild.Roles = f.decodeGuildRoles(r, guildCtx)
	guild.Emojis = f.decodeGuildEmojis(r, "emojis", guildCtx)
	if err := r.err(); err != nil {
		return model.RESTGuild{}, err
	}
	return guild, nil
}

// DecodeGatewayGuild implements Transcoder.
//
// Member records are decoded independently: one malformed member does
// not mask the others. Every failure is collected and the combined
// error is returned without a partial definition, so the caller either
// ingests the whole delivery or none of it.
func (f *Factory) DecodeGatewayGuild(p payload.Object) (GatewayGuildDefinition, error) {
	r := newReader("guild", p)
	def := GatewayGuildDefinition{
		Guild: model.GatewayGuild{
			Guild:       decodeGuildFields(r),
			IsLarge:     r.optBool("large"),
			JoinedAt:    r.optTime("joined_at"),
			MemberCount: r.optInt("member_count"),
		},
	}
	guildCtx := optional.Present(def.Guild.ID)

	def.Roles = f.decodeGuildRoles(r, guildCtx)
	def.Emojis = f.decodeGuildEmojis(r, "emojis", guildCtx)

	if channels, ok := r.optObjectArray("channels").Get(); ok {
		def.Channels = make(map[snowflake.ID]model.Channel, len(channels))
		for _, obj := range channels {
			channel := decodeNested(r, obj, func(o payload.Object) (model.Channel, error) {
				return f.DecodeChannel(o, guildCtx)
			})
			if channel != nil {
				def.Channels[channel.Partial().ID] = channel
			}
		}
	}

	if members, ok := r.optObjectArray("members").Get(); ok {
		def.Members = make(map[snowflake.ID]model.Member, len(members))
		var failures []error
		for _, obj := range members {
			member, err := f.DecodeMember(obj, guildCtx, optional.Undefined[model.User]())
			if err != nil {
				failures = append(failures, err)
				continue
			}
			def.Members[member.User.ID] = member
		}
		if err := errors.Join(failures...); err != nil {
			return GatewayGuildDefinition{}, err
		}
	}

	if presences, ok := r.optObjectArray("presences").Get(); ok {
		def.Presences = make(map[snowflake.ID]model.MemberPresence, len(presences))
		for _, obj := range presences {
			presence := decodeNested(r, obj, func(o payload.Object) (model.MemberPresence, error) {
				return f.DecodeMemberPresence(o, guildCtx)
			})
			def.Presences[presence.UserID] = presence
		}
	}

	if states, ok := r.optObjectArray("voice_states").Get(); ok {
		def.VoiceStates = make(map[snowflake.ID]model.VoiceState, len(states))
		for _, obj := range states {
			// Gateway voice states omit the member object; it is
			// recovered from the member list decoded above.
			memberCtx := optional.Undefined[model.Member]()
			if userID, err := obj.Snowflake("user_id"); err == nil {
				if member, ok := def.Members[userID]; ok {
					memberCtx = optional.Present(member)
				}
			}
			state := decodeNested(r, obj, func(o payload.Object) (model.VoiceState, error) {
				return f.DecodeVoiceState(o, guildCtx, memberCtx)
			})
			def.VoiceStates[state.UserID] = state
		}
	}

	if err := r.err(); err != nil {
		return GatewayGuildDefinition{}, err
	}
	return def, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/model"
)

const guildCoreJSON = `
	"id": "456",
	"name": "testing grounds",
	"icon": "abadf00d",
	"features": ["BANNER", "SOME_FUTURE_FLAG"],
	"owner_id": "9",
	"region": "rotterdam",
	"afk_channel_id": null,
	"afk_timeout": 300,
	"verification_level": 2,
	"default_message_notifications": 1,
	"explicit_content_filter": 2,
	"mfa_level": 1,
	"system_channel_id": null,
	"system_channel_flags": 1,
	"rules_channel_id": null,
	"premium_tier": 2,
	"preferred_locale": "en-GB",
	"public_updates_channel_id": null
`

const guildRoleJSON = `{
	"id": "33", "name": "admin", "color": 255, "hoist": true, "position": 1,
	"permissions": "2147483648", "managed": false, "mentionable": true
}`

func TestDecodeRole(t *testing.T) {
	f := NewFactory()
	role, err := f.DecodeRole(mustParse(t, guildRoleJSON), guildContext(456))
	if err != nil {
		t.Fatalf("DecodeRole: %v", err)
	}
	if role.ID != 33 || role.GuildID != 456 || role.Name != "admin" {
		t.Errorf("role = %+v", role)
	}
	if role.Permissions != 1<<31 {
		t.Errorf("Permissions = %d, want %d", role.Permissions, uint64(1)<<31)
	}
}

func TestDecodeRoleRequiresContext(t *testing.T) {
	f := NewFactory()
	if _, err := f.DecodeRole(mustParse(t, guildRoleJSON), noGuildContext()); !IsMissingContext(err) {
		t.Fatalf("err = %v, want missing context", err)
	}
}

func TestDecodeMemberHoistedUser(t *testing.T) {
	f := NewFactory()
	hoisted := model.User{ID: 2, Username: "ada", Discriminator: "0001"}
	member, err := f.DecodeMember(mustParse(t, `{
		"roles": ["33"],
		"joined_at": "2020-05-22T16:27:53.672000+00:00",
		"nick": "countess",
		"deaf": false
	}`), guildContext(456), optional.Present(hoisted))
	if err != nil {
		t.Fatalf("DecodeMember: %v", err)
	}
	if member.User != hoisted {
		t.Errorf("User = %+v, want hoisted %+v", member.User, hoisted)
	}
	if nick, _ := member.Nickname.Get(); nick != "countess" {
		t.Errorf("Nickname = %v", member.Nickname)
	}
	if member.IsMute.IsPresent() {
		t.Errorf("IsMute = %v, want undefined", member.IsMute)
	}
}

func gatewayGuildJSON(extra string) string {
	body := guildCoreJSON + `,
		"roles": [` + guildRoleJSON + `],
		"emojis": [{
			"id": "123", "name": "pog", "roles": [],
			"require_colons": true, "managed": false, "available": true
		}]`
	if extra != "" {
		body += ",\n" + extra
	}
	return "{" + body + "}"
}

func TestDecodeGatewayGuildUpdateShape(t *testing.T) {
	f := NewFactory()
	def, err := f.DecodeGatewayGuild(mustParse(t, gatewayGuildJSON("")))
	if err != nil {
		t.Fatalf("DecodeGatewayGuild: %v", err)
	}
	if def.Guild.ID != 456 || def.Guild.Name != "testing grounds" {
		t.Errorf("guild = %+v", def.Guild.PartialGuild)
	}
	if def.Guild.AFKTimeout != 5*time.Minute {
		t.Errorf("AFKTimeout = %v, want 5m", def.Guild.AFKTimeout)
	}
	// Update deliveries say nothing about these collections.
	if def.Channels != nil || def.Members != nil || def.Presences != nil || def.VoiceStates != nil {
		t.Errorf("absent collections decoded non-nil: %+v", def)
	}
	if def.Roles == nil || def.Emojis == nil {
		t.Fatalf("Roles/Emojis must always be non-nil")
	}
	if def.Roles[33].GuildID != 456 {
		t.Errorf("role guild = %d, want injected 456", def.Roles[33].GuildID)
	}
	if def.Emojis[123].GuildID != 456 {
		t.Errorf("emoji guild = %d, want injected 456", def.Emojis[123].GuildID)
	}
	if def.Guild.IsLarge.IsPresent() {
		t.Errorf("IsLarge = %v, want undefined", def.Guild.IsLarge)
	}
}

func TestDecodeGatewayGuildCreateShape(t *testing.T) {
	f := NewFactory()
	def, err := f.DecodeGatewayGuild(mustParse(t, gatewayGuildJSON(`
		"large": false,
		"joined_at": "2020-05-22T16:27:53.672000+00:00",
		"member_count": 2,
		"channels": [
			{"id": "123", "name": "general", "type": 0, "position": 0, "permission_overwrites": []},
			{"id": "124", "type": 99}
		],
		"members": [{
			"user": {"id": "2", "username": "ada", "discriminator": "0001"},
			"roles": ["33"],
			"joined_at": "2020-05-22T16:27:53.672000+00:00"
		}],
		"presences": [{
			"user": {"id": "2"},
			"status": "online",
			"activities": [],
			"client_status": {"desktop": "online"}
		}],
		"voice_states": [{
			"channel_id": "130",
			"user_id": "2",
			"session_id": "deadbeef",
			"deaf": false, "mute": false,
			"self_deaf": false, "self_mute": true,
			"self_video": false, "suppress": false
		}]
	`)))
	if err != nil {
		t.Fatalf("DecodeGatewayGuild: %v", err)
	}
	if count, _ := def.Guild.MemberCount.Get(); count != 2 {
		t.Errorf("MemberCount = %v", def.Guild.MemberCount)
	}
	if len(def.Channels) != 2 {
		t.Fatalf("Channels = %+v", def.Channels)
	}
	if _, ok := def.Channels[123].(model.GuildTextChannel); !ok {
		t.Errorf("channel 123 = %T", def.Channels[123])
	}
	if _, ok := def.Channels[124].(model.PartialChannel); !ok {
		t.Errorf("channel 124 = %T, want partial for unknown type", def.Channels[124])
	}
	member, ok := def.Members[2]
	if !ok || member.GuildID != 456 {
		t.Fatalf("Members = %+v", def.Members)
	}
	presence, ok := def.Presences[2]
	if !ok || presence.GuildID != 456 || presence.VisibleStatus != model.StatusOnline {
		t.Errorf("Presences = %+v", def.Presences)
	}
	state, ok := def.VoiceStates[2]
	if !ok || state.Member.User.ID != 2 {
		t.Errorf("voice state did not recover member: %+v", state)
	}
	if !state.IsSelfMuted || state.IsSelfDeafened {
		t.Errorf("voice flags = %+v", state)
	}
}

func TestDecodeGatewayGuildEmptyMembers(t *testing.T) {
	f := NewFactory()
	def, err := f.DecodeGatewayGuild(mustParse(t, gatewayGuildJSON(`"members": []`)))
	if err != nil {
		t.Fatalf("DecodeGatewayGuild: %v", err)
	}
	if def.Members == nil || len(def.Members) != 0 {
		t.Errorf("Members = %#v, want non-nil empty map", def.Members)
	}
}

func TestDecodeGatewayGuildAggregatesMemberFailures(t *testing.T) {
	f := NewFactory()
	_, err := f.DecodeGatewayGuild(mustParse(t, gatewayGuildJSON(`"members": [
		{"user": {"id": "2", "username": "ada", "discriminator": "0001"}, "roles": []},
		{"roles": [], "joined_at": "2020-05-22T16:27:53.672000+00:00"}
	]`)))
	if err == nil {
		t.Fatalf("DecodeGatewayGuild succeeded, want aggregated member errors")
	}
	// Both bad members must be reported, not just the first.
	if msg := err.Error(); !strings.Contains(msg, "joined_at") || !strings.Contains(msg, "user") {
		t.Errorf("err = %v, want both failures reported", err)
	}
}

func TestDecodeRESTGuild(t *testing.T) {
	f := NewFactory()
	guild, err := f.DecodeRESTGuild(mustParse(t, `{`+guildCoreJSON+`,
		"roles": [`+guildRoleJSON+`],
		"emojis": [],
		"approximate_member_count": 500,
		"approximate_presence_count": 250
	}`))
	if err != nil {
		t.Fatalf("DecodeRESTGuild: %v", err)
	}
	if guild.Roles == nil || guild.Emojis == nil {
		t.Fatalf("Roles/Emojis must be non-nil")
	}
	if n, _ := guild.ApproximateMemberCount.Get(); n != 500 {
		t.Errorf("ApproximateMemberCount = %v", guild.ApproximateMemberCount)
	}
	if n, _ := guild.ApproximateActiveMemberCount.Get(); n != 250 {
		t.Errorf("ApproximateActiveMemberCount = %v", guild.ApproximateActiveMemberCount)
	}
}

func TestDecodeGuildPreviewInjectsOwnID(t *testing.T) {
	f := NewFactory()
	preview, err := f.DecodeGuildPreview(mustParse(t, `{
		"id": "456", "name": "testing grounds", "features": [],
		"emojis": [{
			"id": "123", "name": "pog", "roles": [],
			"require_colons": true, "managed": false, "available": true
		}],
		"approximate_member_count": 12,
		"approximate_presence_count": 3
	}`))
	if err != nil {
		t.Fatalf("DecodeGuildPreview: %v", err)
	}
	if preview.Emojis[123].GuildID != 456 {
		t.Errorf("emoji guild = %d, want preview's own 456", preview.Emojis[123].GuildID)
	}
}

func TestDecodeIntegrationGracePeriodDays(t *testing.T) {
	f := NewFactory()
	integration, err := f.DecodeIntegration(mustParse(t, `{
		"id": "88", "name": "twitch sub", "type": "twitch",
		"account": {"id": "abc", "name": "streamer"},
		"enabled": true, "syncing": false,
		"expire_behavior": 1, "expire_grace_period": 7,
		"user": {"id": "9", "username": "mod", "discriminator": "0002"}
	}`))
	if err != nil {
		t.Fatalf("DecodeIntegration: %v", err)
	}
	if integration.ExpireGracePeriod != 7*24*time.Hour {
		t.Errorf("ExpireGracePeriod = %v, want 168h", integration.ExpireGracePeriod)
	}
	if integration.ExpireBehavior != model.IntegrationExpireKick {
		t.Errorf("ExpireBehavior = %v", integration.ExpireBehavior)
	}
}

func TestDecodeGuildWidget(t *testing.T) {
	f := NewFactory()
	widget, err := f.DecodeGuildWidget(mustParse(t, `{"channel_id": null, "enabled": true}`))
	if err != nil {
		t.Fatalf("DecodeGuildWidget: %v", err)
	}
	if !widget.ChannelID.IsNull() || !widget.IsEnabled {
		t.Errorf("widget = %+v", widget)
	}
}

func TestDecodeGuildMemberBan(t *testing.T) {
	f := NewFactory()
	ban, err := f.DecodeGuildMemberBan(mustParse(t, fmt.Sprintf(`{
		"reason": %q,
		"user": {"id": "2", "username": "ada", "discriminator": "0001"}
	}`, "spam")))
	if err != nil {
		t.Fatalf("DecodeGuildMemberBan: %v", err)
	}
	if reason, _ := ban.Reason.Get(); reason != "spam" {
		t.Errorf("Reason = %v", ban.Reason)
	}
	if ban.User.ID != 2 {
		t.Errorf("User = %+v", ban.User)
	}
}

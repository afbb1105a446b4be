// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/resource"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// Transcoder is the full decode/encode capability set, one operation
// per entity kind. The REST and gateway collaborators depend on this
// interface rather than on the concrete Factory so tests can inject a
// double.
//
// Context parameters follow one convention everywhere: an
// optional.Value argument is the caller's chance to supply a field the
// payload may omit in some delivery contexts. Passing
// optional.Undefined means "use whatever the payload carries";
// passing a present value overrides the payload unconditionally.
type Transcoder interface {
	// DecodeOwnConnection decodes a linked external account of the
	// authenticated user.
	DecodeOwnConnection(p payload.Object) (model.OwnConnection, error)

	// DecodeOwnGuild decodes a guild listing scoped to the
	// authenticated user.
	DecodeOwnGuild(p payload.Object) (model.OwnGuild, error)

	// DecodeApplication decodes a developer application.
	DecodeApplication(p payload.Object) (model.Application, error)

	// DecodeAuditLog decodes one page of a guild's audit log.
	DecodeAuditLog(p payload.Object) (model.AuditLog, error)

	// DecodePermissionOverwrite decodes a channel permission
	// overwrite.
	DecodePermissionOverwrite(p payload.Object) (model.PermissionOverwrite, error)

	// EncodePermissionOverwrite converts an overwrite back to its
	// wire shape.
	EncodePermissionOverwrite(overwrite model.PermissionOverwrite) payload.Object

	// DecodePartialChannel decodes only the id/name/type shape every
	// channel delivery shares.
	DecodePartialChannel(p payload.Object) (model.PartialChannel, error)

	// DecodePrivateTextChannel decodes a one-to-one DM channel.
	DecodePrivateTextChannel(p payload.Object) (model.PrivateTextChannel, error)

	// DecodeGroupPrivateTextChannel decodes a group DM channel.
	DecodeGroupPrivateTextChannel(p payload.Object) (model.GroupPrivateTextChannel, error)

	// DecodeGuildCategory decodes a category channel. guildID covers
	// delivery contexts (the guild-create aggregate) that omit
	// guild_id per-channel.
	DecodeGuildCategory(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildCategory, error)

	// DecodeGuildTextChannel decodes a guild text channel.
	DecodeGuildTextChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildTextChannel, error)

	// DecodeGuildNewsChannel decodes an announcement channel.
	DecodeGuildNewsChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildNewsChannel, error)

	// DecodeGuildStoreChannel decodes a store-page channel.
	DecodeGuildStoreChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildStoreChannel, error)

	// DecodeGuildVoiceChannel decodes a guild voice channel.
	DecodeGuildVoiceChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildVoiceChannel, error)

	// DecodeChannel dispatches on the payload's type discriminant and
	// decodes the matching variant. Unrecognized discriminants decode
	// to the bare PartialChannel rather than failing, so new channel
	// kinds degrade gracefully. guildID is ignored for the private
	// variants.
	DecodeChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.Channel, error)

	// DecodeEmbed decodes a message embed.
	DecodeEmbed(p payload.Object) (model.Embed, error)

	// EncodeEmbed converts an embed to its wire shape plus the
	// ordered list of local resources that must be uploaded as
	// multipart companions. The list's filenames are exactly the
	// attachment:// placeholders inside the returned payload, in the
	// order the placeholders appear; encoding the same embed twice
	// yields identical output.
	EncodeEmbed(embed model.Embed) (payload.Object, []resource.Resource, error)

	// DecodeUnicodeEmoji decodes a literal unicode emoji.
	DecodeUnicodeEmoji(p payload.Object) (model.UnicodeEmoji, error)

	// DecodeCustomEmoji decodes a guild-uploaded emoji in its
	// context-free shape.
	DecodeCustomEmoji(p payload.Object) (model.CustomEmoji, error)

	// DecodeKnownCustomEmoji decodes a guild-scoped emoji listing
	// entry, resolving the owning guild via guildID context.
	DecodeKnownCustomEmoji(p payload.Object, guildID optional.Value[snowflake.ID]) (model.KnownCustomEmoji, error)

	// DecodeEmoji dispatches on presence of the id field: absent
	// decodes the unicode variant, present the custom variant.
	DecodeEmoji(p payload.Object) (model.Emoji, error)

	// DecodeGatewayBot decodes the bot-scoped gateway recommendation.
	DecodeGatewayBot(p payload.Object) (model.GatewayBot, error)

	// DecodeGuildWidget decodes a guild's widget settings.
	DecodeGuildWidget(p payload.Object) (model.GuildWidget, error)

	// DecodeMember decodes a guild member. guildID covers deliveries
	// that omit guild_id; user covers deliveries where the user
	// object was hoisted to an enclosing level and should be shared
	// rather than re-decoded.
	DecodeMember(p payload.Object, guildID optional.Value[snowflake.ID], user optional.Value[model.User]) (model.Member, error)

	// DecodeRole decodes a guild role, resolving the owning guild via
	// guildID context (role payloads never carry guild_id).
	DecodeRole(p payload.Object, guildID optional.Value[snowflake.ID]) (model.Role, error)

	// DecodePartialIntegration decodes the integration shape embedded
	// in audit logs and connection listings.
	DecodePartialIntegration(p payload.Object) (model.PartialIntegration, error)

	// DecodeIntegration decodes a guild's full integration record.
	DecodeIntegration(p payload.Object) (model.Integration, error)

	// DecodeGuildMemberBan decodes one ban-list entry.
	DecodeGuildMemberBan(p payload.Object) (model.GuildMemberBan, error)

	// DecodeGuildPreview decodes a discoverable guild's public
	// preview.
	DecodeGuildPreview(p payload.Object) (model.GuildPreview, error)

	// DecodeRESTGuild decodes a guild fetched over REST, with its
	// inlined role and emoji collections.
	DecodeRESTGuild(p payload.Object) (model.RESTGuild, error)

	// DecodeGatewayGuild decomposes a guild-create or guild-update
	// delivery into the guild entity plus independently keyed
	// sub-entity mappings. See GatewayGuildDefinition for the
	// provided-versus-absent semantics of each mapping.
	DecodeGatewayGuild(p payload.Object) (GatewayGuildDefinition, error)

	// DecodeVanityURL decodes a guild's vanity invite code.
	DecodeVanityURL(p payload.Object) (model.VanityURL, error)

	// DecodeInvite decodes a channel invite.
	DecodeInvite(p payload.Object) (model.Invite, error)

	// DecodeInviteWithMetadata decodes an invite with usage
	// accounting.
	DecodeInviteWithMetadata(p payload.Object) (model.InviteWithMetadata, error)

	// DecodePartialMessage decodes a message-update delivery, where
	// any field beyond the identity pair may be absent.
	DecodePartialMessage(p payload.Object) (model.PartialMessage, error)

	// DecodeMessage decodes a fully-delivered message.
	DecodeMessage(p payload.Object) (model.Message, error)

	// DecodeMemberPresence decodes a member's presence, resolving the
	// guild via guildID context when the delivery omits it.
	DecodeMemberPresence(p payload.Object, guildID optional.Value[snowflake.ID]) (model.MemberPresence, error)

	// DecodeUser decodes a platform account.
	DecodeUser(p payload.Object) (model.User, error)

	// DecodeMyUser decodes the authenticated account.
	DecodeMyUser(p payload.Object) (model.OwnUser, error)

	// DecodeVoiceState decodes a member's voice connection state.
	// guildID and member each follow the context precedence rule
	// independently; the error names whichever could not be resolved.
	DecodeVoiceState(p payload.Object, guildID optional.Value[snowflake.ID], member optional.Value[model.Member]) (model.VoiceState, error)

	// DecodeVoiceRegion decodes a voice server region listing.
	DecodeVoiceRegion(p payload.Object) (model.VoiceRegion, error)

	// DecodeWebhook decodes a channel webhook.
	DecodeWebhook(p payload.Object) (model.Webhook, error)
}

// GatewayGuildDefinition is the decomposition of one guild-create or
// guild-update delivery: the guild entity plus its sub-entity
// collections, each keyed by snowflake so a cache layer can ingest
// them independently. Ownership transfers entirely to the caller on
// return.
//
// Channels, Members, Presences, and VoiceStates are nil when the
// delivery did not carry the corresponding array at all (guild
// updates say nothing about them), which is distinct from a non-nil
// empty map, meaning the delivery carried the array with zero
// elements. Roles and Emojis are never nil; both arrays are present
// in every create and update delivery.
type GatewayGuildDefinition struct {
	Guild       model.GatewayGuild
	Channels    map[snowflake.ID]model.Channel
	Members     map[snowflake.ID]model.Member
	Presences   map[snowflake.ID]model.MemberPresence
	VoiceStates map[snowflake.ID]model.VoiceState
	Roles       map[snowflake.ID]model.Role
	Emojis      map[snowflake.ID]model.KnownCustomEmoji
}

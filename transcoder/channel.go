// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"fmt"
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// DecodePermissionOverwrite implements Transcoder.
func (f *Factory) DecodePermissionOverwrite(p payload.Object) (model.PermissionOverwrite, error) {
	const entity = "permission overwrite"
	r := newReader(entity, p)
	overwrite := model.PermissionOverwrite{
		ID:    r.snowflake("id"),
		Type:  model.PermissionOverwriteType(r.string("type")),
		Allow: model.Permission(r.uint64("allow")),
		Deny:  model.Permission(r.uint64("deny")),
	}
	if err := r.err(); err != nil {
		return model.PermissionOverwrite{}, err
	}
	switch overwrite.Type {
	case model.PermissionOverwriteTypeRole, model.PermissionOverwriteTypeMember:
	default:
		return model.PermissionOverwrite{}, &payload.MalformedPayloadError{
			Entity: entity,
			Field:  "type",
			Reason: fmt.Sprintf("unknown overwrite type %q", overwrite.Type),
		}
	}
	return overwrite, nil
}

// EncodePermissionOverwrite implements Transcoder.
func (f *Factory) EncodePermissionOverwrite(overwrite model.PermissionOverwrite) payload.Object {
	return payload.Object{
		"id":    overwrite.ID.String(),
		"type":  string(overwrite.Type),
		"allow": uint64(overwrite.Allow),
		"deny":  uint64(overwrite.Deny),
	}
}

func decodePartialChannelFields(r *reader) model.PartialChannel {
	return model.PartialChannel{
		ID:   r.snowflake("id"),
		Name: r.optString("name"),
		Type: model.ChannelType(r.int("type")),
	}
}

// DecodePartialChannel implements Transcoder.
func (f *Factory) DecodePartialChannel(p payload.Object) (model.PartialChannel, error) {
	r := newReader("partial channel", p)
	channel := decodePartialChannelFields(r)
	if err := r.err(); err != nil {
		return model.PartialChannel{}, err
	}
	return channel, nil
}

func (f *Factory) decodePrivateTextChannelFields(r *reader) model.PrivateTextChannel {
	channel := model.PrivateTextChannel{
		PartialChannel: decodePartialChannelFields(r),
		LastMessageID:  r.optSnowflake("last_message_id"),
		Recipients:     make(map[snowflake.ID]model.User),
	}
	for _, obj := range r.objectArray("recipients") {
		user := decodeNested(r, obj, f.DecodeUser)
		channel.Recipients[user.ID] = user
	}
	return channel
}

// DecodePrivateTextChannel implements Transcoder.
func (f *Factory) DecodePrivateTextChannel(p payload.Object) (model.PrivateTextChannel, error) {
	r := newReader("private text channel", p)
	channel := f.decodePrivateTextChannelFields(r)
	if err := r.err(); err != nil {
		return model.PrivateTextChannel{}, err
	}
	return channel, nil
}

// DecodeGroupPrivateTextChannel implements Transcoder.
func (f *Factory) DecodeGroupPrivateTextChannel(p payload.Object) (model.GroupPrivateTextChannel, error) {
	r := newReader("group private text channel", p)
	channel := model.GroupPrivateTextChannel{
		PrivateTextChannel: f.decodePrivateTextChannelFields(r),
		OwnerID:            r.snowflake("owner_id"),
		IconHash:           r.optString("icon"),
		Nicknames:          make(map[snowflake.ID]string),
		ApplicationID:      r.optSnowflake("application_id"),
	}
	if nicks, ok := r.optObjectArray("nicks").Get(); ok {
		for _, obj := range nicks {
			id := sticky(r, obj.Snowflake, "id")
			nick := sticky(r, obj.String, "nick")
			channel.Nicknames[id] = nick
		}
	}
	if err := r.err(); err != nil {
		return model.GroupPrivateTextChannel{}, err
	}
	return channel, nil
}

// decodeGuildChannel decodes the shape shared by every guild-scoped
// variant, resolving the guild via the context precedence rule.
func (f *Factory) decodeGuildChannel(entity string, p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildChannel, error) {
	resolved, err := resolveGuildID(entity, p, guildID)
	if err != nil {
		return model.GuildChannel{}, err
	}
	r := newReader(entity, p)
	channel := model.GuildChannel{
		PartialChannel:       decodePartialChannelFields(r),
		GuildID:              resolved,
		Position:             r.int("position"),
		PermissionOverwrites: make(map[snowflake.ID]model.PermissionOverwrite),
		IsNSFW:               r.optBool("nsfw"),
		ParentID:             r.optSnowflake("parent_id"),
	}
	for _, obj := range r.objectArray("permission_overwrites") {
		overwrite := decodeNested(r, obj, f.DecodePermissionOverwrite)
		channel.PermissionOverwrites[overwrite.ID] = overwrite
	}
	if err := r.err(); err != nil {
		return model.GuildChannel{}, err
	}
	return channel, nil
}

// DecodeGuildCategory implements Transcoder.
func (f *Factory) DecodeGuildCategory(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildCategory, error) {
	base, err := f.decodeGuildChannel("guild category", p, guildID)
	if err != nil {
		return model.GuildCategory{}, err
	}
	return model.GuildCategory{GuildChannel: base}, nil
}

// DecodeGuildTextChannel implements Transcoder.
func (f *Factory) DecodeGuildTextChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildTextChannel, error) {
	const entity = "guild text channel"
	base, err := f.decodeGuildChannel(entity, p, guildID)
	if err != nil {
		return model.GuildTextChannel{}, err
	}
	r := newReader(entity, p)
	channel := model.GuildTextChannel{
		GuildChannel:     base,
		Topic:            r.optString("topic"),
		LastMessageID:    r.optSnowflake("last_message_id"),
		RateLimitPerUser: time.Duration(r.optInt("rate_limit_per_user").Or(0)) * time.Second,
		LastPinTimestamp: r.optTime("last_pin_timestamp"),
	}
	if err := r.err(); err != nil {
		return model.GuildTextChannel{}, err
	}
	return channel, nil
}

// DecodeGuildNewsChannel implements Transcoder.
func (f *Factory) DecodeGuildNewsChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildNewsChannel, error) {
	const entity = "guild news channel"
	base, err := f.decodeGuildChannel(entity, p, guildID)
	if err != nil {
		return model.GuildNewsChannel{}, err
	}
	r := newReader(entity, p)
	channel := model.GuildNewsChannel{
		GuildChannel:     base,
		Topic:            r.optString("topic"),
		LastMessageID:    r.optSnowflake("last_message_id"),
		LastPinTimestamp: r.optTime("last_pin_timestamp"),
	}
	if err := r.err(); err != nil {
		return model.GuildNewsChannel{}, err
	}
	return channel, nil
}

// DecodeGuildStoreChannel implements Transcoder.
func (f *Factory) DecodeGuildStoreChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildStoreChannel, error) {
	base, err := f.decodeGuildChannel("guild store channel", p, guildID)
	if err != nil {
		return model.GuildStoreChannel{}, err
	}
	return model.GuildStoreChannel{GuildChannel: base}, nil
}

// DecodeGuildVoiceChannel implements Transcoder.
func (f *Factory) DecodeGuildVoiceChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.GuildVoiceChannel, error) {
	const entity = "guild voice channel"
	base, err := f.decodeGuildChannel(entity, p, guildID)
	if err != nil {
		return model.GuildVoiceChannel{}, err
	}
	r := newReader(entity, p)
	channel := model.GuildVoiceChannel{
		GuildChannel: base,
		Bitrate:      r.int("bitrate"),
		UserLimit:    r.int("user_limit"),
	}
	if err := r.err(); err != nil {
		return model.GuildVoiceChannel{}, err
	}
	return channel, nil
}

// DecodeChannel implements Transcoder. The discriminant is inspected
// exactly once, here; every downstream decode trusts the variant it
// was dispatched to.
func (f *Factory) DecodeChannel(p payload.Object, guildID optional.Value[snowflake.ID]) (model.Channel, error) {
	discriminant, err := p.Int("type")
	if err != nil {
		return nil, annotate("channel", err)
	}
	switch model.ChannelType(discriminant) {
	case model.ChannelTypeGuildText:
		return asChannel(f.DecodeGuildTextChannel(p, guildID))
	case model.ChannelTypePrivateText:
		return asChannel(f.DecodePrivateTextChannel(p))
	case model.ChannelTypeGuildVoice:
		return asChannel(f.DecodeGuildVoiceChannel(p, guildID))
	case model.ChannelTypeGroupPrivateText:
		return asChannel(f.DecodeGroupPrivateTextChannel(p))
	case model.ChannelTypeGuildCategory:
		return asChannel(f.DecodeGuildCategory(p, guildID))
	case model.ChannelTypeGuildNews:
		return asChannel(f.DecodeGuildNewsChannel(p, guildID))
	case model.ChannelTypeGuildStore:
		return asChannel(f.DecodeGuildStoreChannel(p, guildID))
	default:
		// Forward compatibility: unrecognized channel kinds decode to
		// the common shape rather than failing.
		return asChannel(f.DecodePartialChannel(p))
	}
}

func asChannel[T model.Channel](channel T, err error) (model.Channel, error) {
	if err != nil {
		return nil, err
	}
	return channel, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/model"
)

func decodeAttachment(p payload.Object) (model.Attachment, error) {
	r := newReader("message", p)
	attachment := model.Attachment{
		ID:       r.snowflake("id"),
		Filename: r.string("filename"),
		Size:     r.int("size"),
		URL:      r.string("url"),
		ProxyURL: r.string("proxy_url"),
		Height:   r.optInt("height"),
		Width:    r.optInt("width"),
	}
	if err := r.err(); err != nil {
		return model.Attachment{}, err
	}
	return attachment, nil
}

func (f *Factory) decodeReaction(p payload.Object) (model.Reaction, error) {
	r := newReader("message", p)
	reaction := model.Reaction{
		Count: r.int("count"),
		Emoji: decodeNested(r, r.object("emoji"), f.DecodeEmoji),
		IsMe:  r.bool("me"),
	}
	if err := r.err(); err != nil {
		return model.Reaction{}, err
	}
	return reaction, nil
}

func decodeMessageActivity(p payload.Object) (model.MessageActivity, error) {
	r := newReader("message", p)
	activity := model.MessageActivity{
		Type:    model.MessageActivityType(r.int("type")),
		PartyID: r.optString("party_id"),
	}
	if err := r.err(); err != nil {
		return model.MessageActivity{}, err
	}
	return activity, nil
}

func decodeMessageApplication(p payload.Object) (model.MessageApplication, error) {
	r := newReader("message", p)
	application := model.MessageApplication{
		ID:             r.snowflake("id"),
		Name:           r.string("name"),
		Description:    r.string("description"),
		IconHash:       r.optString("icon"),
		CoverImageHash: r.optString("cover_image"),
	}
	if err := r.err(); err != nil {
		return model.MessageApplication{}, err
	}
	return application, nil
}

func decodeMessageCrosspost(p payload.Object) (model.MessageCrosspost, error) {
	r := newReader("message", p)
	crosspost := model.MessageCrosspost{
		ID:        r.optSnowflake("message_id"),
		ChannelID: r.snowflake("channel_id"),
		GuildID:   r.optSnowflake("guild_id"),
	}
	if err := r.err(); err != nil {
		return model.MessageCrosspost{}, err
	}
	return crosspost, nil
}

// DecodeMessage implements Transcoder.
func (f *Factory) DecodeMessage(p payload.Object) (model.Message, error) {
	r := newReader("message", p)
	message := model.Message{
		ID:               r.snowflake("id"),
		ChannelID:        r.snowflake("channel_id"),
		GuildID:          r.optSnowflake("guild_id"),
		Author:           decodeNested(r, r.object("author"), f.DecodeUser),
		Content:          r.string("content"),
		Timestamp:        r.time("timestamp"),
		EditedTimestamp:  r.optTime("edited_timestamp"),
		IsTTS:            r.bool("tts"),
		MentionsEveryone: r.bool("mention_everyone"),
		RoleMentionIDs:   r.snowflakeArray("mention_roles"),
		IsPinned:         r.bool("pinned"),
		WebhookID:        r.optSnowflake("webhook_id"),
		Type:             model.MessageType(r.int("type")),
		Activity:         decodeNestedOpt(r, r.optObject("activity"), decodeMessageActivity),
		Application:      decodeNestedOpt(r, r.optObject("application"), decodeMessageApplication),
		MessageReference: decodeNestedOpt(r, r.optObject("message_reference"), decodeMessageCrosspost),
		Flags: optional.Map(r.optInt("flags"), func(v int) model.MessageFlag {
			return model.MessageFlag(v)
		}),
		Nonce: r.optString("nonce"),
	}
	// The member delivery omits its own user object; the hoisted
	// author is shared instead.
	if obj, ok := r.optObject("member").Get(); ok {
		member := decodeNested(r, obj, func(o payload.Object) (model.Member, error) {
			return f.DecodeMember(o, message.GuildID, optional.Present(message.Author))
		})
		message.Member = optional.Present(member)
	}
	for _, obj := range r.objectArray("mentions") {
		message.UserMentionIDs = append(message.UserMentionIDs, sticky(r, obj.Snowflake, "id"))
	}
	for _, obj := range r.optObjectArray("mention_channels").Or(nil) {
		message.ChannelMentionIDs = append(message.ChannelMentionIDs, sticky(r, obj.Snowflake, "id"))
	}
	for _, obj := range r.objectArray("attachments") {
		message.Attachments = append(message.Attachments, decodeNested(r, obj, decodeAttachment))
	}
	for _, obj := range r.objectArray("embeds") {
		message.Embeds = append(message.Embeds, decodeNested(r, obj, f.DecodeEmbed))
	}
	for _, obj := range r.optObjectArray("reactions").Or(nil) {
		message.Reactions = append(message.Reactions, decodeNested(r, obj, f.decodeReaction))
	}
	if err := r.err(); err != nil {
		return model.Message{}, err
	}
	return message, nil
}

// DecodePartialMessage implements Transcoder.
func (f *Factory) DecodePartialMessage(p payload.Object) (model.PartialMessage, error) {
	r := newReader("message", p)
	message := model.PartialMessage{
		ID:               r.snowflake("id"),
		ChannelID:        r.snowflake("channel_id"),
		GuildID:          r.optSnowflake("guild_id"),
		Author:           decodeNestedOpt(r, r.optObject("author"), f.DecodeUser),
		Content:          r.optString("content"),
		Timestamp:        r.optTime("timestamp"),
		EditedTimestamp:  r.optTime("edited_timestamp"),
		IsTTS:            r.optBool("tts"),
		MentionsEveryone: r.optBool("mention_everyone"),
		IsPinned:         r.optBool("pinned"),
		Type: optional.Map(r.optInt("type"), func(v int) model.MessageType {
			return model.MessageType(v)
		}),
		Flags: optional.Map(r.optInt("flags"), func(v int) model.MessageFlag {
			return model.MessageFlag(v)
		}),
		Nonce: r.optString("nonce"),
	}
	if obj, ok := r.optObject("member").Get(); ok {
		member := decodeNested(r, obj, func(o payload.Object) (model.Member, error) {
			return f.DecodeMember(o, message.GuildID, message.Author)
		})
		message.Member = optional.Present(member)
	}
	if attachments, ok := r.optObjectArray("attachments").Get(); ok {
		decoded := make([]model.Attachment, 0, len(attachments))
		for _, obj := range attachments {
			decoded = append(decoded, decodeNested(r, obj, decodeAttachment))
		}
		message.Attachments = optional.Present(decoded)
	}
	if embeds, ok := r.optObjectArray("embeds").Get(); ok {
		decoded := make([]model.Embed, 0, len(embeds))
		for _, obj := range embeds {
			decoded = append(decoded, decodeNested(r, obj, f.DecodeEmbed))
		}
		message.Embeds = optional.Present(decoded)
	}
	if err := r.err(); err != nil {
		return model.PartialMessage{}, err
	}
	return message, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeUnicodeEmoji implements Transcoder.
func (f *Factory) DecodeUnicodeEmoji(p payload.Object) (model.UnicodeEmoji, error) {
	r := newReader("unicode emoji", p)
	emoji := model.UnicodeEmoji{Name: r.string("name")}
	if err := r.err(); err != nil {
		return model.UnicodeEmoji{}, err
	}
	return emoji, nil
}

func decodeCustomEmojiFields(r *reader) model.CustomEmoji {
	return model.CustomEmoji{
		ID:         r.snowflake("id"),
		Name:       r.optString("name"),
		IsAnimated: r.optBool("animated").Or(false),
	}
}

// DecodeCustomEmoji implements Transcoder.
func (f *Factory) DecodeCustomEmoji(p payload.Object) (model.CustomEmoji, error) {
	r := newReader("custom emoji", p)
	emoji := decodeCustomEmojiFields(r)
	if err := r.err(); err != nil {
		return model.CustomEmoji{}, err
	}
	return emoji, nil
}

// DecodeKnownCustomEmoji implements Transcoder.
func (f *Factory) DecodeKnownCustomEmoji(p payload.Object, guildID optional.Value[snowflake.ID]) (model.KnownCustomEmoji, error) {
	const entity = "known custom emoji"
	resolved, err := resolveGuildID(entity, p, guildID)
	if err != nil {
		return model.KnownCustomEmoji{}, err
	}
	r := newReader(entity, p)
	emoji := model.KnownCustomEmoji{
		CustomEmoji:      decodeCustomEmojiFields(r),
		GuildID:          resolved,
		RoleIDs:          r.snowflakeArray("roles"),
		User:             decodeNestedOpt(r, r.optObject("user"), f.DecodeUser),
		IsColonsRequired: r.bool("require_colons"),
		IsManaged:        r.bool("managed"),
		IsAvailable:      r.bool("available"),
	}
	if err := r.err(); err != nil {
		return model.KnownCustomEmoji{}, err
	}
	return emoji, nil
}

// DecodeEmoji implements Transcoder. Presence of "id" selects the
// variant: a custom emoji always carries its snowflake, a literal
// unicode emoji never does.
func (f *Factory) DecodeEmoji(p payload.Object) (model.Emoji, error) {
	id, err := p.OptionalSnowflake("id")
	if err != nil {
		return nil, annotate("emoji", err)
	}
	if id.IsPresent() {
		emoji, err := f.DecodeCustomEmoji(p)
		if err != nil {
			return nil, err
		}
		return emoji, nil
	}
	emoji, err := f.DecodeUnicodeEmoji(p)
	if err != nil {
		return nil, err
	}
	return emoji, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeVoiceState implements Transcoder. The guild and the member are
// resolved independently: either may come from the payload or from
// caller context, and each missing one is reported on its own field.
func (f *Factory) DecodeVoiceState(p payload.Object, guildID optional.Value[snowflake.ID], member optional.Value[model.Member]) (model.VoiceState, error) {
	const entity = "voice state"
	resolved, err := resolveGuildID(entity, p, guildID)
	if err != nil {
		return model.VoiceState{}, err
	}
	r := newReader(entity, p)
	state := model.VoiceState{
		GuildID:         resolved,
		ChannelID:       r.optSnowflake("channel_id"),
		UserID:          r.snowflake("user_id"),
		SessionID:       r.string("session_id"),
		IsGuildDeafened: r.bool("deaf"),
		IsGuildMuted:    r.bool("mute"),
		IsSelfDeafened:  r.bool("self_deaf"),
		IsSelfMuted:     r.bool("self_mute"),
		IsStreaming:     r.optBool("self_stream").Or(false),
		IsVideoEnabled:  r.bool("self_video"),
		IsSuppressed:    r.bool("suppress"),
	}
	if hoisted, ok := member.Get(); ok {
		state.Member = hoisted
	} else if obj, ok := r.optObject("member").Get(); ok {
		state.Member = decodeNested(r, obj, func(o payload.Object) (model.Member, error) {
			return f.DecodeMember(o, optional.Present(resolved), optional.Undefined[model.User]())
		})
	} else if r.failure == nil {
		return model.VoiceState{}, &MissingContextError{Entity: entity, Field: "member"}
	}
	if err := r.err(); err != nil {
		return model.VoiceState{}, err
	}
	return state, nil
}

// DecodeVoiceRegion implements Transcoder.
func (f *Factory) DecodeVoiceRegion(p payload.Object) (model.VoiceRegion, error) {
	r := newReader("voice region", p)
	region := model.VoiceRegion{
		ID:                r.string("id"),
		Name:              r.string("name"),
		IsVIP:             r.bool("vip"),
		IsOptimalLocation: r.bool("optimal"),
		IsDeprecated:      r.bool("deprecated"),
		IsCustom:          r.bool("custom"),
	}
	if err := r.err(); err != nil {
		return model.VoiceRegion{}, err
	}
	return region, nil
}

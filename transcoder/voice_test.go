// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"errors"
	"testing"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/model"
)

const voiceStateJSON = `{
	"guild_id": "456",
	"channel_id": "130",
	"user_id": "2",
	"member": {
		"user": {"id": "2", "username": "ada", "discriminator": "0001"},
		"roles": [],
		"joined_at": "2020-05-22T16:27:53.672000+00:00"
	},
	"session_id": "deadbeef",
	"deaf": true, "mute": false,
	"self_deaf": false, "self_mute": true,
	"self_stream": true,
	"self_video": false, "suppress": false
}`

func TestDecodeVoiceState(t *testing.T) {
	f := NewFactory()
	state, err := f.DecodeVoiceState(mustParse(t, voiceStateJSON),
		noGuildContext(), optional.Undefined[model.Member]())
	if err != nil {
		t.Fatalf("DecodeVoiceState: %v", err)
	}
	if state.GuildID != 456 || state.UserID != 2 {
		t.Errorf("identity = %+v", state)
	}
	if channel, _ := state.ChannelID.Get(); channel != 130 {
		t.Errorf("ChannelID = %v", state.ChannelID)
	}
	if !state.IsGuildDeafened || state.IsGuildMuted || !state.IsSelfMuted {
		t.Errorf("mute flags = %+v", state)
	}
	if !state.IsStreaming {
		t.Errorf("IsStreaming = false, want true")
	}
	if state.Member.User.Username != "ada" {
		t.Errorf("Member = %+v", state.Member)
	}
	// The member inherits the state's resolved guild.
	if state.Member.GuildID != 456 {
		t.Errorf("member guild = %d, want 456", state.Member.GuildID)
	}
}

func TestDecodeVoiceStateMemberContextWins(t *testing.T) {
	f := NewFactory()
	hoisted := model.Member{GuildID: 456, User: model.User{ID: 2, Username: "hoisted"}}
	state, err := f.DecodeVoiceState(mustParse(t, voiceStateJSON),
		noGuildContext(), optional.Present(hoisted))
	if err != nil {
		t.Fatalf("DecodeVoiceState: %v", err)
	}
	if state.Member.User.Username != "hoisted" {
		t.Errorf("Member = %+v, want hoisted context member", state.Member)
	}
}

func TestDecodeVoiceStateMissingMember(t *testing.T) {
	f := NewFactory()
	state := mustParse(t, `{
		"guild_id": "456", "channel_id": null, "user_id": "2",
		"session_id": "deadbeef",
		"deaf": false, "mute": false,
		"self_deaf": false, "self_mute": false,
		"self_video": false, "suppress": false
	}`)
	_, err := f.DecodeVoiceState(state, noGuildContext(), optional.Undefined[model.Member]())
	var missing *MissingContextError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want missing context", err)
	}
	if missing.Field != "member" {
		t.Errorf("Field = %q, want member", missing.Field)
	}
}

func TestDecodeVoiceRegion(t *testing.T) {
	f := NewFactory()
	region, err := f.DecodeVoiceRegion(mustParse(t, `{
		"id": "rotterdam", "name": "Rotterdam",
		"vip": false, "optimal": true, "deprecated": false, "custom": false
	}`))
	if err != nil {
		t.Fatalf("DecodeVoiceRegion: %v", err)
	}
	if region.ID != "rotterdam" || !region.IsOptimalLocation {
		t.Errorf("region = %+v", region)
	}
}

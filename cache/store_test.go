// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"strings"
	"testing"

	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
	"github.com/cadenza-project/cadenza/transcoder"
)

// recordingStore journals every call so tests can assert on the exact
// ingestion sequence.
type recordingStore struct {
	calls   []string
	failOn  string
	failErr error
}

func (s *recordingStore) record(call string) error {
	s.calls = append(s.calls, call)
	if call == s.failOn {
		return s.failErr
	}
	return nil
}

func (s *recordingStore) PutGuild(guild model.GatewayGuild) error {
	return s.record("guild " + guild.ID.String())
}

func (s *recordingStore) PutRole(role model.Role) error {
	return s.record("role " + role.ID.String())
}

func (s *recordingStore) PutEmoji(emoji model.KnownCustomEmoji) error {
	return s.record("emoji " + emoji.ID.String())
}

func (s *recordingStore) PutChannel(channel model.Channel) error {
	return s.record("channel " + channel.Partial().ID.String())
}

func (s *recordingStore) PutMember(member model.Member) error {
	return s.record("member " + member.User.ID.String())
}

func (s *recordingStore) PutPresence(presence model.MemberPresence) error {
	return s.record("presence " + presence.UserID.String())
}

func (s *recordingStore) PutVoiceState(state model.VoiceState) error {
	return s.record("voice " + state.UserID.String())
}

func (s *recordingStore) ClearGuildVoiceStates(guildID snowflake.ID) error {
	return s.record("clear-voice " + guildID.String())
}

func guildCreateDefinition() transcoder.GatewayGuildDefinition {
	return transcoder.GatewayGuildDefinition{
		Guild: model.GatewayGuild{Guild: model.Guild{PartialGuild: model.PartialGuild{ID: 456}}},
		Roles: map[snowflake.ID]model.Role{
			40: {ID: 40}, 33: {ID: 33},
		},
		Emojis: map[snowflake.ID]model.KnownCustomEmoji{
			123: {CustomEmoji: model.CustomEmoji{ID: 123}},
		},
		Channels: map[snowflake.ID]model.Channel{
			124: model.PartialChannel{ID: 124},
			120: model.PartialChannel{ID: 120},
		},
		Members: map[snowflake.ID]model.Member{
			2: {User: model.User{ID: 2}},
		},
		VoiceStates: map[snowflake.ID]model.VoiceState{
			2: {UserID: 2, GuildID: 456},
		},
	}
}

func TestIngestOrder(t *testing.T) {
	store := &recordingStore{}
	if err := Ingest(store, guildCreateDefinition()); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	want := []string{
		"guild 456",
		"role 33", "role 40",
		"emoji 123",
		"channel 120", "channel 124",
		"member 2",
		"clear-voice 456",
		"voice 2",
	}
	if got := strings.Join(store.calls, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("call sequence:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestIngestSkipsAbsentCollections(t *testing.T) {
	store := &recordingStore{}
	def := guildCreateDefinition()
	// An update delivery: collections the gateway did not send.
	def.Channels = nil
	def.Members = nil
	def.Presences = nil
	def.VoiceStates = nil
	if err := Ingest(store, def); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	for _, call := range store.calls {
		if strings.HasPrefix(call, "channel") || strings.HasPrefix(call, "member") ||
			strings.HasPrefix(call, "voice") || strings.HasPrefix(call, "clear-voice") {
			t.Errorf("absent collection touched the store: %q", call)
		}
	}
}

func TestIngestEmptyVoiceStatesStillClears(t *testing.T) {
	store := &recordingStore{}
	def := guildCreateDefinition()
	// Present-but-empty is authoritative: everyone disconnected.
	def.VoiceStates = map[snowflake.ID]model.VoiceState{}
	if err := Ingest(store, def); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	cleared := false
	for _, call := range store.calls {
		if call == "clear-voice 456" {
			cleared = true
		}
	}
	if !cleared {
		t.Errorf("empty voice state map did not clear: %v", store.calls)
	}
}

func TestIngestPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("disk full")
	store := &recordingStore{failOn: "role 33", failErr: boom}
	err := Ingest(store, guildCreateDefinition())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
	if !strings.Contains(err.Error(), "role 33") {
		t.Errorf("err = %v, want failing entity named", err)
	}
}

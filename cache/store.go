// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"

	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
	"github.com/cadenza-project/cadenza/transcoder"
)

// Store is the ingestion surface a state cache exposes to the decode
// pipeline. Every method upserts: an entity with a known key replaces
// the previous version. Implementations own their concurrency control;
// Ingest calls methods one at a time from the caller's goroutine.
type Store interface {
	PutGuild(guild model.GatewayGuild) error
	PutRole(role model.Role) error
	PutEmoji(emoji model.KnownCustomEmoji) error
	PutChannel(channel model.Channel) error
	PutMember(member model.Member) error
	PutPresence(presence model.MemberPresence) error
	PutVoiceState(state model.VoiceState) error

	// ClearGuildVoiceStates removes every voice state held for the
	// guild. A guild-create delivery is authoritative for voice: a
	// state missing from the delivery means that member disconnected
	// while the client was away.
	ClearGuildVoiceStates(guildID snowflake.ID) error
}

// Ingest feeds one decoded gateway guild delivery into the store. The
// collections that were absent from the delivery (nil maps on the
// definition) are skipped entirely: an update delivery says nothing
// about members, so the store's members must not be touched.
//
// Entities are ingested in snowflake order so that two ingests of the
// same delivery issue the same call sequence, which keeps store
// implementations that journal their writes deterministic.
func Ingest(store Store, def transcoder.GatewayGuildDefinition) error {
	if err := store.PutGuild(def.Guild); err != nil {
		return fmt.Errorf("cache: ingest guild %s: %w", def.Guild.ID, err)
	}
	for _, id := range snowflake.SortedKeys(def.Roles) {
		if err := store.PutRole(def.Roles[id]); err != nil {
			return fmt.Errorf("cache: ingest role %s: %w", id, err)
		}
	}
	for _, id := range snowflake.SortedKeys(def.Emojis) {
		if err := store.PutEmoji(def.Emojis[id]); err != nil {
			return fmt.Errorf("cache: ingest emoji %s: %w", id, err)
		}
	}
	if def.Channels != nil {
		for _, id := range snowflake.SortedKeys(def.Channels) {
			if err := store.PutChannel(def.Channels[id]); err != nil {
				return fmt.Errorf("cache: ingest channel %s: %w", id, err)
			}
		}
	}
	if def.Members != nil {
		for _, id := range snowflake.SortedKeys(def.Members) {
			if err := store.PutMember(def.Members[id]); err != nil {
				return fmt.Errorf("cache: ingest member %s: %w", id, err)
			}
		}
	}
	if def.Presences != nil {
		for _, id := range snowflake.SortedKeys(def.Presences) {
			if err := store.PutPresence(def.Presences[id]); err != nil {
				return fmt.Errorf("cache: ingest presence %s: %w", id, err)
			}
		}
	}
	if def.VoiceStates != nil {
		if err := store.ClearGuildVoiceStates(def.Guild.ID); err != nil {
			return fmt.Errorf("cache: clear voice states for %s: %w", def.Guild.ID, err)
		}
		for _, id := range snowflake.SortedKeys(def.VoiceStates) {
			if err := store.PutVoiceState(def.VoiceStates[id]); err != nil {
				return fmt.Errorf("cache: ingest voice state %s: %w", id, err)
			}
		}
	}
	return nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"testing"

	"github.com/cadenza-project/cadenza/model"
)

func TestDecodeEmojiUnicode(t *testing.T) {
	f := NewFactory()
	emoji, err := f.DecodeEmoji(mustParse(t, `{"id": null, "name": "🔥"}`))
	if err != nil {
		t.Fatalf("DecodeEmoji: %v", err)
	}
	unicode, ok := emoji.(model.UnicodeEmoji)
	if !ok {
		t.Fatalf("DecodeEmoji = %T, want UnicodeEmoji", emoji)
	}
	if unicode.Name != "🔥" {
		t.Errorf("Name = %q, want 🔥", unicode.Name)
	}
}

func TestDecodeEmojiCustom(t *testing.T) {
	f := NewFactory()
	emoji, err := f.DecodeEmoji(mustParse(t, `{"id": "123", "name": "pog", "animated": true}`))
	if err != nil {
		t.Fatalf("DecodeEmoji: %v", err)
	}
	custom, ok := emoji.(model.CustomEmoji)
	if !ok {
		t.Fatalf("DecodeEmoji = %T, want CustomEmoji", emoji)
	}
	if custom.ID != 123 || !custom.IsAnimated {
		t.Errorf("custom = %+v", custom)
	}
	if name, _ := custom.Name.Get(); name != "pog" {
		t.Errorf("Name = %q, want pog", name)
	}
}

func TestDecodeCustomEmojiNullName(t *testing.T) {
	f := NewFactory()
	emoji, err := f.DecodeCustomEmoji(mustParse(t, `{"id": "123", "name": null}`))
	if err != nil {
		t.Fatalf("DecodeCustomEmoji: %v", err)
	}
	if !emoji.Name.IsNull() {
		t.Errorf("Name = %v, want null", emoji.Name)
	}
}

func TestDecodeKnownCustomEmoji(t *testing.T) {
	f := NewFactory()
	emoji, err := f.DecodeKnownCustomEmoji(mustParse(t, `{
		"id": "123",
		"name": "pog",
		"roles": ["7", "8"],
		"user": {"id": "9", "username": "ada", "discriminator": "0001"},
		"require_colons": true,
		"managed": false,
		"available": true
	}`), guildContext(456))
	if err != nil {
		t.Fatalf("DecodeKnownCustomEmoji: %v", err)
	}
	if emoji.GuildID != 456 {
		t.Errorf("GuildID = %d, want 456", emoji.GuildID)
	}
	if len(emoji.RoleIDs) != 2 || emoji.RoleIDs[0] != 7 {
		t.Errorf("RoleIDs = %v", emoji.RoleIDs)
	}
	uploader, ok := emoji.User.Get()
	if !ok || uploader.Username != "ada" {
		t.Errorf("User = %+v", emoji.User)
	}
	if !emoji.IsColonsRequired || emoji.IsManaged || !emoji.IsAvailable {
		t.Errorf("flags = %+v", emoji)
	}
}

func TestDecodeKnownCustomEmojiMissingGuild(t *testing.T) {
	f := NewFactory()
	_, err := f.DecodeKnownCustomEmoji(mustParse(t, `{
		"id": "123", "name": "pog", "roles": [],
		"require_colons": true, "managed": false, "available": true
	}`), noGuildContext())
	if !IsMissingContext(err) {
		t.Fatalf("err = %v, want missing context", err)
	}
}

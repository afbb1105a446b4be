// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"testing"

	"github.com/cadenza-project/cadenza/model"
)

func TestDecodeMessage(t *testing.T) {
	f := NewFactory()
	message, err := f.DecodeMessage(mustParse(t, `{
		"id": "1000",
		"channel_id": "123",
		"guild_id": "456",
		"author": {"id": "2", "username": "ada", "discriminator": "0001"},
		"member": {
			"roles": ["33"],
			"joined_at": "2020-05-22T16:27:53.672000+00:00"
		},
		"content": "look at this",
		"timestamp": "2020-06-01T10:00:00.000000+00:00",
		"edited_timestamp": null,
		"tts": false,
		"mention_everyone": false,
		"mentions": [{"id": "3", "username": "bob", "discriminator": "0002"}],
		"mention_roles": ["33"],
		"mention_channels": [{"id": "124", "guild_id": "456", "type": 0, "name": "news"}],
		"attachments": [{
			"id": "701", "filename": "cat.png", "size": 1024,
			"url": "https://cdn.example.com/cat.png",
			"proxy_url": "https://proxy.example.com/cat.png",
			"height": 230, "width": 320
		}],
		"embeds": [{"title": "embedded"}],
		"reactions": [{"count": 2, "me": true, "emoji": {"id": "123", "name": "pog"}}],
		"pinned": true,
		"type": 0,
		"message_reference": {"channel_id": "122"},
		"flags": 2,
		"nonce": "171000788183678976"
	}`))
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if message.ID != 1000 || message.ChannelID != 123 {
		t.Errorf("identity = %+v", message)
	}
	if message.Author.Username != "ada" {
		t.Errorf("Author = %+v", message.Author)
	}
	member, ok := message.Member.Get()
	if !ok {
		t.Fatalf("Member undefined")
	}
	// The member record has no user of its own; it shares the author.
	if member.User.ID != message.Author.ID {
		t.Errorf("member user = %d, want author %d", member.User.ID, message.Author.ID)
	}
	if member.GuildID != 456 {
		t.Errorf("member guild = %d, want 456", member.GuildID)
	}
	if !message.EditedTimestamp.IsNull() {
		t.Errorf("EditedTimestamp = %v, want null", message.EditedTimestamp)
	}
	if len(message.UserMentionIDs) != 1 || message.UserMentionIDs[0] != 3 {
		t.Errorf("UserMentionIDs = %v", message.UserMentionIDs)
	}
	if len(message.ChannelMentionIDs) != 1 || message.ChannelMentionIDs[0] != 124 {
		t.Errorf("ChannelMentionIDs = %v", message.ChannelMentionIDs)
	}
	if len(message.Attachments) != 1 || message.Attachments[0].Filename != "cat.png" {
		t.Errorf("Attachments = %+v", message.Attachments)
	}
	if len(message.Embeds) != 1 {
		t.Errorf("Embeds = %+v", message.Embeds)
	}
	if len(message.Reactions) != 1 || message.Reactions[0].Count != 2 || !message.Reactions[0].IsMe {
		t.Errorf("Reactions = %+v", message.Reactions)
	}
	reference, _ := message.MessageReference.Get()
	if reference.ChannelID != 122 || reference.ID.IsPresent() {
		t.Errorf("MessageReference = %+v", reference)
	}
	if flags, _ := message.Flags.Get(); flags != model.MessageFlagIsCrosspost {
		t.Errorf("Flags = %v", message.Flags)
	}
}

func TestDecodePartialMessageThreeState(t *testing.T) {
	f := NewFactory()
	message, err := f.DecodePartialMessage(mustParse(t, `{
		"id": "1000",
		"channel_id": "123",
		"content": null,
		"embeds": []
	}`))
	if err != nil {
		t.Fatalf("DecodePartialMessage: %v", err)
	}
	if message.ID != 1000 || message.ChannelID != 123 {
		t.Errorf("identity = %+v", message)
	}
	// Cleared, unchanged, and changed-to-empty are three different
	// things on an update delivery.
	if !message.Content.IsNull() {
		t.Errorf("Content = %v, want null (cleared)", message.Content)
	}
	if !message.Author.IsUndefined() {
		t.Errorf("Author = %v, want undefined (unchanged)", message.Author)
	}
	embeds, ok := message.Embeds.Get()
	if !ok || embeds == nil || len(embeds) != 0 {
		t.Errorf("Embeds = %v, want present empty slice", message.Embeds)
	}
	if message.Attachments.IsPresent() {
		t.Errorf("Attachments = %v, want undefined", message.Attachments)
	}
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"testing"
	"time"

	"github.com/cadenza-project/cadenza/model"
)

const inviteJSON = `{
	"code": "aCode",
	"guild": {
		"id": "456", "name": "testing grounds", "features": [],
		"splash": null, "banner": "banner_hash",
		"description": "describe me", "verification_level": 2,
		"vanity_url_code": null
	},
	"channel": {"id": "123", "name": "general", "type": 0},
	"inviter": {"id": "9", "username": "mod", "discriminator": "0002"},
	"target_user": {"id": "2", "username": "ada", "discriminator": "0001"},
	"target_user_type": 1,
	"approximate_presence_count": 42,
	"approximate_member_count": 84
}`

func TestDecodeInvite(t *testing.T) {
	f := NewFactory()
	invite, err := f.DecodeInvite(mustParse(t, inviteJSON))
	if err != nil {
		t.Fatalf("DecodeInvite: %v", err)
	}
	if invite.Code != "aCode" {
		t.Errorf("Code = %q", invite.Code)
	}
	guild, ok := invite.Guild.Get()
	if !ok || guild.ID != 456 || guild.VerificationLevel != model.VerificationLevelMedium {
		t.Errorf("Guild = %+v", invite.Guild)
	}
	if !guild.SplashHash.IsNull() {
		t.Errorf("SplashHash = %v, want null", guild.SplashHash)
	}
	if invite.Channel.ID != 123 {
		t.Errorf("Channel = %+v", invite.Channel)
	}
	if kind, _ := invite.TargetUserType.Get(); kind != model.TargetUserTypeStream {
		t.Errorf("TargetUserType = %v", invite.TargetUserType)
	}
	if n, _ := invite.ApproximateMemberCount.Get(); n != 84 {
		t.Errorf("ApproximateMemberCount = %v", invite.ApproximateMemberCount)
	}
}

func TestDecodeInviteWithMetadata(t *testing.T) {
	f := NewFactory()
	invite, err := f.DecodeInviteWithMetadata(mustParse(t, `{
		"code": "aCode",
		"channel": {"id": "123", "type": 0},
		"uses": 3,
		"max_uses": 10,
		"max_age": 86400,
		"temporary": true,
		"created_at": "2020-05-22T16:27:53.672000+00:00"
	}`))
	if err != nil {
		t.Fatalf("DecodeInviteWithMetadata: %v", err)
	}
	if invite.Uses != 3 || invite.MaxUses != 10 || !invite.IsTemporary {
		t.Errorf("usage = %+v", invite)
	}
	if invite.MaxAge != 24*time.Hour {
		t.Errorf("MaxAge = %v, want 24h", invite.MaxAge)
	}
	if invite.Guild.IsPresent() {
		t.Errorf("Guild = %v, want undefined for group-DM invite", invite.Guild)
	}
}

func TestDecodeVanityURL(t *testing.T) {
	f := NewFactory()
	vanity, err := f.DecodeVanityURL(mustParse(t, `{"code": "iamacode", "uses": 42}`))
	if err != nil {
		t.Fatalf("DecodeVanityURL: %v", err)
	}
	if vanity.Code != "iamacode" || vanity.Uses != 42 {
		t.Errorf("vanity = %+v", vanity)
	}
}

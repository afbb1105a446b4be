// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeVanityURL implements Transcoder.
func (f *Factory) DecodeVanityURL(p payload.Object) (model.VanityURL, error) {
	r := newReader("vanity url", p)
	vanity := model.VanityURL{
		Code: r.string("code"),
		Uses: r.int("uses"),
	}
	if err := r.err(); err != nil {
		return model.VanityURL{}, err
	}
	return vanity, nil
}

func decodeInviteGuild(p payload.Object) (model.InviteGuild, error) {
	r := newReader("invite", p)
	guild := model.InviteGuild{
		PartialGuild:      decodePartialGuildFields(r),
		SplashHash:        r.optString("splash"),
		BannerHash:        r.optString("banner"),
		Description:       r.optString("description"),
		VerificationLevel: model.VerificationLevel(r.int("verification_level")),
		VanityURLCode:     r.optString("vanity_url_code"),
	}
	if err := r.err(); err != nil {
		return model.InviteGuild{}, err
	}
	return guild, nil
}

func (f *Factory) decodeInviteFields(r *reader) model.Invite {
	return model.Invite{
		Code:       r.string("code"),
		Guild:      decodeNestedOpt(r, r.optObject("guild"), decodeInviteGuild),
		Channel:    decodeNested(r, r.object("channel"), f.DecodePartialChannel),
		Inviter:    decodeNestedOpt(r, r.optObject("inviter"), f.DecodeUser),
		TargetUser: decodeNestedOpt(r, r.optObject("target_user"), f.DecodeUser),
		TargetUserType: optional.Map(r.optInt("target_user_type"), func(v int) model.TargetUserType {
			return model.TargetUserType(v)
		}),
		ApproximatePresenceCount: r.optInt("approximate_presence_count"),
		ApproximateMemberCount:   r.optInt("approximate_member_count"),
	}
}

// DecodeInvite implements Transcoder.
func (f *Factory) DecodeInvite(p payload.Object) (model.Invite, error) {
	r := newReader("invite", p)
	invite := f.decodeInviteFields(r)
	if err := r.err(); err != nil {
		return model.Invite{}, err
	}
	return invite, nil
}

// DecodeInviteWithMetadata implements Transcoder.
func (f *Factory) DecodeInviteWithMetadata(p payload.Object) (model.InviteWithMetadata, error) {
	r := newReader("invite", p)
	invite := model.InviteWithMetadata{
		Invite:      f.decodeInviteFields(r),
		Uses:        r.int("uses"),
		MaxUses:     r.int("max_uses"),
		MaxAge:      r.seconds("max_age"),
		IsTemporary: r.bool("temporary"),
		CreatedAt:   r.time("created_at"),
	}
	if err := r.err(); err != nil {
		return model.InviteWithMetadata{}, err
	}
	return invite, nil
}

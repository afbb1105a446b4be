// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/model"
)

func decodeUserFields(r *reader) model.User {
	return model.User{
		ID:            r.snowflake("id"),
		Username:      r.string("username"),
		Discriminator: r.string("discriminator"),
		AvatarHash:    r.optString("avatar"),
		IsBot:         r.optBool("bot").Or(false),
		IsSystem:      r.optBool("system").Or(false),
		Flags:         model.UserFlag(r.optUint64("public_flags").Or(0)),
	}
}

// DecodeUser implements Transcoder.
func (f *Factory) DecodeUser(p payload.Object) (model.User, error) {
	r := newReader("user", p)
	user := decodeUserFields(r)
	if err := r.err(); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// DecodeMyUser implements Transcoder.
func (f *Factory) DecodeMyUser(p payload.Object) (model.OwnUser, error) {
	r := newReader("own user", p)
	user := model.OwnUser{
		User:         decodeUserFields(r),
		IsMFAEnabled: r.optBool("mfa_enabled").Or(false),
		Locale:       r.optString("locale"),
		IsVerified:   r.optBool("verified"),
		Email:        r.optString("email"),
		PremiumType: optional.Map(r.optInt("premium_type"), func(n int) model.PremiumType {
			return model.PremiumType(n)
		}),
	}
	if err := r.err(); err != nil {
		return model.OwnUser{}, err
	}
	return user, nil
}

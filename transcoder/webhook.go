// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeWebhook implements Transcoder.
func (f *Factory) DecodeWebhook(p payload.Object) (model.Webhook, error) {
	r := newReader("webhook", p)
	webhook := model.Webhook{
		ID:            r.snowflake("id"),
		Type:          model.WebhookType(r.int("type")),
		GuildID:       r.optSnowflake("guild_id"),
		ChannelID:     r.snowflake("channel_id"),
		Author:        decodeNestedOpt(r, r.optObject("user"), f.DecodeUser),
		Name:          r.optString("name"),
		AvatarHash:    r.optString("avatar"),
		Token:         r.optString("token"),
		ApplicationID: r.optSnowflake("application_id"),
	}
	if err := r.err(); err != nil {
		return model.Webhook{}, err
	}
	return webhook, nil
}

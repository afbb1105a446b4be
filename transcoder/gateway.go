// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeGatewayBot implements Transcoder.
func (f *Factory) DecodeGatewayBot(p payload.Object) (model.GatewayBot, error) {
	const entity = "gateway bot"
	r := newReader(entity, p)
	bot := model.GatewayBot{
		URL:        r.string("url"),
		ShardCount: r.int("shards"),
	}
	limit := r.object("session_start_limit")
	bot.SessionStartLimit = model.SessionStartLimit{
		Total:     sticky(r, limit.Int, "total"),
		Remaining: sticky(r, limit.Int, "remaining"),
		// The wire expresses the reset horizon in milliseconds.
		ResetAfter: time.Duration(sticky(r, limit.Int64, "reset_after")) * time.Millisecond,
	}
	if err := r.err(); err != nil {
		return model.GatewayBot{}, err
	}
	return bot, nil
}

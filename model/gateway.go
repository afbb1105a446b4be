// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import "time"

// SessionStartLimit is the gateway's session budget for a bot.
type SessionStartLimit struct {
	Total     int
	Remaining int
	// ResetAfter is how long until Remaining resets to Total.
	ResetAfter time.Duration
}

// GatewayBot is the bot-scoped gateway connection recommendation.
type GatewayBot struct {
	URL               string
	ShardCount        int
	SessionStartLimit SessionStartLimit
}

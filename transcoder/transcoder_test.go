// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"testing"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

func mustParse(t *testing.T, raw string) payload.Object {
	t.Helper()
	obj, err := payload.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return obj
}

func guildContext(id snowflake.ID) optional.Value[snowflake.ID] {
	return optional.Present(id)
}

func noGuildContext() optional.Value[snowflake.ID] {
	return optional.Undefined[snowflake.ID]()
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/jsonc"
)

// Parse decodes raw JSON bytes into an Object. The top level must be
// a JSON object. Numbers are kept as json.Number so snowflakes and
// 64-bit bitfields never pass through float64.
func Parse(data []byte) (Object, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var obj Object
	if err := decoder.Decode(&obj); err != nil {
		return nil, &MalformedPayloadError{Field: "", Reason: "not a JSON object", Err: err}
	}
	return obj, nil
}

// ParseLenient is Parse for hand-authored payload files: comments and
// trailing commas are stripped first. Wire payloads are always strict
// JSON; this path exists for test fixtures and the inspector CLI.
func ParseLenient(data []byte) (Object, error) {
	return Parse(jsonc.ToJSON(data))
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

// Factory is the production Transcoder. It is stateless; the zero
// value is ready to use and a single Factory may serve any number of
// goroutines.
type Factory struct{}

var _ Transcoder = (*Factory)(nil)

// NewFactory returns a production Transcoder.
func NewFactory() *Factory {
	return &Factory{}
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Cadenza's standard CBOR encoding
// configuration.
//
// Cadenza uses two serialization formats with a clear boundary:
//
//   - JSON for the wire: platform REST responses and gateway event
//     payloads, handled by lib/payload and the transcoder.
//   - CBOR for everything internal: entity snapshots handed to a
//     cache store and any on-disk state derived from them.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every Cadenza package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, which is what lets a cache fingerprint a snapshot by hashing
// it.
//
// For buffer-oriented operations (snapshots, state files):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec

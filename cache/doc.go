// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package cache defines the boundary between the transcoder and a
// state cache. The transcoder is purely functional and retains
// nothing; a client that wants cheap entity lookups feeds decoded
// entities into a Store. This package holds the Store contract, the
// ingestion helper that decomposes a gateway guild delivery into Store
// calls, and the Snapshot container entities travel in when the store
// persists them.
//
// No storage lives here. A Store implementation (in-memory maps, an
// embedded database, a remote cache) is the client's concern.
package cache

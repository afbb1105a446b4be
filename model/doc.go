// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package model defines the typed domain entities the transcoder
// produces: users, guilds, channels, emoji, messages, presences, voice
// states, invites, webhooks, applications, and audit logs.
//
// Entities are plain values. A decoded entity has no linkage back to
// the payload it came from and shares no mutable state with any other
// entity. Fields that the wire may omit or send as explicit null use
// optional.Value so the distinction survives; fields the wire always
// sends are plain Go types.
//
// Variant families (channels, emoji) are sealed interfaces with one
// struct per variant. The discriminant is decided once at decode time;
// consumers select variants with a type switch, never by re-inspecting
// fields.
package model

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/resource"
)

// Color is a 24-bit RGB color as the wire carries it.
type Color int

// Embed is a rich-content block attached to a message. It is the one
// entity that travels both directions: decoded from message payloads
// and encoded for outbound sends. Image, Thumbnail, Footer.Icon, and
// Author.Icon may hold local resources on the encode path; the embed
// encoder turns those into attachment placeholders plus an ordered
// upload list.
type Embed struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	URL         optional.Value[string]
	Timestamp   optional.Value[time.Time]
	Color       optional.Value[Color]
	Footer      optional.Value[EmbedFooter]
	Image       optional.Value[EmbedImage]
	Thumbnail   optional.Value[EmbedImage]
	Video       optional.Value[EmbedVideo]
	Provider    optional.Value[EmbedProvider]
	Author      optional.Value[EmbedAuthor]
	Fields      []EmbedField
}

// EmbedFooter is the footer line of an embed.
type EmbedFooter struct {
	Text string
	// Icon is nil when the footer has no icon.
	Icon         resource.Resource
	ProxyIconURL optional.Value[string]
}

// EmbedImage is an embed's image or thumbnail.
type EmbedImage struct {
	// Resource is never nil on a decoded image; on the encode path it
	// may be a local file or in-memory bytes.
	Resource resource.Resource
	ProxyURL optional.Value[string]
	Height   optional.Value[int]
	Width    optional.Value[int]
}

// EmbedVideo is an embed's video. Videos are provider-supplied and
// never uploadable, so the reference is a plain URL.
type EmbedVideo struct {
	URL    optional.Value[string]
	Height optional.Value[int]
	Width  optional.Value[int]
}

// EmbedProvider credits the service an embed was scraped from.
type EmbedProvider struct {
	Name optional.Value[string]
	URL  optional.Value[string]
}

// EmbedAuthor is the author line of an embed.
type EmbedAuthor struct {
	Name optional.Value[string]
	URL  optional.Value[string]
	// Icon is nil when the author line has no icon.
	Icon         resource.Resource
	ProxyIconURL optional.Value[string]
}

// EmbedField is one name/value pair in an embed's field table.
type EmbedField struct {
	Name     string
	Value    string
	IsInline bool
}

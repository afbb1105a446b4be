// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"strings"
	"testing"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/resource"
	"github.com/cadenza-project/cadenza/model"
)

func TestDecodeEmbed(t *testing.T) {
	f := NewFactory()
	embed, err := f.DecodeEmbed(mustParse(t, `{
		"title": "release notes",
		"description": "what changed",
		"url": "https://example.com/notes",
		"timestamp": "2020-03-22T16:40:39.218000+00:00",
		"color": 14014915,
		"footer": {"text": "v1.2", "icon_url": "https://example.com/icon.png"},
		"image": {"url": "https://example.com/banner.png", "height": 400, "width": 600},
		"provider": {"name": "example"},
		"author": {"name": "release bot"},
		"fields": [{"name": "breaking", "value": "none", "inline": true}]
	}`))
	if err != nil {
		t.Fatalf("DecodeEmbed: %v", err)
	}
	if title, _ := embed.Title.Get(); title != "release notes" {
		t.Errorf("Title = %v", embed.Title)
	}
	if color, _ := embed.Color.Get(); color != 14014915 {
		t.Errorf("Color = %v", embed.Color)
	}
	footer, _ := embed.Footer.Get()
	if footer.Icon == nil || footer.Icon.URL() != "https://example.com/icon.png" {
		t.Errorf("footer icon = %v", footer.Icon)
	}
	image, _ := embed.Image.Get()
	if image.Resource.URL() != "https://example.com/banner.png" {
		t.Errorf("image resource = %v", image.Resource)
	}
	if h, _ := image.Height.Get(); h != 400 {
		t.Errorf("image height = %v", image.Height)
	}
	if len(embed.Fields) != 1 || !embed.Fields[0].IsInline {
		t.Errorf("Fields = %+v", embed.Fields)
	}
}

func TestEncodeEmbedUploadOrder(t *testing.T) {
	f := NewFactory()
	embed := model.Embed{
		Title: optional.Present("art dump"),
		Image: optional.Present(model.EmbedImage{
			Resource: resource.File{Path: "/tmp/one.png"},
		}),
		Thumbnail: optional.Present(model.EmbedImage{
			Resource: resource.Bytes{Name: "two.png", Data: []byte("x")},
		}),
		Footer: optional.Present(model.EmbedFooter{
			Text: "footer",
			Icon: resource.File{Path: "/tmp/three.png"},
		}),
		Author: optional.Present(model.EmbedAuthor{
			Name: optional.Present("me"),
			Icon: resource.Bytes{Name: "four.png", Data: []byte("y")},
		}),
	}
	_, uploads, err := f.EncodeEmbed(embed)
	if err != nil {
		t.Fatalf("EncodeEmbed: %v", err)
	}
	want := []string{"one.png", "two.png", "three.png", "four.png"}
	if len(uploads) != len(want) {
		t.Fatalf("uploads = %d resources, want %d", len(uploads), len(want))
	}
	for i, name := range want {
		if uploads[i].Filename() != name {
			t.Errorf("uploads[%d] = %q, want %q", i, uploads[i].Filename(), name)
		}
	}
}

func TestEncodeEmbedPlaceholders(t *testing.T) {
	f := NewFactory()
	embed := model.Embed{
		Image: optional.Present(model.EmbedImage{
			Resource: resource.Bytes{Data: []byte("pixels")},
		}),
	}
	p, uploads, err := f.EncodeEmbed(embed)
	if err != nil {
		t.Fatalf("EncodeEmbed: %v", err)
	}
	if len(uploads) != 1 {
		t.Fatalf("uploads = %+v", uploads)
	}
	image, err := p.Object("image")
	if err != nil {
		t.Fatalf("encoded image: %v", err)
	}
	url, err := image.String("url")
	if err != nil {
		t.Fatalf("encoded image url: %v", err)
	}
	if !strings.HasPrefix(url, resource.AttachmentScheme) {
		t.Errorf("url = %q, want attachment placeholder", url)
	}
	if url != resource.AttachmentScheme+uploads[0].Filename() {
		t.Errorf("placeholder %q does not match upload %q", url, uploads[0].Filename())
	}
}

func TestEncodeEmbedDeterministic(t *testing.T) {
	f := NewFactory()
	embed := model.Embed{
		Image: optional.Present(model.EmbedImage{
			Resource: resource.Bytes{Data: []byte("pixels")},
		}),
	}
	first, _, err := f.EncodeEmbed(embed)
	if err != nil {
		t.Fatalf("EncodeEmbed: %v", err)
	}
	second, _, err := f.EncodeEmbed(embed)
	if err != nil {
		t.Fatalf("EncodeEmbed: %v", err)
	}
	firstImage, _ := first.Object("image")
	secondImage, _ := second.Object("image")
	firstURL, _ := firstImage.String("url")
	secondURL, _ := secondImage.String("url")
	if firstURL != secondURL {
		t.Errorf("placeholder not stable across encodes: %q vs %q", firstURL, secondURL)
	}
}

func TestEncodeRemoteImageNotUploaded(t *testing.T) {
	f := NewFactory()
	embed := model.Embed{
		Image: optional.Present(model.EmbedImage{
			Resource: resource.URL("https://example.com/banner.png"),
		}),
	}
	p, uploads, err := f.EncodeEmbed(embed)
	if err != nil {
		t.Fatalf("EncodeEmbed: %v", err)
	}
	if len(uploads) != 0 {
		t.Errorf("uploads = %+v, want none for a remote image", uploads)
	}
	image, _ := p.Object("image")
	if url, _ := image.String("url"); url != "https://example.com/banner.png" {
		t.Errorf("url = %q", url)
	}
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/resource"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeEmbed implements Transcoder.
func (f *Factory) DecodeEmbed(p payload.Object) (model.Embed, error) {
	r := newReader("embed", p)
	embed := model.Embed{
		Title:       r.optString("title"),
		Description: r.optString("description"),
		URL:         r.optString("url"),
		Timestamp:   r.optTime("timestamp"),
		Color:       optional.Map(r.optInt("color"), func(c int) model.Color { return model.Color(c) }),
		Footer:      decodeNestedOpt(r, r.optObject("footer"), decodeEmbedFooter),
		Image:       decodeNestedOpt(r, r.optObject("image"), decodeEmbedImage),
		Thumbnail:   decodeNestedOpt(r, r.optObject("thumbnail"), decodeEmbedImage),
		Video:       decodeNestedOpt(r, r.optObject("video"), decodeEmbedVideo),
		Provider:    decodeNestedOpt(r, r.optObject("provider"), decodeEmbedProvider),
		Author:      decodeNestedOpt(r, r.optObject("author"), decodeEmbedAuthor),
	}
	for _, obj := range r.optObjectArray("fields").Or(nil) {
		embed.Fields = append(embed.Fields, decodeNested(r, obj, decodeEmbedField))
	}
	if err := r.err(); err != nil {
		return model.Embed{}, err
	}
	return embed, nil
}

func decodeEmbedFooter(p payload.Object) (model.EmbedFooter, error) {
	r := newReader("embed", p)
	footer := model.EmbedFooter{
		Text:         r.string("text"),
		Icon:         remoteIcon(r.optString("icon_url")),
		ProxyIconURL: r.optString("proxy_icon_url"),
	}
	if err := r.err(); err != nil {
		return model.EmbedFooter{}, err
	}
	return footer, nil
}

func decodeEmbedImage(p payload.Object) (model.EmbedImage, error) {
	r := newReader("embed", p)
	image := model.EmbedImage{
		Resource: resource.URL(r.string("url")),
		ProxyURL: r.optString("proxy_url"),
		Height:   r.optInt("height"),
		Width:    r.optInt("width"),
	}
	if err := r.err(); err != nil {
		return model.EmbedImage{}, err
	}
	return image, nil
}

func decodeEmbedVideo(p payload.Object) (model.EmbedVideo, error) {
	r := newReader("embed", p)
	video := model.EmbedVideo{
		URL:    r.optString("url"),
		Height: r.optInt("height"),
		Width:  r.optInt("width"),
	}
	if err := r.err(); err != nil {
		return model.EmbedVideo{}, err
	}
	return video, nil
}

func decodeEmbedProvider(p payload.Object) (model.EmbedProvider, error) {
	r := newReader("embed", p)
	provider := model.EmbedProvider{
		Name: r.optString("name"),
		URL:  r.optString("url"),
	}
	if err := r.err(); err != nil {
		return model.EmbedProvider{}, err
	}
	return provider, nil
}

func decodeEmbedAuthor(p payload.Object) (model.EmbedAuthor, error) {
	r := newReader("embed", p)
	author := model.EmbedAuthor{
		Name:         r.optString("name"),
		URL:          r.optString("url"),
		Icon:         remoteIcon(r.optString("icon_url")),
		ProxyIconURL: r.optString("proxy_icon_url"),
	}
	if err := r.err(); err != nil {
		return model.EmbedAuthor{}, err
	}
	return author, nil
}

func decodeEmbedField(p payload.Object) (model.EmbedField, error) {
	r := newReader("embed", p)
	field := model.EmbedField{
		Name:     r.string("name"),
		Value:    r.string("value"),
		IsInline: r.optBool("inline").Or(false),
	}
	if err := r.err(); err != nil {
		return model.EmbedField{}, err
	}
	return field, nil
}

// remoteIcon turns an optional icon URL into a resource handle, or nil
// when the icon is absent.
func remoteIcon(url optional.Value[string]) resource.Resource {
	if u, ok := url.Get(); ok {
		return resource.URL(u)
	}
	return nil
}

// EncodeEmbed implements Transcoder. The upload list is ordered: image,
// thumbnail, footer icon, author icon. A caller shipping the payload
// must send the multipart parts in the same order the placeholders were
// issued, so the order is part of the contract.
func (f *Factory) EncodeEmbed(embed model.Embed) (payload.Object, []resource.Resource, error) {
	p := payload.Object{}
	var uploads []resource.Resource

	// reference writes the payload reference for res and records it for
	// upload when it carries local content.
	reference := func(res resource.Resource) string {
		if _, ok := res.(resource.Opener); ok {
			uploads = append(uploads, res)
		}
		return res.URL()
	}

	if title, ok := embed.Title.Get(); ok {
		p["title"] = title
	}
	if description, ok := embed.Description.Get(); ok {
		p["description"] = description
	}
	if url, ok := embed.URL.Get(); ok {
		p["url"] = url
	}
	if timestamp, ok := embed.Timestamp.Get(); ok {
		p["timestamp"] = timestamp.UTC().Format(time.RFC3339Nano)
	}
	if color, ok := embed.Color.Get(); ok {
		p["color"] = int(color)
	}

	if image, ok := embed.Image.Get(); ok {
		if image.Resource == nil {
			return nil, nil, &payload.MalformedPayloadError{
				Entity: "embed", Field: "image", Reason: "image has no resource",
			}
		}
		p["image"] = payload.Object{"url": reference(image.Resource)}
	}
	if thumbnail, ok := embed.Thumbnail.Get(); ok {
		if thumbnail.Resource == nil {
			return nil, nil, &payload.MalformedPayloadError{
				Entity: "embed", Field: "thumbnail", Reason: "thumbnail has no resource",
			}
		}
		p["thumbnail"] = payload.Object{"url": reference(thumbnail.Resource)}
	}
	if footer, ok := embed.Footer.Get(); ok {
		obj := payload.Object{"text": footer.Text}
		if footer.Icon != nil {
			obj["icon_url"] = reference(footer.Icon)
		}
		p["footer"] = obj
	}
	if author, ok := embed.Author.Get(); ok {
		obj := payload.Object{}
		if name, ok := author.Name.Get(); ok {
			obj["name"] = name
		}
		if url, ok := author.URL.Get(); ok {
			obj["url"] = url
		}
		if author.Icon != nil {
			obj["icon_url"] = reference(author.Icon)
		}
		p["author"] = obj
	}
	if len(embed.Fields) > 0 {
		fields := make([]any, 0, len(embed.Fields))
		for _, field := range embed.Fields {
			fields = append(fields, payload.Object{
				"name":   field.Name,
				"value":  field.Value,
				"inline": field.IsInline,
			})
		}
		p["fields"] = fields
	}
	return p, uploads, nil
}

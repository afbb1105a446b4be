// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

// DecodeMemberPresence implements Transcoder.
func (f *Factory) DecodeMemberPresence(p payload.Object, guildID optional.Value[snowflake.ID]) (model.MemberPresence, error) {
	const entity = "member presence"
	resolved, err := resolveGuildID(entity, p, guildID)
	if err != nil {
		return model.MemberPresence{}, err
	}
	r := newReader(entity, p)
	presence := model.MemberPresence{
		GuildID:       resolved,
		VisibleStatus: model.Status(r.string("status")),
		PremiumSince:  r.optTime("premium_since"),
		Nickname:      r.optString("nick"),
	}
	user := r.object("user")
	presence.UserID = sticky(r, user.Snowflake, "id")
	if p.Has("roles") {
		presence.RoleIDs = optional.Present(r.snowflakeArray("roles"))
	}
	for _, obj := range r.objectArray("activities") {
		presence.Activities = append(presence.Activities, decodeNested(r, obj, f.decodeRichActivity))
	}
	presence.ClientStatus = decodeNested(r, r.object("client_status"), decodeClientStatus)
	if err := r.err(); err != nil {
		return model.MemberPresence{}, err
	}
	return presence, nil
}

func decodeClientStatus(p payload.Object) (model.ClientStatus, error) {
	r := newReader("member presence", p)
	asStatus := func(v optional.Value[string]) optional.Value[model.Status] {
		return optional.Map(v, func(s string) model.Status { return model.Status(s) })
	}
	status := model.ClientStatus{
		Desktop: asStatus(r.optString("desktop")),
		Mobile:  asStatus(r.optString("mobile")),
		Web:     asStatus(r.optString("web")),
	}
	if err := r.err(); err != nil {
		return model.ClientStatus{}, err
	}
	return status, nil
}

func (f *Factory) decodeRichActivity(p payload.Object) (model.RichActivity, error) {
	r := newReader("member presence", p)
	activity := model.RichActivity{
		Name:          r.string("name"),
		URL:           r.optString("url"),
		Type:          model.ActivityType(r.int("type")),
		CreatedAt:     r.milliseconds("created_at"),
		ApplicationID: r.optSnowflake("application_id"),
		Details:       r.optString("details"),
		State:         r.optString("state"),
		IsInstance:    r.optBool("instance"),
		Flags: optional.Map(r.optInt("flags"), func(v int) model.ActivityFlag {
			return model.ActivityFlag(v)
		}),
	}
	if obj, ok := r.optObject("timestamps").Get(); ok {
		activity.Timestamps = optional.Present(model.ActivityTimestamps{
			Start: stickyMilliseconds(r, obj, "start"),
			End:   stickyMilliseconds(r, obj, "end"),
		})
	}
	if obj, ok := r.optObject("emoji").Get(); ok {
		emoji := decodeNested(r, obj, f.DecodeEmoji)
		activity.Emoji = emoji
	}
	if obj, ok := r.optObject("party").Get(); ok {
		party := model.ActivityParty{ID: sticky(r, obj.OptionalString, "id")}
		// The wire packs the size as a two-element [current, max] array.
		if obj.Has("size") {
			if size := sticky(r, obj.IntArray, "size"); len(size) == 2 {
				party.CurrentSize = optional.Present(size[0])
				party.MaxSize = optional.Present(size[1])
			}
		}
		activity.Party = optional.Present(party)
	}
	if obj, ok := r.optObject("assets").Get(); ok {
		activity.Assets = optional.Present(model.ActivityAssets{
			LargeImage: sticky(r, obj.OptionalString, "large_image"),
			LargeText:  sticky(r, obj.OptionalString, "large_text"),
			SmallImage: sticky(r, obj.OptionalString, "small_image"),
			SmallText:  sticky(r, obj.OptionalString, "small_text"),
		})
	}
	if obj, ok := r.optObject("secrets").Get(); ok {
		activity.Secrets = optional.Present(model.ActivitySecrets{
			Join:     sticky(r, obj.OptionalString, "join"),
			Spectate: sticky(r, obj.OptionalString, "spectate"),
			Match:    sticky(r, obj.OptionalString, "match"),
		})
	}
	if err := r.err(); err != nil {
		return model.RichActivity{}, err
	}
	return activity, nil
}

// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package transcoder

import (
	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/payload"
	"github.com/cadenza-project/cadenza/lib/snowflake"
	"github.com/cadenza-project/cadenza/model"
)

func decodeAuditLogEntry(p payload.Object) (model.AuditLogEntry, error) {
	r := newReader("audit log", p)
	entry := model.AuditLogEntry{
		ID:         r.snowflake("id"),
		TargetID:   r.optSnowflake("target_id"),
		UserID:     r.optSnowflake("user_id"),
		ActionType: model.AuditLogActionType(r.int("action_type")),
		Reason:     r.optString("reason"),
	}
	for _, obj := range r.optObjectArray("changes").Or(nil) {
		entry.Changes = append(entry.Changes, model.AuditLogChange{
			Key:      sticky(r, obj.String, "key"),
			NewValue: obj["new_value"],
			OldValue: obj["old_value"],
		})
	}
	// Option shapes vary per action type and are handed over raw.
	if options, ok := r.optObject("options").Get(); ok {
		entry.Options = optional.Present(map[string]any(options))
	}
	if err := r.err(); err != nil {
		return model.AuditLogEntry{}, err
	}
	return entry, nil
}

// DecodeAuditLog implements Transcoder.
func (f *Factory) DecodeAuditLog(p payload.Object) (model.AuditLog, error) {
	r := newReader("audit log", p)
	log := model.AuditLog{
		Entries:      make(map[snowflake.ID]model.AuditLogEntry),
		Integrations: make(map[snowflake.ID]model.PartialIntegration),
		Users:        make(map[snowflake.ID]model.User),
		Webhooks:     make(map[snowflake.ID]model.Webhook),
	}
	for _, obj := range r.objectArray("audit_log_entries") {
		entry := decodeNested(r, obj, decodeAuditLogEntry)
		log.Entries[entry.ID] = entry
	}
	for _, obj := range r.objectArray("integrations") {
		integration := decodeNested(r, obj, f.DecodePartialIntegration)
		log.Integrations[integration.ID] = integration
	}
	for _, obj := range r.objectArray("users") {
		user := decodeNested(r, obj, f.DecodeUser)
		log.Users[user.ID] = user
	}
	for _, obj := range r.objectArray("webhooks") {
		webhook := decodeNested(r, obj, f.DecodeWebhook)
		log.Webhooks[webhook.ID] = webhook
	}
	if err := r.err(); err != nil {
		return model.AuditLog{}, err
	}
	return log, nil
}

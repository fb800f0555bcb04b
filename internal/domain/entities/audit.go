package entities

import "time"

// AuditEntry is one immutable field-level change record. Entries are
// append-only; nothing in the system updates or deletes them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity-index): entity_key = "<entity_type>#<entity_id>"
type AuditEntry struct {
	ID         string            `json:"id"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Action     string            `json:"action"`
	OldValue   string            `json:"old_value,omitempty"`
	NewValue   string            `json:"new_value,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	At         time.Time         `json:"at"`
}

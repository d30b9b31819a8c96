package inbound

import "time"

type AuditLogResponse struct {
	Action     string    `json:"action"`
	Provider   string    `json:"provider"`
	MaskedHint string    `json:"masked_hint,omitempty"`
	Rotated    bool      `json:"rotated"`
	OccurredAt time.Time `json:"occurred_at"`
}

package entity

import "time"

// Action names the credential lifecycle event an audit row records.
type Action string

const (
	ActionCredentialSaved   Action = "credential.saved"
	ActionCredentialDeleted Action = "credential.deleted"
)

func (a Action) String() string {
	return string(a)
}

// AuditLog is one immutable record of a credential lifecycle event. It
// carries the masked hint at most, never key material.
type AuditLog struct {
	ID         string
	UserID     string
	Action     Action
	Provider   string
	MaskedHint string
	Rotated    bool
	OccurredAt time.Time
}

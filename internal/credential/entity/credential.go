package entity

import (
	"time"

	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
)

// Credential is a stored third-party API key belonging to a platform user.
//
// The key itself only exists as an encrypted envelope. MaskedHint is the only
// derivative of the plaintext that is safe to show back to the user, and
// Fingerprint lets a re-submitted key be recognized without decryption.
type Credential struct {
	ID             string
	UserID         string
	Provider       Provider
	Label          string
	Envelope       secretbox.Envelope
	MaskedHint     string
	Fingerprint    string
	LastVerifiedAt *time.Time
	LastUsedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UpsertCredential carries the fields written when a key is saved or rotated.
type UpsertCredential struct {
	ID          string
	UserID      string
	Provider    Provider
	Label       string
	Envelope    secretbox.Envelope
	MaskedHint  string
	Fingerprint string
}

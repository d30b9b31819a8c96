package inbound

import "time"

type SaveCredentialRequest struct {
	APIKey string `json:"api_key"`
	Label  string `json:"label"`
}

type SaveCredentialResponse struct {
	Provider   string `json:"provider"`
	Label      string `json:"label,omitempty"`
	MaskedHint string `json:"masked_hint"`
	Rotated    bool   `json:"rotated"`
}

func (SaveCredentialResponse) Message() string {
	return "API key has been saved"
}

type CredentialResponse struct {
	Provider       string     `json:"provider"`
	Label          string     `json:"label,omitempty"`
	MaskedHint     string     `json:"masked_hint"`
	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`
	LastUsedAt     *time.Time `json:"last_used_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type VerifyCredentialResponse struct {
	Provider   string    `json:"provider"`
	Valid      bool      `json:"valid"`
	VerifiedAt time.Time `json:"verified_at"`
}

func (r VerifyCredentialResponse) Message() string {
	if r.Valid {
		return "API key is valid"
	}
	return "API key failed verification"
}

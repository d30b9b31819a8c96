package event

const CredentialSavedDestination string = "canadagpt.credential.saved"
const CredentialSavedConsumerAudit string = "canadagpt.credential.saved.audit"

type CredentialSavedMessage struct {
	UserID     string `json:"user_id"`
	Provider   string `json:"provider"`
	MaskedHint string `json:"masked_hint"`
	Rotated    bool   `json:"rotated"`
}

package event

const CredentialDeletedDestination string = "canadagpt.credential.deleted"
const CredentialDeletedConsumerAudit string = "canadagpt.credential.deleted.audit"

type CredentialDeletedMessage struct {
	UserID   string `json:"user_id"`
	Provider string `json:"provider"`
}

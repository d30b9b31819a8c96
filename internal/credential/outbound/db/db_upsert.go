package db

import (
	"context"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
)

// UpsertCredential inserts or replaces the stored key for (user, provider).
// It reports whether a new row was created, so callers can tell a first-time
// save from a rotation.
func (s *DB) UpsertCredential(ctx context.Context, in entity.UpsertCredential) (created bool, err error) {
	ctx, span := s.startSpan(ctx, "UpsertCredential")
	defer func() { s.endSpan(span, err) }()

	enc := in.Envelope.Encode()

	// Rotation clears the verification and usage stamps: they describe the
	// previous key, not the new one. A label-only change (same fingerprint)
	// keeps them.
	query := `
		INSERT INTO credentials (id, user_id, provider, label, ciphertext, iv, auth_tag, masked_hint, fingerprint, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (user_id, provider) DO UPDATE SET
			label = EXCLUDED.label,
			ciphertext = EXCLUDED.ciphertext,
			iv = EXCLUDED.iv,
			auth_tag = EXCLUDED.auth_tag,
			masked_hint = EXCLUDED.masked_hint,
			fingerprint = EXCLUDED.fingerprint,
			last_verified_at = CASE WHEN credentials.fingerprint = EXCLUDED.fingerprint THEN credentials.last_verified_at END,
			last_used_at = CASE WHEN credentials.fingerprint = EXCLUDED.fingerprint THEN credentials.last_used_at END,
			updated_at = now()
		RETURNING (xmax = 0)`

	err = s.conn.QueryRow(ctx, query,
		in.ID,
		in.UserID,
		in.Provider.String(),
		in.Label,
		enc.Ciphertext,
		enc.IV,
		enc.AuthTag,
		in.MaskedHint,
		in.Fingerprint,
	).Scan(&created)
	if err != nil {
		return false, s.mapError(err)
	}

	return created, nil
}

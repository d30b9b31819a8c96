package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
)

// Envelope parts are stored as hex text columns. The hex layout is the
// stable on-disk contract; rows written by older builds must keep decrypting.
const credentialColumns = `id, user_id, provider, label, ciphertext, iv, auth_tag, masked_hint, fingerprint, last_verified_at, last_used_at, created_at, updated_at`

func (s *DB) GetCredential(ctx context.Context, userID string, provider entity.Provider) (_ *entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "GetCredential")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE user_id = $1 AND provider = $2`

	cred, err := scanCredential(s.conn.QueryRow(ctx, query, userID, provider.String()))
	if err != nil {
		return nil, s.mapError(err)
	}

	return cred, nil
}

func (s *DB) ListCredentials(ctx context.Context, userID string) (_ []entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "ListCredentials")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE user_id = $1 ORDER BY provider`

	rows, err := s.conn.Query(ctx, query, userID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var creds []entity.Credential
	for rows.Next() {
		cred, err := scanCredential(rows)
		if err != nil {
			return nil, s.mapError(err)
		}
		creds = append(creds, *cred)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return creds, nil
}

func scanCredential(row pgx.Row) (*entity.Credential, error) {
	var (
		cred           entity.Credential
		provider       string
		ciphertext     string
		iv             string
		authTag        string
		lastVerifiedAt pgtype.Timestamptz
		lastUsedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&cred.ID,
		&cred.UserID,
		&provider,
		&cred.Label,
		&ciphertext,
		&iv,
		&authTag,
		&cred.MaskedHint,
		&cred.Fingerprint,
		&lastVerifiedAt,
		&lastUsedAt,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	env, err := secretbox.ParseEnvelope(ciphertext, iv, authTag)
	if err != nil {
		return nil, err
	}

	cred.Provider = entity.Provider(provider)
	cred.Envelope = env
	if lastVerifiedAt.Valid {
		cred.LastVerifiedAt = &lastVerifiedAt.Time
	}
	if lastUsedAt.Valid {
		cred.LastUsedAt = &lastUsedAt.Time
	}

	return &cred, nil
}

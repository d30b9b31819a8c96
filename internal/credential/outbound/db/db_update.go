package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

func (s *DB) UpdateLastVerifiedAt(ctx context.Context, userID string, provider entity.Provider, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateLastVerifiedAt")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE credentials SET last_verified_at = $3, updated_at = now() WHERE user_id = $1 AND provider = $2`

	tag, err := s.conn.Exec(ctx, query, userID, provider.String(), pgtype.Timestamptz{Valid: true, Time: at})
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) UpdateLastUsedAt(ctx context.Context, userID string, provider entity.Provider, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateLastUsedAt")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE credentials SET last_used_at = $3 WHERE user_id = $1 AND provider = $2`

	tag, err := s.conn.Exec(ctx, query, userID, provider.String(), pgtype.Timestamptz{Valid: true, Time: at})
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

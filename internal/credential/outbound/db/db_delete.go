package db

import (
	"context"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

func (s *DB) DeleteCredential(ctx context.Context, userID string, provider entity.Provider) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCredential")
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM credentials WHERE user_id = $1 AND provider = $2`

	tag, err := s.conn.Exec(ctx, query, userID, provider.String())
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

package db

import (
	"context"

	"github.com/canadagpt/canadagpt-api/internal/audit/entity"
)

func (s *DB) CreateAuditLog(ctx context.Context, in entity.AuditLog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAuditLog")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO audit_logs (id, user_id, action, provider, masked_hint, rotated, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.conn.Exec(ctx, query,
		in.ID,
		in.UserID,
		in.Action.String(),
		in.Provider,
		in.MaskedHint,
		in.Rotated,
		in.OccurredAt,
	)

	return s.mapError(err)
}

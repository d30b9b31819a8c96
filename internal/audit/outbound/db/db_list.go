package db

import (
	"context"

	"github.com/canadagpt/canadagpt-api/internal/audit/entity"
)

func (s *DB) ListAuditLogs(ctx context.Context, userID string, limit int32) (_ []entity.AuditLog, err error) {
	ctx, span := s.startSpan(ctx, "ListAuditLogs")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, user_id, action, provider, masked_hint, rotated, occurred_at
		FROM audit_logs
		WHERE user_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2`

	rows, err := s.conn.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var logs []entity.AuditLog
	for rows.Next() {
		var (
			l      entity.AuditLog
			action string
		)
		if err := rows.Scan(&l.ID, &l.UserID, &action, &l.Provider, &l.MaskedHint, &l.Rotated, &l.OccurredAt); err != nil {
			return nil, s.mapError(err)
		}
		l.Action = entity.Action(action)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return logs, nil
}

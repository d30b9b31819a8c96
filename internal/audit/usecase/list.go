package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/canadagpt/canadagpt-api/internal/audit/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

// listLimit caps how many audit rows one request returns.
const listLimit = 100

type (
	ListOutput struct {
		Logs []ListLog
	}

	ListLog struct {
		Action     string
		Provider   string
		MaskedHint string
		Rotated    bool
		OccurredAt time.Time
	}
)

func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.repoDB.ListAuditLogs(ctx, clm.UserID, listLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list audit logs", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{
		Logs: lo.Map(logs, func(l entity.AuditLog, _ int) ListLog {
			return ListLog{
				Action:     l.Action.String(),
				Provider:   l.Provider,
				MaskedHint: l.MaskedHint,
				Rotated:    l.Rotated,
				OccurredAt: l.OccurredAt,
			}
		}),
	}, nil
}

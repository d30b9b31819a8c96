package usecase

import (
	"context"
	"log/slog"

	"github.com/canadagpt/canadagpt-api/internal/audit/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

type (
	ConsumeCredentialDeletedInput struct {
		UserID   string `validate:"required"`
		Provider string `validate:"required"`
	}
)

func (s *Usecase) ConsumeCredentialDeleted(ctx context.Context, in ConsumeCredentialDeletedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeCredentialDeleted")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid credential deleted payload", "error", err)
		return nil
	}

	err := s.repoDB.CreateAuditLog(ctx, entity.AuditLog{
		ID:         s.uuid.Generate(),
		UserID:     in.UserID,
		Action:     entity.ActionCredentialDeleted,
		Provider:   in.Provider,
		OccurredAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create audit log", "action", entity.ActionCredentialDeleted, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

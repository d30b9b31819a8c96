package usecase

import (
	"context"
	"log/slog"

	"github.com/canadagpt/canadagpt-api/internal/audit/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

type (
	ConsumeCredentialSavedInput struct {
		UserID     string `validate:"required"`
		Provider   string `validate:"required"`
		MaskedHint string
		Rotated    bool
	}
)

// ConsumeCredentialSaved records an audit row for a saved or rotated key.
// A payload that fails validation is logged and dropped rather than
// redelivered; it will never become valid.
func (s *Usecase) ConsumeCredentialSaved(ctx context.Context, in ConsumeCredentialSavedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeCredentialSaved")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid credential saved payload", "error", err)
		return nil
	}

	err := s.repoDB.CreateAuditLog(ctx, entity.AuditLog{
		ID:         s.uuid.Generate(),
		UserID:     in.UserID,
		Action:     entity.ActionCredentialSaved,
		Provider:   in.Provider,
		MaskedHint: in.MaskedHint,
		Rotated:    in.Rotated,
		OccurredAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create audit log", "action", entity.ActionCredentialSaved, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

type (
	DeleteInput struct {
		Provider string `validate:"required"`
	}
)

func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	provider, err := s.parseProvider(in.Provider)
	if err != nil {
		return err
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.DeleteCredential(ctx, clm.UserID, provider); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("no key stored for this provider", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete credential", "provider", provider, "error", err)
		return goerror.NewServer(err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.repoMessaging.PublishCredentialDeleted(ctx, CredentialDeletedEvent{
			UserID:   clm.UserID,
			Provider: provider.String(),
		})
	})

	return nil
}

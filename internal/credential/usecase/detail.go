package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

type (
	DetailInput struct {
		Provider string `validate:"required"`
	}

	DetailOutput struct {
		Provider       string
		Label          string
		MaskedHint     string
		LastVerifiedAt *time.Time
		LastUsedAt     *time.Time
		CreatedAt      time.Time
		UpdatedAt      time.Time
	}
)

func (s *Usecase) Detail(ctx context.Context, in DetailInput) (*DetailOutput, error) {
	ctx, span := s.startSpan(ctx, "Detail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	provider, err := s.parseProvider(in.Provider)
	if err != nil {
		return nil, err
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	cred, err := s.repoDB.GetCredential(ctx, clm.UserID, provider)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("no key stored for this provider", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get credential", "provider", provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DetailOutput{
		Provider:       cred.Provider.String(),
		Label:          cred.Label,
		MaskedHint:     cred.MaskedHint,
		LastVerifiedAt: cred.LastVerifiedAt,
		LastUsedAt:     cred.LastUsedAt,
		CreatedAt:      cred.CreatedAt,
		UpdatedAt:      cred.UpdatedAt,
	}, nil
}

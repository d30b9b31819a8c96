package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

type (
	ListOutput struct {
		Credentials []ListCredential
	}

	ListCredential struct {
		Provider       string
		Label          string
		MaskedHint     string
		LastVerifiedAt *time.Time
		LastUsedAt     *time.Time
		CreatedAt      time.Time
		UpdatedAt      time.Time
	}
)

func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	creds, err := s.repoDB.ListCredentials(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list credentials", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{
		Credentials: lo.Map(creds, func(c entity.Credential, _ int) ListCredential {
			return ListCredential{
				Provider:       c.Provider.String(),
				Label:          c.Label,
				MaskedHint:     c.MaskedHint,
				LastVerifiedAt: c.LastVerifiedAt,
				LastUsedAt:     c.LastUsedAt,
				CreatedAt:      c.CreatedAt,
				UpdatedAt:      c.UpdatedAt,
			}
		}),
	}, nil
}

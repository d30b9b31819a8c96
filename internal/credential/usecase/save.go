package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
)

type (
	SaveInput struct {
		Provider string `validate:"required"`
		Label    string `validate:"omitempty,max=100"`
		APIKey   string `validate:"required,apikey"`
	}

	SaveOutput struct {
		Provider   string
		Label      string
		MaskedHint string
		Rotated    bool
	}
)

func (s *Usecase) Save(ctx context.Context, in SaveInput) (*SaveOutput, error) {
	ctx, span := s.startSpan(ctx, "Save")
	defer span.End()

	in.APIKey = strings.TrimSpace(in.APIKey)
	in.Label = strings.TrimSpace(in.Label)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	provider, err := s.parseProvider(in.Provider)
	if err != nil {
		return nil, err
	}

	if !secretbox.ValidateFormat(provider.String(), in.APIKey) {
		slog.WarnContext(ctx, "api key rejected by provider format rules", "provider", provider)
		return nil, goerror.NewInvalidInput(nil, "api_key", "key does not match the expected format for this provider")
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	fp, err := s.fingerprint.Hash(in.APIKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fingerprint api key", "error", err)
		return nil, goerror.NewServer(err)
	}

	existing, err := s.repoDB.GetCredential(ctx, clm.UserID, provider)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get credential", "provider", provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Re-submitting the exact same key is a no-op. A changed label still
	// goes through the upsert so the rename sticks.
	if existing != nil && existing.Fingerprint == string(fp) && existing.Label == in.Label {
		return &SaveOutput{
			Provider:   provider.String(),
			Label:      existing.Label,
			MaskedHint: existing.MaskedHint,
			Rotated:    false,
		}, nil
	}

	env, err := s.codec.Encrypt(in.APIKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encrypt api key", "provider", provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	masked := secretbox.Mask(in.APIKey)
	created, err := s.repoDB.UpsertCredential(ctx, entity.UpsertCredential{
		ID:          s.uuid.Generate(),
		UserID:      clm.UserID,
		Provider:    provider,
		Label:       in.Label,
		Envelope:    env,
		MaskedHint:  masked,
		Fingerprint: string(fp),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert credential", "provider", provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Rotated means the key material changed, not a label rename.
	rotated := !created && (existing == nil || existing.Fingerprint != string(fp))
	// Detached from request cancellation so the event still goes out after
	// the response is written; context values (correlation ID) are kept.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.repoMessaging.PublishCredentialSaved(ctx, CredentialSavedEvent{
			UserID:     clm.UserID,
			Provider:   provider.String(),
			MaskedHint: masked,
			Rotated:    rotated,
		})
	})

	return &SaveOutput{
		Provider:   provider.String(),
		Label:      in.Label,
		MaskedHint: masked,
		Rotated:    rotated,
	}, nil
}

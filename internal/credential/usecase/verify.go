package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
	"github.com/canadagpt/canadagpt-api/internal/pkg/idempotency"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
)

type (
	VerifyInput struct {
		Provider string `validate:"required"`
	}

	VerifyOutput struct {
		Provider   string
		Valid      bool
		VerifiedAt time.Time
	}
)

// Verify decrypts the stored key and re-checks it against the provider
// format rules. A key that no longer decrypts means the encryption key
// changed or the row was tampered with, and the user has to re-enter it.
func (s *Usecase) Verify(ctx context.Context, in VerifyInput) (*VerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "Verify")
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

	// One verification per (user, provider) per window. Redis state keeps
	// repeated clicks from re-running the decrypt path back to back.
	var out *VerifyOutput
	idempKey := "credential:verify:" + clm.UserID + ":" + provider.String()
	err = s.idemp.Exec(ctx, idempKey, func(ctx context.Context) error {
		out, err = s.verify(ctx, clm.UserID, provider)
		return err
	}, idempotency.WithLockDuration(10*time.Second), idempotency.WithStateTTL(time.Minute))

	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return nil, goerror.NewBusiness("a verification is already in progress", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted), errors.Is(err, idempotency.ErrAlreadyFailed):
		return nil, goerror.NewBusiness("this key was just verified, try again shortly", goerror.CodeConflict)
	case err != nil:
		return nil, err
	}

	return out, nil
}

func (s *Usecase) verify(ctx context.Context, userID string, provider entity.Provider) (*VerifyOutput, error) {
	cred, err := s.repoDB.GetCredential(ctx, userID, provider)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("no key stored for this provider", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get credential", "provider", provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	plaintext, err := s.codec.Decrypt(cred.Envelope)
	if err != nil {
		slog.WarnContext(ctx, "stored api key failed to decrypt", "provider", provider, "error", err)
		return nil, goerror.NewBusiness("stored key is unreadable, please re-enter it", goerror.CodeConflict)
	}

	valid := secretbox.ValidateFormat(provider.String(), plaintext)
	now := s.clock.Now()
	if valid {
		if err := s.repoDB.UpdateLastVerifiedAt(ctx, userID, provider, now); err != nil {
			slog.ErrorContext(ctx, "failed to repo update last verified at", "provider", provider, "error", err)
			return nil, goerror.NewServer(err)
		}
	}

	return &VerifyOutput{
		Provider:   provider.String(),
		Valid:      valid,
		VerifiedAt: now,
	}, nil
}

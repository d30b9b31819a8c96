package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

// Resolve returns the decrypted API key for a user and provider.
//
// It is the only path that exposes plaintext and exists for in-process
// callers that need to talk to the provider on the user's behalf. It is
// never reachable over HTTP.
func (s *Usecase) Resolve(ctx context.Context, userID string, provider entity.Provider) (string, error) {
	ctx, span := s.startSpan(ctx, "Resolve")
	defer span.End()

	if provider.IsUnknown() {
		return "", goerror.NewInvalidInput(nil, "provider", "provider is not supported")
	}

	cred, err := s.repoDB.GetCredential(ctx, userID, provider)
	if errors.Is(err, goerror.ErrNotFound) {
		return "", goerror.NewBusiness("no key stored for this provider", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get credential", "provider", provider, "error", err)
		return "", goerror.NewServer(err)
	}

	plaintext, err := s.codec.Decrypt(cred.Envelope)
	if err != nil {
		slog.WarnContext(ctx, "stored api key failed to decrypt", "provider", provider, "error", err)
		return "", goerror.NewBusiness("stored key is unreadable, please re-enter it", goerror.CodeConflict)
	}

	// Usage stamping must not delay or fail the provider call, and must
	// survive the request context being cancelled after the response.
	now := s.clock.Now()
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		return s.repoDB.UpdateLastUsedAt(ctx, userID, provider, now)
	})

	return plaintext, nil
}

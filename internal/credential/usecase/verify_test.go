package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
	"github.com/canadagpt/canadagpt-api/internal/pkg/idempotency"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
)

func sealWithTestKey(t *testing.T, keyByte byte, plaintext string) secretbox.Envelope {
	t.Helper()

	codec, err := secretbox.New(bytes.Repeat([]byte{keyByte}, secretbox.KeySize))
	if err != nil {
		t.Fatalf("secretbox.New() error = %v", err)
	}
	env, err := codec.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	return env
}

func TestVerify_ValidKey(t *testing.T) {
	var updatedAt time.Time
	db := &repoDBStub{
		getFn: func(_ context.Context, _ string, _ entity.Provider) (*entity.Credential, error) {
			return &entity.Credential{
				UserID:   "user-1",
				Provider: entity.ProviderOpenAI,
				Envelope: sealWithTestKey(t, 0x11, testOpenAIKey),
			}, nil
		},
		updateFn: func(_ context.Context, _ string, _ entity.Provider, at time.Time) error {
			updatedAt = at
			return nil
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	out, err := uc.Verify(authedCtx("user-1"), VerifyInput{Provider: "openai"})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if !out.Valid {
		t.Error("Valid = false, want true")
	}
	if !out.VerifiedAt.Equal(testNow) {
		t.Errorf("VerifiedAt = %v, want %v", out.VerifiedAt, testNow)
	}
	if !updatedAt.Equal(testNow) {
		t.Errorf("UpdateLastVerifiedAt called with %v, want %v", updatedAt, testNow)
	}
}

func TestVerify_InvalidFormatDoesNotTouchTimestamp(t *testing.T) {
	// A key that decrypts fine but no longer satisfies the provider rules,
	// for example after the rule set was tightened.
	db := &repoDBStub{
		getFn: func(_ context.Context, _ string, _ entity.Provider) (*entity.Credential, error) {
			return &entity.Credential{
				UserID:   "user-1",
				Provider: entity.ProviderOpenAI,
				Envelope: sealWithTestKey(t, 0x11, "not-an-openai-key"),
			}, nil
		},
		updateFn: func(_ context.Context, _ string, _ entity.Provider, _ time.Time) error {
			t.Fatal("UpdateLastVerifiedAt must not be called for an invalid key")
			return nil
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	out, err := uc.Verify(authedCtx("user-1"), VerifyInput{Provider: "openai"})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if out.Valid {
		t.Error("Valid = true, want false")
	}
}

func TestVerify_UnreadableEnvelope(t *testing.T) {
	// Sealed under a different key than the codec is configured with.
	db := &repoDBStub{
		getFn: func(_ context.Context, _ string, _ entity.Provider) (*entity.Credential, error) {
			return &entity.Credential{
				UserID:   "user-1",
				Provider: entity.ProviderOpenAI,
				Envelope: sealWithTestKey(t, 0x22, testOpenAIKey),
			}, nil
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	_, err := uc.Verify(authedCtx("user-1"), VerifyInput{Provider: "openai"})
	if err == nil {
		t.Fatal("Verify() error = nil, want unreadable-key conflict")
	}
	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeConflict {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeConflict)
	}
}

func TestVerify_NoStoredKey(t *testing.T) {
	db := &repoDBStub{
		getFn: func(_ context.Context, _ string, _ entity.Provider) (*entity.Credential, error) {
			return nil, goerror.ErrNotFound
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	_, err := uc.Verify(authedCtx("user-1"), VerifyInput{Provider: "openai"})
	if err == nil {
		t.Fatal("Verify() error = nil, want not found")
	}
	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeNotFound {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeNotFound)
	}
}

type idempBlocked struct {
	idempPassthrough
	err error
}

func (b idempBlocked) Exec(context.Context, string, func(context.Context) error, ...idempotency.Option) error {
	return b.err
}

func TestVerify_RateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "in progress", err: idempotency.ErrAlreadyInProgress},
		{name: "just completed", err: idempotency.ErrAlreadyCompleted},
		{name: "just failed", err: idempotency.ErrAlreadyFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newTestUsecase(t, &repoDBStub{}, &messagingRecorder{})
			uc.idemp = idempBlocked{err: tc.err}

			_, err := uc.Verify(authedCtx("user-1"), VerifyInput{Provider: "openai"})
			if err == nil {
				t.Fatal("Verify() error = nil, want conflict")
			}
			if gerr := asGoError(t, err); gerr.Code() != goerror.CodeConflict {
				t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeConflict)
			}
		})
	}
}

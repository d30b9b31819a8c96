package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goroutine"
	"github.com/canadagpt/canadagpt-api/internal/pkg/hash"
	"github.com/canadagpt/canadagpt-api/internal/pkg/idempotency"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/jwt"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
	"github.com/canadagpt/canadagpt-api/internal/pkg/validator"
)

type repoDBStub struct {
	getFn        func(ctx context.Context, userID string, provider entity.Provider) (*entity.Credential, error)
	listFn       func(ctx context.Context, userID string) ([]entity.Credential, error)
	upsertFn     func(ctx context.Context, in entity.UpsertCredential) (bool, error)
	updateFn     func(ctx context.Context, userID string, provider entity.Provider, at time.Time) error
	updateUsedFn func(ctx context.Context, userID string, provider entity.Provider, at time.Time) error
	deleteFn     func(ctx context.Context, userID string, provider entity.Provider) error
}

func (s *repoDBStub) GetCredential(ctx context.Context, userID string, provider entity.Provider) (*entity.Credential, error) {
	return s.getFn(ctx, userID, provider)
}

func (s *repoDBStub) ListCredentials(ctx context.Context, userID string) ([]entity.Credential, error) {
	return s.listFn(ctx, userID)
}

func (s *repoDBStub) UpsertCredential(ctx context.Context, in entity.UpsertCredential) (bool, error) {
	return s.upsertFn(ctx, in)
}

func (s *repoDBStub) UpdateLastVerifiedAt(ctx context.Context, userID string, provider entity.Provider, at time.Time) error {
	return s.updateFn(ctx, userID, provider, at)
}

func (s *repoDBStub) UpdateLastUsedAt(ctx context.Context, userID string, provider entity.Provider, at time.Time) error {
	return s.updateUsedFn(ctx, userID, provider, at)
}

func (s *repoDBStub) DeleteCredential(ctx context.Context, userID string, provider entity.Provider) error {
	return s.deleteFn(ctx, userID, provider)
}

type messagingRecorder struct {
	saved   []CredentialSavedEvent
	deleted []CredentialDeletedEvent
}

func (m *messagingRecorder) PublishCredentialSaved(_ context.Context, msg CredentialSavedEvent) error {
	m.saved = append(m.saved, msg)
	return nil
}

func (m *messagingRecorder) PublishCredentialDeleted(_ context.Context, msg CredentialDeletedEvent) error {
	m.deleted = append(m.deleted, msg)
	return nil
}

// idempPassthrough runs the function directly, bypassing redis.
type idempPassthrough struct{}

func (idempPassthrough) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}
func (idempPassthrough) MarkCompleted(context.Context, string, time.Duration) error { return nil }
func (idempPassthrough) MarkFailed(context.Context, string, time.Duration) error    { return nil }
func (idempPassthrough) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{ id string }

func (g fixedUUID) Generate() string { return g.id }

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, db *repoDBStub, mq *messagingRecorder) (*Usecase, *goroutine.Manager) {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	codec, err := secretbox.New(bytes.Repeat([]byte{0x11}, secretbox.KeySize))
	if err != nil {
		t.Fatalf("secretbox.New() error = %v", err)
	}

	gm := goroutine.NewManager(4)
	uc := New(Dependency{
		RepoDB:        db,
		RepoMessaging: mq,
		Idempotency:   idempPassthrough{},
		Validator:     v,
		Codec:         codec,
		Fingerprint:   hash.NewHMACSHA256("test-secret"),
		UUID:          fixedUUID{id: "0195f3c0-0000-7000-8000-000000000001"},
		Clock:         fixedClock{now: testNow},
		Instrument:    instrument.NewNoop(),
		Goroutine:     gm,
	})

	return uc, gm
}

func authedCtx(userID string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID})
}

func asGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	gerr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("error type = %T, want *goerror.Error (%v)", err, err)
	}
	return gerr
}

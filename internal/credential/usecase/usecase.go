package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/clock"
	"github.com/canadagpt/canadagpt-api/internal/pkg/config"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goroutine"
	"github.com/canadagpt/canadagpt-api/internal/pkg/hash"
	"github.com/canadagpt/canadagpt-api/internal/pkg/idempotency"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/jwt"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/pkg/validator"
)

type CredentialSavedEvent struct {
	UserID     string
	Provider   string
	MaskedHint string
	Rotated    bool
}

type CredentialDeletedEvent struct {
	UserID   string
	Provider string
}

type repoMessaging interface {
	PublishCredentialSaved(ctx context.Context, msg CredentialSavedEvent) error
	PublishCredentialDeleted(ctx context.Context, msg CredentialDeletedEvent) error
}

type repoDB interface {
	GetCredential(ctx context.Context, userID string, provider entity.Provider) (*entity.Credential, error)
	ListCredentials(ctx context.Context, userID string) ([]entity.Credential, error)
	UpsertCredential(ctx context.Context, in entity.UpsertCredential) (created bool, err error)
	UpdateLastVerifiedAt(ctx context.Context, userID string, provider entity.Provider, at time.Time) error
	UpdateLastUsedAt(ctx context.Context, userID string, provider entity.Provider, at time.Time) error
	DeleteCredential(ctx context.Context, userID string, provider entity.Provider) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	codec         *secretbox.Codec
	fingerprint   hash.Hash
	uuid          uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Codec         *secretbox.Codec
	Fingerprint   hash.Hash
	UUID          uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		codec:         dep.Codec,
		fingerprint:   dep.Fingerprint,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("credential.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

func (s *Usecase) parseProvider(name string) (entity.Provider, error) {
	provider := entity.ProviderFromString(name)
	if provider.IsUnknown() {
		return provider, goerror.NewInvalidInput(nil, "provider", "provider is not supported")
	}
	return provider, nil
}

// Package credential manages encrypted third-party provider API keys.
package credential

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/canadagpt/canadagpt-api/internal/credential/inbound"
	"github.com/canadagpt/canadagpt-api/internal/credential/outbound/db"
	"github.com/canadagpt/canadagpt-api/internal/credential/outbound/mq"
	"github.com/canadagpt/canadagpt-api/internal/credential/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/clock"
	"github.com/canadagpt/canadagpt-api/internal/pkg/config"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goroutine"
	"github.com/canadagpt/canadagpt-api/internal/pkg/hash"
	"github.com/canadagpt/canadagpt-api/internal/pkg/idempotency"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/jwt"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
	"github.com/canadagpt/canadagpt-api/internal/pkg/secretbox"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	HMAC        hash.Hash                  `validate:"required"`
	Codec       *secretbox.Codec           `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	dbCred := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbCred,
		RepoMessaging: repoMsg,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Codec:         dep.Codec,
		Fingerprint:   dep.HMAC,
		UUID:          dep.UUID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}

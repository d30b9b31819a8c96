// Package audit records and serves the credential activity trail. Rows are
// written by consuming the credential lifecycle events, never inline with
// the request that caused them.
package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canadagpt/canadagpt-api/internal/audit/inbound"
	"github.com/canadagpt/canadagpt-api/internal/audit/outbound/db"
	"github.com/canadagpt/canadagpt-api/internal/audit/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/clock"
	"github.com/canadagpt/canadagpt-api/internal/pkg/config"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goroutine"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAudit := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAudit,
		Validator:  dep.Validator,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}

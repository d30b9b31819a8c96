package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/canadagpt/canadagpt-api/internal/audit/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/clock"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/jwt"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/pkg/validator"
)

type repoDB interface {
	CreateAuditLog(ctx context.Context, in entity.AuditLog) error
	ListAuditLogs(ctx context.Context, userID string, limit int32) ([]entity.AuditLog, error)
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("audit.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

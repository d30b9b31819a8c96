package inbound

import (
	"context"

	"github.com/canadagpt/canadagpt-api/internal/audit/usecase"
)

type ucConsumer interface {
	ConsumeCredentialSaved(ctx context.Context, in usecase.ConsumeCredentialSavedInput) error
	ConsumeCredentialDeleted(ctx context.Context, in usecase.ConsumeCredentialDeletedInput) error
}

type uc interface {
	ucConsumer

	List(ctx context.Context) (*usecase.ListOutput, error)
}

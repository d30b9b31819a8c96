package inbound

import (
	"context"

	"github.com/canadagpt/canadagpt-api/internal/credential/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
)

type uc interface {
	Save(ctx context.Context, in usecase.SaveInput) (*usecase.SaveOutput, error)
	List(ctx context.Context) (*usecase.ListOutput, error)
	Detail(ctx context.Context, in usecase.DetailInput) (*usecase.DetailOutput, error)
	Verify(ctx context.Context, in usecase.VerifyInput) (*usecase.VerifyOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Provider API keys (need authenticated)
	r.GET("/api/v1/credentials", end.List)
	r.GET("/api/v1/credentials/:provider", end.Detail)
	r.PUT("/api/v1/credentials/:provider", end.Save)
	r.DELETE("/api/v1/credentials/:provider", end.Delete)
	r.POST("/api/v1/credentials/:provider/verify", end.Verify)
}

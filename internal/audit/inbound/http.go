package inbound

import (
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Credential activity trail (need authenticated)
	r.GET("/api/v1/audit-logs", end.List)
}

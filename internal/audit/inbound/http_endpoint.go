package inbound

import (
	"github.com/samber/lo"

	"github.com/canadagpt/canadagpt-api/internal/audit/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
)

// HTTPEndpoint exposes the credential activity trail of the authenticated user.
type HTTPEndpoint struct {
	uc uc
}

// List returns the most recent audit entries, newest first.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(resp.Logs, func(l usecase.ListLog, _ int) AuditLogResponse {
		return AuditLogResponse{
			Action:     l.Action,
			Provider:   l.Provider,
			MaskedHint: l.MaskedHint,
			Rotated:    l.Rotated,
			OccurredAt: l.OccurredAt,
		}
	}), nil
}

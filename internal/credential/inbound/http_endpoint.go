package inbound

import (
	"github.com/canadagpt/canadagpt-api/internal/credential/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for provider API key management.
//
// Plaintext keys only ever appear in the save request body. Every response
// carries the masked hint at most.
type HTTPEndpoint struct {
	uc uc
}

// Save stores or rotates the API key for a provider.
func (h *HTTPEndpoint) Save(r *router.Request) (any, error) {
	var req SaveCredentialRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Save(r.Context(), usecase.SaveInput{
		Provider: r.GetParam("provider"),
		Label:    req.Label,
		APIKey:   req.APIKey,
	})
	if err != nil {
		return nil, err
	}

	return SaveCredentialResponse{
		Provider:   resp.Provider,
		Label:      resp.Label,
		MaskedHint: resp.MaskedHint,
		Rotated:    resp.Rotated,
	}, nil
}

// List returns all stored credentials for the authenticated user, masked.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(resp.Credentials, func(c usecase.ListCredential, _ int) CredentialResponse {
		return CredentialResponse{
			Provider:       c.Provider,
			Label:          c.Label,
			MaskedHint:     c.MaskedHint,
			LastVerifiedAt: c.LastVerifiedAt,
			LastUsedAt:     c.LastUsedAt,
			CreatedAt:      c.CreatedAt,
			UpdatedAt:      c.UpdatedAt,
		}
	}), nil
}

// Detail returns the stored credential for one provider, masked.
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	resp, err := h.uc.Detail(r.Context(), usecase.DetailInput{
		Provider: r.GetParam("provider"),
	})
	if err != nil {
		return nil, err
	}

	return CredentialResponse{
		Provider:       resp.Provider,
		Label:          resp.Label,
		MaskedHint:     resp.MaskedHint,
		LastVerifiedAt: resp.LastVerifiedAt,
		LastUsedAt:     resp.LastUsedAt,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}, nil
}

// Verify re-checks the stored key against the provider format rules.
func (h *HTTPEndpoint) Verify(r *router.Request) (any, error) {
	resp, err := h.uc.Verify(r.Context(), usecase.VerifyInput{
		Provider: r.GetParam("provider"),
	})
	if err != nil {
		return nil, err
	}

	return VerifyCredentialResponse{
		Provider:   resp.Provider,
		Valid:      resp.Valid,
		VerifiedAt: resp.VerifiedAt,
	}, nil
}

// Delete removes the stored key for a provider.
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{
		Provider: r.GetParam("provider"),
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

func TestList(t *testing.T) {
	verified := testNow.Add(-time.Hour)
	db := &repoDBStub{
		listFn: func(_ context.Context, userID string) ([]entity.Credential, error) {
			if userID != "user-1" {
				t.Errorf("ListCredentials userID = %q, want %q", userID, "user-1")
			}
			return []entity.Credential{
				{
					Provider:       entity.ProviderAnthropic,
					MaskedHint:     "sk-ant-a...wxyz",
					LastVerifiedAt: &verified,
					CreatedAt:      testNow.Add(-48 * time.Hour),
					UpdatedAt:      testNow.Add(-time.Hour),
				},
				{
					Provider:   entity.ProviderOpenAI,
					MaskedHint: "sk-proj-...ABCD",
					CreatedAt:  testNow.Add(-24 * time.Hour),
					UpdatedAt:  testNow.Add(-24 * time.Hour),
				},
			}, nil
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	out, err := uc.List(authedCtx("user-1"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(out.Credentials) != 2 {
		t.Fatalf("len(Credentials) = %d, want 2", len(out.Credentials))
	}
	if out.Credentials[0].Provider != "anthropic" {
		t.Errorf("Credentials[0].Provider = %q, want %q", out.Credentials[0].Provider, "anthropic")
	}
	if out.Credentials[0].LastVerifiedAt == nil || !out.Credentials[0].LastVerifiedAt.Equal(verified) {
		t.Errorf("Credentials[0].LastVerifiedAt = %v, want %v", out.Credentials[0].LastVerifiedAt, verified)
	}
	if out.Credentials[1].LastVerifiedAt != nil {
		t.Errorf("Credentials[1].LastVerifiedAt = %v, want nil", out.Credentials[1].LastVerifiedAt)
	}
}

func TestList_Empty(t *testing.T) {
	db := &repoDBStub{
		listFn: func(_ context.Context, _ string) ([]entity.Credential, error) {
			return nil, nil
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	out, err := uc.List(authedCtx("user-1"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Credentials) != 0 {
		t.Errorf("len(Credentials) = %d, want 0", len(out.Credentials))
	}
}

func TestList_Unauthenticated(t *testing.T) {
	uc, _ := newTestUsecase(t, &repoDBStub{}, &messagingRecorder{})

	_, err := uc.List(context.Background())
	if err == nil {
		t.Fatal("List() error = nil, want unauthorized")
	}
	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeUnauthorized {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeUnauthorized)
	}
}

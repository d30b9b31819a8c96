package usecase

import (
	"context"
	"testing"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

func TestDetail(t *testing.T) {
	db := &repoDBStub{
		getFn: func(_ context.Context, userID string, provider entity.Provider) (*entity.Credential, error) {
			if userID != "user-1" || provider != entity.ProviderOpenAI {
				t.Errorf("GetCredential(%q, %q), want (user-1, openai)", userID, provider)
			}
			return &entity.Credential{
				Provider:   entity.ProviderOpenAI,
				MaskedHint: "sk-proj-...ABCD",
				CreatedAt:  testNow,
				UpdatedAt:  testNow,
			}, nil
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	out, err := uc.Detail(authedCtx("user-1"), DetailInput{Provider: "openai"})
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if out.MaskedHint != "sk-proj-...ABCD" {
		t.Errorf("MaskedHint = %q", out.MaskedHint)
	}
	if out.LastVerifiedAt != nil {
		t.Errorf("LastVerifiedAt = %v, want nil", out.LastVerifiedAt)
	}
}

func TestDetail_NotFound(t *testing.T) {
	db := &repoDBStub{
		getFn: func(_ context.Context, _ string, _ entity.Provider) (*entity.Credential, error) {
			return nil, goerror.ErrNotFound
		},
	}
	uc, _ := newTestUsecase(t, db, &messagingRecorder{})

	_, err := uc.Detail(authedCtx("user-1"), DetailInput{Provider: "openai"})
	if err == nil {
		t.Fatal("Detail() error = nil, want not found")
	}
	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeNotFound {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeNotFound)
	}
}

func TestDetail_UnknownProvider(t *testing.T) {
	uc, _ := newTestUsecase(t, &repoDBStub{}, &messagingRecorder{})

	_, err := uc.Detail(authedCtx("user-1"), DetailInput{Provider: "huggingface"})
	if err == nil {
		t.Fatal("Detail() error = nil, want invalid input")
	}
	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeInvalidInput {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeInvalidInput)
	}
}

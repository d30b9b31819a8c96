package usecase

import (
	"context"
	"testing"

	"github.com/canadagpt/canadagpt-api/internal/credential/entity"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goerror"
)

func TestDelete(t *testing.T) {
	deleted := false
	db := &repoDBStub{
		deleteFn: func(_ context.Context, userID string, provider entity.Provider) error {
			if userID != "user-1" || provider != entity.ProviderMistral {
				t.Errorf("DeleteCredential(%q, %q), want (user-1, mistral)", userID, provider)
			}
			deleted = true
			return nil
		},
	}
	mq := &messagingRecorder{}
	uc, gm := newTestUsecase(t, db, mq)

	if err := uc.Delete(authedCtx("user-1"), DeleteInput{Provider: "mistral"}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	gm.Wait()

	if !deleted {
		t.Error("DeleteCredential was not called")
	}
	if len(mq.deleted) != 1 {
		t.Fatalf("published deleted events = %d, want 1", len(mq.deleted))
	}
	if mq.deleted[0].Provider != "mistral" {
		t.Errorf("event Provider = %q, want %q", mq.deleted[0].Provider, "mistral")
	}
}

func TestDelete_PublishesAfterRequestContextCancelled(t *testing.T) {
	db := &repoDBStub{
		deleteFn: func(_ context.Context, _ string, _ entity.Provider) error {
			return nil
		},
	}
	mq := &messagingRecorder{}
	uc, gm := newTestUsecase(t, db, mq)

	ctx, cancel := context.WithCancel(authedCtx("user-1"))

	if err := uc.Delete(ctx, DeleteInput{Provider: "openai"}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	cancel()
	gm.Wait()

	if len(mq.deleted) != 1 {
		t.Fatalf("published deleted events = %d, want 1 after request cancellation", len(mq.deleted))
	}
}

func TestDelete_NotFound(t *testing.T) {
	db := &repoDBStub{
		deleteFn: func(_ context.Context, _ string, _ entity.Provider) error {
			return goerror.ErrNotFound
		},
	}
	mq := &messagingRecorder{}
	uc, gm := newTestUsecase(t, db, mq)

	err := uc.Delete(authedCtx("user-1"), DeleteInput{Provider: "openai"})
	if err == nil {
		t.Fatal("Delete() error = nil, want not found")
	}
	gm.Wait()

	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeNotFound {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeNotFound)
	}
	if len(mq.deleted) != 0 {
		t.Errorf("published deleted events = %d, want 0", len(mq.deleted))
	}
}

func TestDelete_Unauthenticated(t *testing.T) {
	uc, _ := newTestUsecase(t, &repoDBStub{}, &messagingRecorder{})

	err := uc.Delete(context.Background(), DeleteInput{Provider: "openai"})
	if err == nil {
		t.Fatal("Delete() error = nil, want unauthorized")
	}
	if gerr := asGoError(t, err); gerr.Code() != goerror.CodeUnauthorized {
		t.Errorf("Code() = %v, want %v", gerr.Code(), goerror.CodeUnauthorized)
	}
}

package inbound

import (
	"context"
	"testing"
	"time"

	"github.com/canadagpt/canadagpt-api/internal/audit/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
)

type ucConsumerStub struct {
	savedFn   func(ctx context.Context, in usecase.ConsumeCredentialSavedInput) error
	deletedFn func(ctx context.Context, in usecase.ConsumeCredentialDeletedInput) error
}

func (s *ucConsumerStub) ConsumeCredentialSaved(ctx context.Context, in usecase.ConsumeCredentialSavedInput) error {
	return s.savedFn(ctx, in)
}

func (s *ucConsumerStub) ConsumeCredentialDeleted(ctx context.Context, in usecase.ConsumeCredentialDeletedInput) error {
	return s.deletedFn(ctx, in)
}

type fakeMessage struct {
	body    []byte
	headers []messaging.Header
	subject string
}

func (m *fakeMessage) Body() []byte                { return m.body }
func (m *fakeMessage) Headers() []messaging.Header { return m.headers }
func (m *fakeMessage) Subject() string             { return m.subject }
func (m *fakeMessage) Timestamp() time.Time        { return time.Time{} }
func (m *fakeMessage) Ack(context.Context) error   { return nil }

type stubUUID struct{ id string }

func (g stubUUID) Generate() string { return g.id }

func newTestHandler(uc ucConsumer) *MQHandler {
	return &MQHandler{
		uc:   uc,
		uuid: stubUUID{id: "0195f3c0-0000-7000-8000-00000000000a"},
		ins:  instrument.NewNoop(),
	}
}

func TestMQHandler_CredentialSavedAudit(t *testing.T) {
	var got usecase.ConsumeCredentialSavedInput
	var cID string
	h := newTestHandler(&ucConsumerStub{
		savedFn: func(ctx context.Context, in usecase.ConsumeCredentialSavedInput) error {
			got = in
			cID = instrument.GetCorrelationID(ctx)
			return nil
		},
	})

	msg := &fakeMessage{
		body:    []byte(`{"user_id":"user-1","provider":"openai","masked_hint":"sk-proj-...ABCD","rotated":true}`),
		headers: []messaging.Header{{Key: "cID", Value: []byte("corr-123")}},
	}
	if err := h.CredentialSavedAudit(context.Background(), msg); err != nil {
		t.Fatalf("CredentialSavedAudit() error = %v", err)
	}

	want := usecase.ConsumeCredentialSavedInput{
		UserID:     "user-1",
		Provider:   "openai",
		MaskedHint: "sk-proj-...ABCD",
		Rotated:    true,
	}
	if got != want {
		t.Errorf("input = %+v, want %+v", got, want)
	}
	if cID != "corr-123" {
		t.Errorf("correlation ID = %q, want %q", cID, "corr-123")
	}
}

func TestMQHandler_CredentialSavedAudit_MissingCorrelationHeader(t *testing.T) {
	var cID string
	h := newTestHandler(&ucConsumerStub{
		savedFn: func(ctx context.Context, _ usecase.ConsumeCredentialSavedInput) error {
			cID = instrument.GetCorrelationID(ctx)
			return nil
		},
	})

	msg := &fakeMessage{body: []byte(`{"user_id":"user-1","provider":"openai"}`)}
	if err := h.CredentialSavedAudit(context.Background(), msg); err != nil {
		t.Fatalf("CredentialSavedAudit() error = %v", err)
	}
	if cID != "0195f3c0-0000-7000-8000-00000000000a" {
		t.Errorf("correlation ID = %q, want the generated one", cID)
	}
}

func TestMQHandler_CredentialSavedAudit_MalformedBodyIsDropped(t *testing.T) {
	h := newTestHandler(&ucConsumerStub{
		savedFn: func(context.Context, usecase.ConsumeCredentialSavedInput) error {
			t.Fatal("usecase must not be called for a malformed body")
			return nil
		},
	})

	msg := &fakeMessage{body: []byte(`{not json`)}
	if err := h.CredentialSavedAudit(context.Background(), msg); err != nil {
		t.Fatalf("CredentialSavedAudit() error = %v, want nil so the message is not redelivered", err)
	}
}

func TestMQHandler_CredentialDeletedAudit(t *testing.T) {
	var got usecase.ConsumeCredentialDeletedInput
	h := newTestHandler(&ucConsumerStub{
		deletedFn: func(_ context.Context, in usecase.ConsumeCredentialDeletedInput) error {
			got = in
			return nil
		},
	})

	msg := &fakeMessage{body: []byte(`{"user_id":"user-1","provider":"mistral"}`)}
	if err := h.CredentialDeletedAudit(context.Background(), msg); err != nil {
		t.Fatalf("CredentialDeletedAudit() error = %v", err)
	}
	if got.UserID != "user-1" || got.Provider != "mistral" {
		t.Errorf("input = %+v, want user-1/mistral", got)
	}
}

package mq

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/codes"

	"github.com/canadagpt/canadagpt-api/internal/credential/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
	"github.com/canadagpt/canadagpt-api/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishCredentialSaved(ctx context.Context, msg usecase.CredentialSavedEvent) error {
	ctx, span := m.ins.Tracer("credential.outbound.mq").Start(ctx, "PublishCredentialSaved")
	defer span.End()

	body, err := json.Marshal(event.CredentialSavedMessage{
		UserID:     msg.UserID,
		Provider:   msg.Provider,
		MaskedHint: msg.MaskedHint,
		Rotated:    msg.Rotated,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.CredentialSavedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (m *Messaging) PublishCredentialDeleted(ctx context.Context, msg usecase.CredentialDeletedEvent) error {
	ctx, span := m.ins.Tracer("credential.outbound.mq").Start(ctx, "PublishCredentialDeleted")
	defer span.End()

	body, err := json.Marshal(event.CredentialDeletedMessage{
		UserID:   msg.UserID,
		Provider: msg.Provider,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.CredentialDeletedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

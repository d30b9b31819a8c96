package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/canadagpt/canadagpt-api/internal/audit/usecase"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   ucConsumer
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) CredentialSavedAudit(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "CredentialSavedAudit")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: credential saved audit", "msg_body", string(body))

	var payload event.CredentialSavedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of credential saved audit", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeCredentialSaved(ctx, usecase.ConsumeCredentialSavedInput{
		UserID:     payload.UserID,
		Provider:   payload.Provider,
		MaskedHint: payload.MaskedHint,
		Rotated:    payload.Rotated,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume credential saved", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) CredentialDeletedAudit(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "CredentialDeletedAudit")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: credential deleted audit", "msg_body", string(body))

	var payload event.CredentialDeletedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of credential deleted audit", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeCredentialDeleted(ctx, usecase.ConsumeCredentialDeletedInput{
		UserID:   payload.UserID,
		Provider: payload.Provider,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume credential deleted", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

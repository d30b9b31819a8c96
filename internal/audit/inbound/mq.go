package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/canadagpt/canadagpt-api/internal/pkg/config"
	"github.com/canadagpt/canadagpt-api/internal/pkg/goroutine"
	"github.com/canadagpt/canadagpt-api/internal/pkg/instrument"
	"github.com/canadagpt/canadagpt-api/internal/pkg/messaging"
	"github.com/canadagpt/canadagpt-api/internal/pkg/uid"
	"github.com/canadagpt/canadagpt-api/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc ucConsumer,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabledConsumerNames := cfg.GetArray("modules.audit.consumer_names")

	var consumers = []struct {
		name    string
		topic   string // destination where the publisher sent the message
		handler messaging.Handler
	}{
		{
			name:    event.CredentialSavedConsumerAudit,
			topic:   event.CredentialSavedDestination,
			handler: mqHandler.CredentialSavedAudit,
		},
		{
			name:    event.CredentialDeletedConsumerAudit,
			topic:   event.CredentialDeletedDestination,
			handler: mqHandler.CredentialDeletedAudit,
		},
	}

	for _, consumer := range consumers {
		if len(enabledConsumerNames) > 0 && slices.Contains(enabledConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithQueueGroup(consumer.name),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
				)
			})
		}
	}
}

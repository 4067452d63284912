package hydrology

import (
	"context"
	"errors"
	"log/slog"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// HandlePayload ingests one payload received on topic. Failures are logged
// and never returned, a bad message must not stop the subscription.
func HandlePayload(ctx context.Context, app HydrologyApp, topic string, body []byte, logger *slog.Logger) {
	var err error

	ctx, span := tracer.Start(ctx, topic)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

	result, err := app.Ingest(ctx, body)

	switch {
	case err == nil && result.Outcome == Duplicate:
		log.Debug(result.Message)
	case err == nil:
		log.Info(result.Message)
	case errors.Is(err, ErrMalformedPayload):
		log.Warn("could not parse payload", "err", err.Error())
	case errors.Is(err, ErrUnknownLogger), errors.Is(err, ErrUnassignedLogger):
		log.Warn(result.Message)
	default:
		log.Error("could not ingest payload", "sn", result.Serial, "err", err.Error())
	}
}

func NewPayloadHandler(app HydrologyApp) messaging.TopicMessageHandler {
	return func(ctx context.Context, d messaging.IncomingTopicMessage, logger *slog.Logger) {
		HandlePayload(ctx, app, d.TopicName(), d.Body(), logger)
	}
}

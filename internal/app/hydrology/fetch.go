package hydrology

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
)

func (a *app) FetchAndIngest(ctx context.Context, serial string, day time.Time) (BatchSummary, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-and-ingest")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if a.fetcher == nil {
		err = fmt.Errorf("%w: no sensor api client", ErrNotConfigured)
		return BatchSummary{}, err
	}

	payloads, err := a.fetcher.FetchPayloads(ctx, serial, day)
	if err != nil {
		err = fmt.Errorf("could not fetch payloads for %s: %w", serial, err)
		return BatchSummary{}, err
	}

	logging.GetFromContext(ctx).Debug("payloads fetched", "sn", serial, "day", day.Format(time.DateOnly), "count", len(payloads))

	return a.IngestBatch(ctx, payloads), nil
}

// FetchAndIngestAll fetches the payloads of every known logger for day. A
// device that cannot be fetched is logged and counted as failed.
func (a *app) FetchAndIngestAll(ctx context.Context, day time.Time) (BatchSummary, error) {
	log := logging.GetFromContext(ctx)

	if a.fetcher == nil {
		return BatchSummary{}, fmt.Errorf("%w: no sensor api client", ErrNotConfigured)
	}

	loggers, err := a.reader.QueryLoggers(ctx)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("could not query loggers: %w", err)
	}

	total := BatchSummary{
		RunID: uuid.NewString(),
	}

	for _, l := range loggers {
		s, err := a.FetchAndIngest(ctx, l.Serial, day)
		if err != nil {
			log.Error("fetch failed", "sn", l.Serial, "err", err.Error())
			total.Failed++
			total.Total++
			continue
		}

		total.merge(s)
	}

	return total, nil
}

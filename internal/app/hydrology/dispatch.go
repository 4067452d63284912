package hydrology

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type RunSummary struct {
	RunID   string     `json:"runId"`
	Kind    ReportKind `json:"kind"`
	Tenants int        `json:"tenants"`
	Sent    int        `json:"sent"`
	Skipped int        `json:"skipped"`
	Failed  int        `json:"failed"`
}

func (a *app) Dispatch(ctx context.Context, destination, body string) error {
	if a.sender == nil {
		return fmt.Errorf("%w: %w", ErrDispatch, ErrNotConfigured)
	}

	err := a.sender.Send(ctx, destination, body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDispatch, err)
	}

	return nil
}

// RunReport builds and sends one report per tenant. A tenant that fails is
// logged and counted, the remaining tenants are still processed.
func (a *app) RunReport(ctx context.Context, kind ReportKind) (RunSummary, error) {
	var err error

	ctx, span := tracer.Start(ctx, "run-report")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	summary := RunSummary{
		RunID: uuid.NewString(),
		Kind:  kind,
	}

	log := logging.GetFromContext(ctx).With("run_id", summary.RunID, "kind", string(kind))

	tenants, err := a.reader.QueryTenants(ctx)
	if err != nil {
		err = fmt.Errorf("could not query tenants: %w", err)
		return summary, err
	}

	count := func(outcome string) {
		a.dispatched.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.String("outcome", outcome),
		))
	}

	for _, t := range tenants {
		summary.Tenants++

		report, berr := a.BuildReport(ctx, kind, t)
		if berr != nil {
			log.Error("could not build report", "tenant_id", t.ID, "err", berr.Error())
			summary.Failed++
			count("failed")
			continue
		}

		if report.Skip {
			log.Debug("nothing to report", "tenant_id", t.ID)
			summary.Skipped++
			count("skipped")
			continue
		}

		if report.Destination == "" {
			log.Warn("tenant has no destination", "tenant_id", t.ID)
			summary.Skipped++
			count("skipped")
			continue
		}

		derr := a.Dispatch(ctx, report.Destination, report.Body)
		if derr != nil {
			log.Error("could not dispatch report", "tenant_id", t.ID, "err", derr.Error())
			summary.Failed++
			count("failed")
			continue
		}

		log.Info("report sent", "tenant_id", t.ID)
		summary.Sent++
		count("sent")
	}

	log.Info("report run done", "tenants", summary.Tenants, "sent", summary.Sent, "skipped", summary.Skipped, "failed", summary.Failed)

	return summary, nil
}

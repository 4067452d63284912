package hydrology

import (
	"context"
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/functions"
	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// Window is the half open interval [Start, End) in tenant local time.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

type WindowResult struct {
	Rain           float64       `json:"rain"`
	RainReadings   int           `json:"rainReadings"`
	RainDuration   time.Duration `json:"rainDuration"`
	Count          int           `json:"count"`
	Expected       int           `json:"expected"`
	Arrival        float64       `json:"arrival"`
	LatestSampling time.Time     `json:"latestSampling,omitempty"`
}

func (r WindowResult) HasData() bool {
	return r.Count > 0
}

// Summarize folds readings into the totals of w. Readings outside w are ignored.
func Summarize(readings []sensors.Reading, w Window) WindowResult {
	result := WindowResult{
		Expected: functions.ExpectedSamples(w.Start, w.End),
	}

	for _, r := range readings {
		if !w.Contains(r.Sampling) {
			continue
		}

		result.Count++

		if r.Rain != nil {
			result.Rain += *r.Rain
			result.RainReadings++
		}

		if r.Sampling.After(result.LatestSampling) {
			result.LatestSampling = r.Sampling
		}
	}

	result.RainDuration = time.Duration(result.RainReadings) * functions.SamplingInterval
	result.Arrival = functions.ArrivalPercentage(result.Count, result.Expected)

	return result
}

func (a *app) Aggregate(ctx context.Context, tenant sensors.Tenant, w Window, scope ...ConditionFunc) (WindowResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "aggregate")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	readings, err := a.windowReadings(ctx, tenant, w, scope...)
	if err != nil {
		return WindowResult{}, err
	}

	return Summarize(readings, w), nil
}

func (a *app) windowReadings(ctx context.Context, tenant sensors.Tenant, w Window, scope ...ConditionFunc) ([]sensors.Reading, error) {
	conditions := []ConditionFunc{
		WithTenant(tenant.ID),
		WithSamplingBetween(w.Start, w.End),
	}
	conditions = append(conditions, scope...)

	return a.reader.QueryReadings(ctx, conditions...)
}

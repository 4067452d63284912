package hydrology

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

//go:generate moq -rm -out app_mock.go . HydrologyApp
type HydrologyApp interface {
	Ingest(ctx context.Context, b []byte) (IngestResult, error)
	IngestBatch(ctx context.Context, payloads [][]byte) BatchSummary
	Backfill(ctx context.Context, from, to time.Time) (BackfillSummary, error)
	FetchAndIngest(ctx context.Context, serial string, day time.Time) (BatchSummary, error)
	FetchAndIngestAll(ctx context.Context, day time.Time) (BatchSummary, error)

	Aggregate(ctx context.Context, tenant sensors.Tenant, w Window, scope ...ConditionFunc) (WindowResult, error)
	Latest(ctx context.Context, conditions ...ConditionFunc) (sensors.Reading, bool, error)

	GetTenant(ctx context.Context, tenantID int64) (sensors.Tenant, error)
	BuildReport(ctx context.Context, kind ReportKind, tenant sensors.Tenant) (Report, error)
	RunReport(ctx context.Context, kind ReportKind) (RunSummary, error)
	Dispatch(ctx context.Context, destination, body string) error

	Seed(ctx context.Context, r io.Reader) error
}

//go:generate moq -rm -out reader_mock.go . HydrologyReader
type HydrologyReader interface {
	QueryTenants(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Tenant, error)
	QueryLocations(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Location, error)
	QueryLoggers(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Logger, error)
	QueryReadings(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Reading, error)
	LatestReading(ctx context.Context, conditions ...ConditionFunc) (sensors.Reading, error)
	// LatestReadings returns the most recent matching reading of each location.
	LatestReadings(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Reading, error)
	QueryRawPayloads(ctx context.Context, conditions ...ConditionFunc) ([]sensors.RawPayload, error)
}

//go:generate moq -rm -out writer_mock.go . HydrologyWriter
type HydrologyWriter interface {
	AddReading(ctx context.Context, raw sensors.RawPayload, r sensors.Reading) error
	UpdateRain(ctx context.Context, serial string, sampling time.Time, rain *float64) error
	SaveTenant(ctx context.Context, t sensors.Tenant) (int64, error)
	SaveLocation(ctx context.Context, l sensors.Location) (int64, error)
	SaveLogger(ctx context.Context, l sensors.Logger) error
}

//go:generate moq -rm -out fetcher_mock.go . Fetcher
type Fetcher interface {
	FetchPayloads(ctx context.Context, serial string, day time.Time) ([][]byte, error)
}

//go:generate moq -rm -out sender_mock.go . Sender
type Sender interface {
	Send(ctx context.Context, destination, text string) error
}

type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	ErrMalformedPayload = errors.New("malformed payload")
	ErrUnknownLogger    = errors.New("unknown logger")
	ErrUnassignedLogger = errors.New("logger has no tenant")
	ErrStoreConflict    = errors.New("store rejected reading")
	ErrDispatch         = errors.New("dispatch failed")
	ErrNotConfigured    = errors.New("not configured")
)

var (
	tracer = otel.Tracer("iot-hydrology")
	meter  = otel.Meter("iot-hydrology")
)

type app struct {
	reader    HydrologyReader
	writer    HydrologyWriter
	fetcher   Fetcher
	sender    Sender
	publisher Publisher
	clock     clockwork.Clock

	ingested   metric.Int64Counter
	dispatched metric.Int64Counter
}

type Option func(*app)

func WithFetcher(f Fetcher) Option {
	return func(a *app) {
		a.fetcher = f
	}
}

func WithSender(s Sender) Option {
	return func(a *app) {
		a.sender = s
	}
}

func WithPublisher(p Publisher) Option {
	return func(a *app) {
		a.publisher = p
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(a *app) {
		a.clock = c
	}
}

func New(r HydrologyReader, w HydrologyWriter, opts ...Option) HydrologyApp {
	a := &app{
		reader: r,
		writer: w,
		clock:  clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.ingested, _ = meter.Int64Counter("hydrology.readings.ingested",
		metric.WithDescription("Number of payloads handled by ingest, by outcome"))
	a.dispatched, _ = meter.Int64Counter("hydrology.reports.dispatched",
		metric.WithDescription("Number of tenant reports handled by a report run, by kind and outcome"))

	return a
}

func (a *app) GetTenant(ctx context.Context, tenantID int64) (sensors.Tenant, error) {
	tenants, err := a.reader.QueryTenants(ctx, WithID(tenantID))
	if err != nil {
		return sensors.Tenant{}, err
	}
	if len(tenants) != 1 {
		return sensors.Tenant{}, ErrNotFound
	}
	return tenants[0], nil
}

func (a *app) Latest(ctx context.Context, conditions ...ConditionFunc) (sensors.Reading, bool, error) {
	r, err := a.reader.LatestReading(ctx, conditions...)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return sensors.Reading{}, false, nil
		}
		return sensors.Reading{}, false, err
	}
	return r, true, nil
}

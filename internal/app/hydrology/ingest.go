package hydrology

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/functions"
	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/iot-hydrology/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Outcome int

const (
	Recorded Outcome = iota
	Duplicate
	Malformed
	UnknownLogger
	UnassignedLogger
	Conflict
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Recorded:
		return "recorded"
	case Duplicate:
		return "duplicate"
	case Malformed:
		return "malformed"
	case UnknownLogger:
		return "unknown_logger"
	case UnassignedLogger:
		return "unassigned_logger"
	case Conflict:
		return "conflict"
	default:
		return "failed"
	}
}

type IngestResult struct {
	Outcome  Outcome   `json:"outcome"`
	Serial   string    `json:"sn,omitempty"`
	Sampling time.Time `json:"sampling,omitempty"`
	UpSince  time.Time `json:"upSince,omitempty"`
	Message  string    `json:"message"`
}

type BatchSummary struct {
	RunID      string `json:"runId"`
	Total      int    `json:"total"`
	Recorded   int    `json:"recorded"`
	Duplicates int    `json:"duplicates"`
	Malformed  int    `json:"malformed"`
	Unknown    int    `json:"unknown"`
	Unassigned int    `json:"unassigned"`
	Conflicts  int    `json:"conflicts"`
	Failed     int    `json:"failed"`
}

func (s *BatchSummary) add(o Outcome) {
	s.Total++

	switch o {
	case Recorded:
		s.Recorded++
	case Duplicate:
		s.Duplicates++
	case Malformed:
		s.Malformed++
	case UnknownLogger:
		s.Unknown++
	case UnassignedLogger:
		s.Unassigned++
	case Conflict:
		s.Conflicts++
	default:
		s.Failed++
	}
}

func (s *BatchSummary) merge(other BatchSummary) {
	s.Total += other.Total
	s.Recorded += other.Recorded
	s.Duplicates += other.Duplicates
	s.Malformed += other.Malformed
	s.Unknown += other.Unknown
	s.Unassigned += other.Unassigned
	s.Conflicts += other.Conflicts
	s.Failed += other.Failed
}

func (a *app) Ingest(ctx context.Context, b []byte) (IngestResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "ingest")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result, err := a.ingest(ctx, b)

	a.ingested.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result.Outcome.String())))

	return result, err
}

func (a *app) ingest(ctx context.Context, b []byte) (IngestResult, error) {
	log := logging.GetFromContext(ctx)

	p, err := sensors.ParsePayload(b)
	if err != nil {
		return IngestResult{Outcome: Malformed, Message: err.Error()}, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}

	result := IngestResult{
		Serial:   p.Serial(),
		Sampling: p.SamplingTime(),
		UpSince:  p.UpSinceTime(),
	}

	loggers, err := a.reader.QueryLoggers(ctx, WithSerial(p.Serial()))
	if err != nil {
		result.Outcome = Failed
		result.Message = fmt.Sprintf("(%s) could not look up logger", p.Serial())
		return result, err
	}
	if len(loggers) == 0 {
		result.Outcome = UnknownLogger
		result.Message = fmt.Sprintf("(%s) logger not found", p.Serial())
		return result, fmt.Errorf("%w: %s", ErrUnknownLogger, p.Serial())
	}

	logger := loggers[0]

	if logger.TenantID == nil {
		result.Outcome = UnassignedLogger
		result.Message = fmt.Sprintf("(%s) logger has no tenant", logger.Serial)
		return result, fmt.Errorf("%w: %s", ErrUnassignedLogger, logger.Serial)
	}

	existing, err := a.reader.QueryReadings(ctx, WithSerial(logger.Serial), WithSampling(result.Sampling), WithLimit(1))
	if err != nil {
		result.Outcome = Failed
		result.Message = fmt.Sprintf("logger %s, could not look up reading", logger.Serial)
		return result, err
	}
	if len(existing) > 0 {
		log.Debug("reading already exists", "sn", logger.Serial, "sampling", result.Sampling)
		result.Outcome = Duplicate
		result.Message = fmt.Sprintf("logger %s, reading with sampling %s already exists", logger.Serial, result.Sampling.Format(time.RFC3339))
		return result, nil
	}

	reading := NewReading(p, logger, a.clock.Now().UTC())

	raw := sensors.RawPayload{
		Content:  p.Content(),
		Received: reading.Received,
	}

	err = a.writer.AddReading(ctx, raw, reading)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			result.Outcome = Conflict
			result.Message = fmt.Sprintf("logger %s, reading with sampling %s was stored concurrently", logger.Serial, result.Sampling.Format(time.RFC3339))
			return result, fmt.Errorf("%w: %s", ErrStoreConflict, err.Error())
		}

		result.Outcome = Failed
		result.Message = fmt.Sprintf("logger %s, could not record reading", logger.Serial)
		return result, err
	}

	a.publishReading(ctx, reading)

	result.Outcome = Recorded
	upSince := "unknown"
	if !result.UpSince.IsZero() {
		upSince = result.UpSince.Format(time.RFC3339)
	}
	result.Message = fmt.Sprintf("logger %s data recorded, up since %s", logger.Serial, upSince)

	return result, nil
}

// NewReading applies the logger calibration to a payload.
func NewReading(p sensors.Payload, l sensors.Logger, received time.Time) sensors.Reading {
	r := sensors.Reading{
		LoggerSN:    l.Serial,
		LocationID:  l.LocationID,
		Sampling:    p.SamplingTime(),
		UpSince:     p.UpSinceTime(),
		TimeSetAt:   p.TimeSetAtTime(),
		Altitude:    p.Altitude,
		Pressure:    p.Pressure,
		Temperature: functions.Calibrate(p.Temperature, l.Calibration.TemperatureOffset),
		Humidity:    functions.Calibrate(p.Humidity, l.Calibration.HumidityOffset),
		Battery:     functions.Calibrate(p.Battery, l.Calibration.BatteryOffset),
		Rain:        functions.Rainfall(p.Tick, l.Calibration.TipFactor),
		WaterLevel:  functions.WaterLevel(p.Distance, l.Calibration.MountHeight),
		Received:    received,
	}

	if l.TenantID != nil {
		r.TenantID = *l.TenantID
	}

	if p.SignalQuality != nil {
		sq := int(math.Round(*p.SignalQuality))
		r.SignalQuality = &sq
	}

	return r
}

func (a *app) publishReading(ctx context.Context, r sensors.Reading) {
	if a.publisher == nil {
		return
	}

	msg := &types.ReadingRecorded{
		LoggerSN:   r.LoggerSN,
		TenantID:   r.TenantID,
		LocationID: r.LocationID,
		Sampling:   r.Sampling,
		Rain:       r.Rain,
		WaterLevel: r.WaterLevel,
		Timestamp:  r.Received,
	}

	err := a.publisher.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish reading", "sn", r.LoggerSN, "err", err.Error())
	}
}

func (a *app) IngestBatch(ctx context.Context, payloads [][]byte) BatchSummary {
	summary := BatchSummary{
		RunID: uuid.NewString(),
	}

	log := logging.GetFromContext(ctx).With("run_id", summary.RunID)

	for _, b := range payloads {
		result, err := a.Ingest(ctx, b)
		summary.add(result.Outcome)

		switch result.Outcome {
		case Recorded:
			log.Info(result.Message)
		case Duplicate:
			log.Debug(result.Message)
		case UnknownLogger, UnassignedLogger, Malformed:
			log.Warn("payload skipped", "sn", result.Serial, "reason", result.Message)
		default:
			log.Error("could not ingest payload", "sn", result.Serial, "err", errString(err))
		}
	}

	log.Info("batch ingested", "total", summary.Total, "recorded", summary.Recorded, "duplicates", summary.Duplicates, "failed", summary.Total-summary.Recorded-summary.Duplicates)

	return summary
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

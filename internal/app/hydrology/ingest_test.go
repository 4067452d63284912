package hydrology

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/iot-hydrology/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

func TestIngestRecordsReading(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	published := []messaging.TopicMessage{}
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = append(published, message)
			return nil
		},
	}
	a := New(s.reader(), s.writer(), WithPublisher(msgCtx), WithClock(clockwork.NewFakeClockAt(received)))

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5)))
	is.NoErr(err)

	is.Equal(result.Outcome, Recorded)
	is.Equal(result.Serial, "1811-3")
	is.True(result.Sampling.Equal(sampling))

	is.Equal(len(s.raws), 1)
	is.Equal(len(s.readings), 1)

	r := s.readings[0]
	is.Equal(r.LoggerSN, "1811-3")
	is.Equal(r.TenantID, int64(1))
	is.Equal(*r.LocationID, int64(1))
	is.Equal(*r.Rain, 1.0)
	is.Equal(r.WaterLevel, nil)
	is.Equal(*r.SignalQuality, -71)
	is.True(r.Received.Equal(received))

	is.Equal(len(published), 1)
	is.Equal(published[0].TopicName(), "reading.recorded")
	is.Equal(published[0].(*types.ReadingRecorded).LoggerSN, "1811-3")
}

func TestIngestAppliesCalibration(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	s.loggers[1].Calibration = sensors.Calibration{
		TemperatureOffset: ptr(-1.5),
		MountHeight:       ptr(500.0),
	}

	a := New(s.reader(), s.writer())

	payload := fmt.Sprintf(`{"device":"PRINUS/2001","sampling":%d,"distance":2450,"temperature":28.0,"battery":12.6}`, sampling.Unix())

	result, err := a.Ingest(ctx, []byte(payload))
	is.NoErr(err)
	is.Equal(result.Outcome, Recorded)

	r := s.readings[0]
	is.Equal(*r.WaterLevel, 255.0) // 500cm - 2450mm
	is.Equal(*r.Temperature, 26.5)
	is.Equal(*r.Battery, 12.6)
	is.Equal(r.Rain, nil)
}

func TestIngestWithoutUpSince(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	a := New(s.reader(), s.writer())

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(`{"device":"PRINUS/1811-3","sampling":%d,"tick":0}`, sampling.Unix())))
	is.NoErr(err)
	is.Equal(result.Outcome, Recorded)
	is.True(result.UpSince.IsZero())
	is.Equal(result.Message, "logger 1811-3 data recorded, up since unknown")

	result, err = a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Add(5*time.Minute).Unix(), 0)))
	is.NoErr(err)
	is.True(strings.HasSuffix(result.Message, "up since "+time.Unix(1760500000, 0).UTC().Format(time.RFC3339)))
}

func TestIngestSamePayloadTwiceIsDuplicate(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	a := New(s.reader(), s.writer())

	payload := []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5))

	first, err := a.Ingest(ctx, payload)
	is.NoErr(err)
	is.Equal(first.Outcome, Recorded)

	second, err := a.Ingest(ctx, payload)
	is.NoErr(err)
	is.Equal(second.Outcome, Duplicate)

	is.Equal(len(s.raws), 1)
	is.Equal(len(s.readings), 1)
}

func TestIngestUnknownLogger(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	w := s.writer()
	a := New(s.reader(), w)

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "9999", sampling.Unix(), 5)))
	is.True(errors.Is(err, ErrUnknownLogger))
	is.Equal(result.Outcome, UnknownLogger)
	is.Equal(len(w.AddReadingCalls()), 0)
}

func TestIngestUnassignedLogger(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	w := s.writer()
	a := New(s.reader(), w)

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "3001", sampling.Unix(), 5)))
	is.True(errors.Is(err, ErrUnassignedLogger))
	is.Equal(result.Outcome, UnassignedLogger)
	is.Equal(len(w.AddReadingCalls()), 0)
}

func TestIngestMalformedDevice(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	r := s.reader()
	a := New(r, s.writer())

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(`{"device":"1811-3","sampling":%d,"tick":1}`, sampling.Unix())))
	is.True(errors.Is(err, ErrMalformedPayload))
	is.Equal(result.Outcome, Malformed)
	is.Equal(len(r.QueryLoggersCalls()), 0)
}

func TestIngestStoreConflict(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	w := s.writer()
	w.AddReadingFunc = func(ctx context.Context, raw sensors.RawPayload, r sensors.Reading) error {
		return fmt.Errorf("could not insert reading: %w", ErrAlreadyExists)
	}

	a := New(s.reader(), w)

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5)))
	is.True(errors.Is(err, ErrStoreConflict))
	is.Equal(result.Outcome, Conflict)
	is.Equal(len(s.readings), 0)
}

func TestIngestPublishFailureDoesNotFailIngest(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	msgCtx := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return errors.New("broker unavailable")
		},
	}

	a := New(s.reader(), s.writer(), WithPublisher(msgCtx))

	result, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5)))
	is.NoErr(err)
	is.Equal(result.Outcome, Recorded)
}

func TestIngestBatchCountsEveryOutcome(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	a := New(s.reader(), s.writer())

	good := []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5))

	summary := a.IngestBatch(ctx, [][]byte{
		good,
		[]byte(`{"device":"PRINUS/1811-3"}`),
		[]byte(fmt.Sprintf(rainPayload, "9999", sampling.Unix(), 1)),
		good,
		[]byte(fmt.Sprintf(rainPayload, "3001", sampling.Unix(), 1)),
		[]byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Add(5*time.Minute).Unix(), 2)),
	})

	is.True(summary.RunID != "")
	is.Equal(summary.Total, 6)
	is.Equal(summary.Recorded, 2)
	is.Equal(summary.Duplicates, 1)
	is.Equal(summary.Malformed, 1)
	is.Equal(summary.Unknown, 1)
	is.Equal(summary.Unassigned, 1)
	is.Equal(summary.Failed, 0)
	is.Equal(len(s.readings), 2)
}

func TestLatestWithoutReadingsIsNotFound(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	a := New(s.reader(), s.writer())

	_, found, err := a.Latest(ctx, WithSerial("1811-3"))
	is.NoErr(err)
	is.True(!found)
}

// 2026-10-16 03:00 UTC, 10:00 in Jakarta
var sampling = time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC)
var received = time.Date(2026, 10, 16, 3, 1, 12, 0, time.UTC)

const rainPayload string = `{"device":"PRINUS/%s","sampling":%d,"up_since":1760500000,"tick":%d,"temperature":27.5,"humidity":80,"battery":12.6,"signal_quality":-71}`

// testStore holds one tenant with a rain and a water level location, a logger
// for each, and one logger without a tenant.
func testStore() *memStore {
	return &memStore{
		tenants: []sensors.Tenant{
			{ID: 1, Name: "River Basin", Slug: "river-basin", Timezone: "Asia/Jakarta", InfoDestination: "-1001", AlertDestination: "-1002"},
		},
		locations: []sensors.Location{
			{ID: 1, Name: "Upstream", Type: sensors.LocationRain, TenantID: ptr(int64(1))},
			{ID: 2, Name: "Bridge", Type: sensors.LocationWaterLevel, TenantID: ptr(int64(1))},
		},
		loggers: []sensors.Logger{
			{ID: 1, Serial: "1811-3", Type: sensors.LoggerRain, TenantID: ptr(int64(1)), LocationID: ptr(int64(1))},
			{ID: 2, Serial: "2001", Type: sensors.LoggerWaterLevel, TenantID: ptr(int64(1)), LocationID: ptr(int64(2))},
			{ID: 3, Serial: "3001", Type: sensors.LoggerRain},
		},
	}
}

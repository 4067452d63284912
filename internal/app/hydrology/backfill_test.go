package hydrology

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

func TestBackfillUpdatesRainOnly(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	clock := clockwork.NewFakeClockAt(received)
	a := New(s.reader(), s.writer(), WithClock(clock))

	_, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5)))
	is.NoErr(err)

	before := s.readings[0]
	is.Equal(*before.Rain, 1.0)

	s.loggers[0].Calibration.TipFactor = ptr(0.5)

	summary, err := a.Backfill(ctx, received.Add(-time.Hour), received.Add(time.Hour))
	is.NoErr(err)

	is.Equal(summary.Total, 1)
	is.Equal(summary.Updated, 1)
	is.Equal(summary.Inserted, 0)

	is.Equal(len(s.raws), 1)
	is.Equal(len(s.readings), 1)

	after := s.readings[0]
	is.Equal(*after.Rain, 2.5)
	is.Equal(after.ID, before.ID)
	is.Equal(*after.Temperature, *before.Temperature)
	is.Equal(*after.Battery, *before.Battery)
	is.True(after.Received.Equal(before.Received))
	is.True(after.Sampling.Equal(before.Sampling))
}

func TestBackfillIngestsMissingReadings(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	a := New(s.reader(), s.writer(), WithClock(clockwork.NewFakeClockAt(received)))

	_, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5)))
	is.NoErr(err)

	// the reading is lost but its raw payload is kept
	s.readings = nil

	summary, err := a.Backfill(ctx, received.Add(-time.Hour), received.Add(time.Hour))
	is.NoErr(err)

	is.Equal(summary.Inserted, 1)
	is.Equal(len(s.raws), 1)
	is.Equal(len(s.readings), 1)
}

func TestBackfillIgnoresPayloadsOutsideTheRange(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := testStore()
	w := s.writer()
	a := New(s.reader(), w, WithClock(clockwork.NewFakeClockAt(received)))

	_, err := a.Ingest(ctx, []byte(fmt.Sprintf(rainPayload, "1811-3", sampling.Unix(), 5)))
	is.NoErr(err)

	summary, err := a.Backfill(ctx, received.Add(time.Hour), received.Add(2*time.Hour))
	is.NoErr(err)
	is.Equal(summary.Total, 0)
	is.Equal(len(w.UpdateRainCalls()), 0)
}

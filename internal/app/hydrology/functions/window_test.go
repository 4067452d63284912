package functions

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestHydrologicalDayStart(t *testing.T) {
	is := is.New(t)

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	is.NoErr(err)

	before := time.Date(2026, 10, 16, 6, 30, 0, 0, jakarta)
	is.Equal(HydrologicalDayStart(before), time.Date(2026, 10, 15, 7, 0, 0, 0, jakarta))

	after := time.Date(2026, 10, 16, 7, 1, 0, 0, jakarta)
	is.Equal(HydrologicalDayStart(after), time.Date(2026, 10, 16, 7, 0, 0, 0, jakarta))

	exactly := time.Date(2026, 10, 16, 7, 0, 0, 0, jakarta)
	is.Equal(HydrologicalDayStart(exactly), exactly)

	newYear := time.Date(2027, 1, 1, 0, 15, 0, 0, jakarta)
	is.Equal(HydrologicalDayStart(newYear), time.Date(2026, 12, 31, 7, 0, 0, 0, jakarta))
}

func TestHydrologicalDayStartUsesTheGivenZone(t *testing.T) {
	is := is.New(t)

	makassar, err := time.LoadLocation("Asia/Makassar")
	is.NoErr(err)

	// 23:30 UTC is 07:30 the next day in Makassar (UTC+8)
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC).In(makassar)
	start := HydrologicalDayStart(now)

	is.Equal(start.UTC(), time.Date(2026, 10, 15, 23, 0, 0, 0, time.UTC))
}

func TestPreviousDay(t *testing.T) {
	is := is.New(t)

	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	start, end := PreviousDay(now)

	is.Equal(start, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))
	is.Equal(end, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	is.Equal(ExpectedSamples(start, end), 288)
}

func TestPreviousHour(t *testing.T) {
	is := is.New(t)

	now := time.Date(2026, 10, 16, 11, 20, 0, 0, time.UTC)
	start, end := PreviousHour(now)

	is.Equal(start, time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC))
	is.Equal(end, time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC))
	is.Equal(ExpectedSamples(start, end), 12)
}

func TestArrivalPercentage(t *testing.T) {
	is := is.New(t)

	is.Equal(ArrivalPercentage(6, 12), 50.0)
	is.Equal(ArrivalPercentage(288, 288), 100.0)
	is.Equal(ArrivalPercentage(3, 0), 0.0)
	is.Equal(ArrivalPercentage(0, -1), 0.0)
}

func TestExpectedSamplesForEmptyWindow(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	is.Equal(ExpectedSamples(now, now), 0)
	is.Equal(ExpectedSamples(now, now.Add(-time.Hour)), 0)
}

func TestInLocation(t *testing.T) {
	is := is.New(t)

	jakarta, _ := time.LoadLocation("Asia/Jakarta")
	ts := InLocation(time.Date(2026, 10, 16, 7, 0, 0, 0, time.UTC), jakarta)

	is.Equal(ts.UTC(), time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
}

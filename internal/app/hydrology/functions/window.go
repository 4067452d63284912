package functions

import (
	"time"
)

const (
	SamplingInterval time.Duration = 5 * time.Minute
	HydrologicalHour int           = 7
)

// HydrologicalDayStart returns 07:00 of the hydrological day that now belongs
// to, in now's location. Before 07:00 that is 07:00 the previous day.
func HydrologicalDayStart(now time.Time) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), HydrologicalHour, 0, 0, 0, now.Location())
	if now.Hour() < HydrologicalHour {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

// PreviousDay returns [00:00, 24:00) of the local day before now.
func PreviousDay(now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return end.AddDate(0, 0, -1), end
}

// PreviousHour returns the last full local hour before now.
func PreviousHour(now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	return end.Add(-1 * time.Hour), end
}

// ExpectedSamples is the number of 5 minute samples that fit in [start, end).
func ExpectedSamples(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d / SamplingInterval)
}

func ArrivalPercentage(count, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	return float64(count) / float64(expected) * 100.0
}

// InLocation reinterprets the wall clock of t in loc.
func InLocation(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

package hydrology

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/functions"
	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

type ReportKind string

const (
	ReportRain    ReportKind = "rain"
	ReportArrival ReportKind = "arrival"
	ReportAlert   ReportKind = "alert"
)

func ParseReportKind(s string) (ReportKind, error) {
	switch k := ReportKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ReportRain, ReportArrival, ReportAlert:
		return k, nil
	}
	return "", fmt.Errorf("unknown report kind %q", s)
}

type Report struct {
	TenantID    int64      `json:"tenantId"`
	Kind        ReportKind `json:"kind"`
	Destination string     `json:"destination,omitempty"`
	Body        string     `json:"body"`
	Skip        bool       `json:"skip"`
}

const NoLocationsRecorded string = "no locations recorded"

const (
	dateFormat      string = "02 Jan 2006"
	clockFormat     string = "15:04"
	timestampFormat string = "15:04 02 Jan 2006"
)

func (a *app) BuildReport(ctx context.Context, kind ReportKind, tenant sensors.Tenant) (Report, error) {
	var err error

	ctx, span := tracer.Start(ctx, "build-report")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	report := Report{
		TenantID:    tenant.ID,
		Kind:        kind,
		Destination: tenant.InfoDestination,
	}
	if kind == ReportAlert {
		report.Destination = tenant.AlertDestination
	}

	loc, err := tenant.Location()
	if err != nil {
		err = fmt.Errorf("tenant %d has an invalid timezone: %w", tenant.ID, err)
		return report, err
	}

	now := a.clock.Now().In(loc)

	locations, err := a.reader.QueryLocations(ctx, WithTenant(tenant.ID))
	if err != nil {
		err = fmt.Errorf("could not query locations for tenant %d: %w", tenant.ID, err)
		return report, err
	}

	if len(locations) == 0 {
		report.Body = fmt.Sprintf("*%s*\n\n_%s_\n", tenant.Name, NoLocationsRecorded)
		report.Skip = kind == ReportAlert
		return report, nil
	}

	switch kind {
	case ReportRain:
		report.Body, err = a.rainReport(ctx, tenant, locations, now)
	case ReportArrival:
		report.Body, err = a.arrivalReport(ctx, tenant, locations, now)
	case ReportAlert:
		report.Body, err = a.alertReport(ctx, tenant, locations, now)
		report.Skip = err == nil && report.Body == ""
	default:
		err = fmt.Errorf("unknown report kind %q", kind)
	}

	return report, err
}

func (a *app) rainReport(ctx context.Context, tenant sensors.Tenant, locations []sensors.Location, now time.Time) (string, error) {
	w := Window{Start: functions.HydrologicalDayStart(now), End: now}

	readings, err := a.windowReadings(ctx, tenant, w)
	if err != nil {
		return "", err
	}

	latest, err := a.reader.LatestReadings(ctx, WithTenant(tenant.ID), WithSamplingBefore(now))
	if err != nil {
		return "", err
	}

	byLocation := groupByLocation(readings)
	latestByLocation := map[int64]sensors.Reading{}
	for _, r := range latest {
		if r.LocationID != nil {
			latestByLocation[*r.LocationID] = r
		}
	}

	rain := filterLocations(locations, sensors.LocationRain, sensors.LocationClimate)
	levels := filterLocations(locations, sensors.LocationWaterLevel, sensors.LocationDam)

	b := strings.Builder{}
	fmt.Fprintf(&b, "*%s*\n", tenant.Name)

	if len(rain) > 0 {
		startFormat := clockFormat
		if w.Start.YearDay() != now.YearDay() {
			startFormat = dateFormat + " " + clockFormat
		}

		fmt.Fprintf(&b, "\n*Rainfall %s*\n", w.Start.Format(dateFormat))
		fmt.Fprintf(&b, "Accumulated: %s to %s (%.1f hours)\n\n", w.Start.Format(startFormat), now.Format(clockFormat), now.Sub(w.Start).Hours())

		for i, l := range rain {
			result := Summarize(byLocation[l.ID], w)

			fmt.Fprintf(&b, "%d. %s", i+1, l.Name)
			if result.Rain > 0 {
				fmt.Fprintf(&b, " *%.1f mm (%d minutes)*", result.Rain, int(result.RainDuration.Minutes()))
			} else {
				b.WriteString(" _no rain_")
			}
			fmt.Fprintf(&b, ", arrival %.1f%%", result.Arrival)

			if last, ok := latestByLocation[l.ID]; ok {
				fmt.Fprintf(&b, ", last data %s\n", functions.SinceLastData(now.Sub(last.Sampling)))
			} else {
				b.WriteString(", no data\n")
			}
		}
	}

	if len(levels) > 0 {
		latestLevels, err := a.reader.LatestReadings(ctx, WithTenant(tenant.ID), WithSamplingBefore(now), WithWaterLevel())
		if err != nil {
			return "", err
		}

		levelByLocation := map[int64]sensors.Reading{}
		for _, r := range latestLevels {
			if r.LocationID != nil {
				levelByLocation[*r.LocationID] = r
			}
		}

		b.WriteString("\n*Water Level*\n\n")

		for i, l := range levels {
			fmt.Fprintf(&b, "%d. %s", i+1, l.Name)

			last, ok := levelByLocation[l.ID]
			if !ok || last.WaterLevel == nil {
				b.WriteString(" no data\n")
				continue
			}

			fmt.Fprintf(&b, " *%.2f m* at %s\n", *last.WaterLevel*0.01, last.Sampling.In(now.Location()).Format(timestampFormat))
		}
	}

	return b.String(), nil
}

type arrivalCategory struct {
	title string
	types []sensors.LocationType
}

var arrivalCategories = []arrivalCategory{
	{title: "Rain", types: []sensors.LocationType{sensors.LocationRain}},
	{title: "Water Level", types: []sensors.LocationType{sensors.LocationWaterLevel}},
	{title: "Climatology", types: []sensors.LocationType{sensors.LocationClimate}},
}

func (a *app) arrivalReport(ctx context.Context, tenant sensors.Tenant, locations []sensors.Location, now time.Time) (string, error) {
	start, end := functions.PreviousDay(now)
	w := Window{Start: start, End: end}

	readings, err := a.windowReadings(ctx, tenant, w)
	if err != nil {
		return "", err
	}

	byLocation := groupByLocation(readings)

	b := strings.Builder{}
	fmt.Fprintf(&b, "*%s*\n*Data Arrival*\n%s (00:00 - 23:55)\n", tenant.Name, start.Format(dateFormat))

	section := func(title string, locs []sensors.Location) {
		if len(locs) == 0 {
			return
		}

		lines := strings.Builder{}
		total := 0.0

		for i, l := range locs {
			result := Summarize(byLocation[l.ID], w)
			total += result.Arrival
			fmt.Fprintf(&lines, "%d. %s: *%.1f%%*\n", i+1, l.Name, result.Arrival)
		}

		fmt.Fprintf(&b, "\n*%s: %.1f%%*\n\n%s", title, total/float64(len(locs)), lines.String())
	}

	categorized := []sensors.LocationType{}
	for _, c := range arrivalCategories {
		section(c.title, filterLocations(locations, c.types...))
		categorized = append(categorized, c.types...)
	}

	other := []sensors.Location{}
	for _, l := range locations {
		if !slices.Contains(categorized, l.Type) {
			other = append(other, l)
		}
	}
	section("Other", other)

	return b.String(), nil
}

type alertEntry struct {
	name string
	rain float64
}

// alertReport returns an empty body when no location crossed a threshold.
func (a *app) alertReport(ctx context.Context, tenant sensors.Tenant, locations []sensors.Location, now time.Time) (string, error) {
	start, end := functions.PreviousHour(now)
	w := Window{Start: start, End: end}

	readings, err := a.windowReadings(ctx, tenant, w)
	if err != nil {
		return "", err
	}

	loggers, err := a.reader.QueryLoggers(ctx, WithTenant(tenant.ID))
	if err != nil {
		return "", err
	}

	levelLoggers := map[string]bool{}
	for _, l := range loggers {
		if l.Type == sensors.LoggerWaterLevel {
			levelLoggers[l.Serial] = true
		}
	}

	names := map[int64]string{}
	for _, l := range locations {
		names[l.ID] = l.Name
	}

	keys := []string{}
	entries := map[string]*alertEntry{}

	for _, r := range readings {
		if levelLoggers[r.LoggerSN] || r.Rain == nil || !w.Contains(r.Sampling) {
			continue
		}

		key, name := "sn:"+r.LoggerSN, r.LoggerSN
		if r.LocationID != nil {
			key = fmt.Sprintf("location:%d", *r.LocationID)
			if n, ok := names[*r.LocationID]; ok {
				name = n
			}
		}

		e, ok := entries[key]
		if !ok {
			e = &alertEntry{name: name}
			entries[key] = e
			keys = append(keys, key)
		}
		e.rain += *r.Rain
	}

	slices.Sort(keys)

	lines := strings.Builder{}
	n := 0

	for _, k := range keys {
		e := entries[k]
		intensity := functions.ClassifyRain(e.rain)
		if intensity == functions.NoAlert {
			continue
		}

		n++
		fmt.Fprintf(&lines, "%d. %s: *%.1f mm*, %s\n", n, e.name, e.rain, intensity)
	}

	if n == 0 {
		return "", nil
	}

	return fmt.Sprintf("*%s*\n*Heavy Rain Alert*\n%s - %s %s\n\n%s", tenant.Name, start.Format(clockFormat), end.Format(clockFormat), start.Format(dateFormat), lines.String()), nil
}

func groupByLocation(readings []sensors.Reading) map[int64][]sensors.Reading {
	m := map[int64][]sensors.Reading{}
	for _, r := range readings {
		if r.LocationID == nil {
			continue
		}
		m[*r.LocationID] = append(m[*r.LocationID], r)
	}
	return m
}

func filterLocations(locations []sensors.Location, types ...sensors.LocationType) []sensors.Location {
	result := []sensors.Location{}
	for _, l := range locations {
		if slices.Contains(types, l.Type) {
			result = append(result, l)
		}
	}
	return result
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diwise/iot-hydrology/internal/app/api"
	app "github.com/diwise/iot-hydrology/internal/app/hydrology"
	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/iot-hydrology/internal/pkg/sensorapi"
	"github.com/diwise/iot-hydrology/internal/pkg/storage"
	"github.com/diwise/iot-hydrology/internal/pkg/subscriber"
	"github.com/diwise/iot-hydrology/internal/pkg/telegram"
	"github.com/diwise/iot-hydrology/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "iot-hydrology"

const usage string = `usage: iot-hydrology [-seed file.yaml] [-publish] <command> [options]

commands:
  serve                   run the http api and the mqtt subscriber
  fetch -sn <sn> [-date]  fetch and ingest one logger's payloads for a day
  fetch-today [-date]     fetch and ingest the payloads of every logger for a day
  fix-rain [-date]        recompute rain from stored raw payloads received on a day
  report -kind <kind>     build and send rain, arrival or alert reports to all tenants
`

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	var seedFile string
	var publish bool

	flag.StringVar(&seedFile, "seed", "/opt/diwise/config/hydrology.yaml", "A yaml file with tenants, locations and loggers")
	flag.BoolVar(&publish, "publish", false, "Publish recorded readings on the message bus")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	tz, err := time.LoadLocation(env.GetVariableOrDefault(ctx, "DEFAULT_TIMEZONE", sensors.DefaultTimezone))
	if err != nil {
		log.Error("invalid default timezone", "err", err.Error())
		os.Exit(1)
	}

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("could not configure storage", "err", err.Error())
		os.Exit(1)
	}
	defer s.Close()

	command, args := flag.Arg(0), flag.Args()[1:]

	opts := []app.Option{}

	var messenger messaging.MsgContext
	if publish {
		config := messaging.LoadConfiguration(ctx, serviceName, log)
		messenger, err = messaging.Initialize(ctx, config)
		if err != nil {
			log.Error("failed to init messenger", "err", err.Error())
			os.Exit(1)
		}
		messenger.Start()
		defer messenger.Close()

		opts = append(opts, app.WithPublisher(messenger))
	}

	if command == "fetch" || command == "fetch-today" {
		fetcher, err := sensorapi.New(sensorapi.LoadConfiguration(ctx))
		if err != nil {
			log.Warn("sensor api is not configured", "err", err.Error())
		} else {
			opts = append(opts, app.WithFetcher(fetcher))
		}
	}

	if command == "report" {
		bot, err := telegram.New(telegram.LoadConfiguration(ctx))
		if err != nil {
			log.Error("could not create telegram bot", "err", err.Error())
			os.Exit(1)
		}
		opts = append(opts, app.WithSender(bot))
	}

	a := app.New(s, s, opts...)

	err = seed(ctx, seedFile, a)
	if err != nil {
		log.Error("file with tenants found but could not seed data", "err", err.Error())
		os.Exit(1)
	}

	switch command {
	case "serve":
		err = serve(ctx, log, a, messenger)
	case "fetch":
		err = fetch(ctx, log, a, tz, args)
	case "fetch-today":
		err = fetchToday(ctx, log, a, tz, args)
	case "fix-rain":
		err = fixRain(ctx, log, a, tz, args)
	case "report":
		err = report(ctx, log, a, args)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error("command failed", "command", command, "err", err.Error())
		os.Exit(1)
	}
}

func serve(ctx context.Context, log *slog.Logger, a app.HydrologyApp, messenger messaging.MsgContext) error {
	if messenger != nil {
		messenger.RegisterTopicMessageHandler(types.PayloadTopic, app.NewPayloadHandler(a))
	}

	sub, err := subscriber.New(subscriber.LoadConfiguration(ctx), func(ctx context.Context, topic string, body []byte) {
		app.HandlePayload(ctx, a, topic, body, log)
	})
	if err != nil {
		return err
	}

	go func() {
		if err := sub.Run(ctx); err != nil {
			log.Error("mqtt subscriber stopped", "err", err.Error())
		}
	}()

	webServer := &http.Server{Addr: ":" + env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"), Handler: api.Register(ctx, a)}

	go func() {
		if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return webServer.Shutdown(shutdownCtx)
}

func fetch(ctx context.Context, log *slog.Logger, a app.HydrologyApp, tz *time.Location, args []string) error {
	fset := flag.NewFlagSet("fetch", flag.ExitOnError)
	sn := fset.String("sn", "", "Serial number of the logger to fetch")
	date := fset.String("date", "", "Day to fetch as YYYY-MM-DD, defaults to today")
	fset.Parse(args)

	if *sn == "" {
		return fmt.Errorf("-sn is required")
	}

	day, err := parseDay(*date, tz)
	if err != nil {
		return err
	}

	summary, err := a.FetchAndIngest(ctx, *sn, day)
	if err != nil {
		return err
	}

	logBatch(log, summary)
	return nil
}

func fetchToday(ctx context.Context, log *slog.Logger, a app.HydrologyApp, tz *time.Location, args []string) error {
	fset := flag.NewFlagSet("fetch-today", flag.ExitOnError)
	date := fset.String("date", "", "Day to fetch as YYYY-MM-DD, defaults to today")
	fset.Parse(args)

	day, err := parseDay(*date, tz)
	if err != nil {
		return err
	}

	summary, err := a.FetchAndIngestAll(ctx, day)
	if err != nil {
		return err
	}

	logBatch(log, summary)
	return nil
}

func fixRain(ctx context.Context, log *slog.Logger, a app.HydrologyApp, tz *time.Location, args []string) error {
	fset := flag.NewFlagSet("fix-rain", flag.ExitOnError)
	date := fset.String("date", "", "Day of receipt as YYYY-MM-DD, defaults to today")
	fset.Parse(args)

	day, err := parseDay(*date, tz)
	if err != nil {
		return err
	}

	summary, err := a.Backfill(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return err
	}

	log.Info("backfill done", "total", summary.Total, "updated", summary.Updated, "inserted", summary.Inserted, "skipped", summary.Skipped, "failed", summary.Failed)
	return nil
}

func report(ctx context.Context, log *slog.Logger, a app.HydrologyApp, args []string) error {
	fset := flag.NewFlagSet("report", flag.ExitOnError)
	k := fset.String("kind", "", "Report kind: rain, arrival or alert")
	fset.Parse(args)

	kind, err := app.ParseReportKind(*k)
	if err != nil {
		return err
	}

	summary, err := a.RunReport(ctx, kind)
	if err != nil {
		return err
	}

	log.Info("report run done", "run_id", summary.RunID, "kind", kind, "tenants", summary.Tenants, "sent", summary.Sent, "skipped", summary.Skipped, "failed", summary.Failed)
	return nil
}

// parseDay returns midnight of date in tz, or of today when date is empty.
func parseDay(date string, tz *time.Location) (time.Time, error) {
	if date == "" {
		now := time.Now().In(tz)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz), nil
	}

	day, err := time.ParseInLocation(time.DateOnly, date, tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	return day, nil
}

func logBatch(log *slog.Logger, s app.BatchSummary) {
	log.Info("batch done", "run_id", s.RunID, "total", s.Total, "recorded", s.Recorded, "duplicates", s.Duplicates,
		"malformed", s.Malformed, "unknown", s.Unknown, "unassigned", s.Unassigned, "conflicts", s.Conflicts, "failed", s.Failed)
}

func seed(ctx context.Context, fp string, a app.HydrologyApp) error {
	log := logging.GetFromContext(ctx)
	f, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no seed file found", "path", fp)
			return nil
		}
		return err
	}
	defer f.Close()

	return a.Seed(ctx, f)
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	app "github.com/diwise/iot-hydrology/internal/app/hydrology"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-hydrology/api")

const maxPayloadSize int64 = 64 * 1024

func Register(ctx context.Context, a app.HydrologyApp) *chi.Mux {
	log := logging.GetFromContext(ctx)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api/v0", func(r chi.Router) {
		r.Post("/payloads", ingestHandler(log, a))
		r.Post("/seed", seedHandler(log, a))
		r.Get("/loggers/{sn}/latest", latestHandler(log, a))
		r.Get("/tenants/{id}/reports/{kind}", reportHandler(log, a))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func ingestHandler(log *slog.Logger, a app.HydrologyApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-payload")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/json")

		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.Warn("payload too large", "limit", tooLarge.Limit)
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			logger.Error("could not read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, err := a.Ingest(ctx, b)

		status := statusFromIngest(result, err)
		if status == http.StatusInternalServerError {
			logger.Error("could not ingest payload", "err", err.Error())
		} else if err != nil {
			logger.Debug("payload rejected", "outcome", result.Outcome.String(), "err", err.Error())
		}

		w.WriteHeader(status)
		w.Write(newIngestResponse(result).Byte())
	}
}

func statusFromIngest(result app.IngestResult, err error) int {
	switch {
	case err == nil && result.Outcome == app.Duplicate:
		return http.StatusOK
	case err == nil:
		return http.StatusCreated
	case errors.Is(err, app.ErrMalformedPayload):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrUnknownLogger):
		return http.StatusNotFound
	case errors.Is(err, app.ErrUnassignedLogger):
		return http.StatusUnprocessableEntity
	case errors.Is(err, app.ErrStoreConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func seedHandler(log *slog.Logger, a app.HydrologyApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "seed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var body io.Reader = r.Body

		if isMultipartFormData(r) {
			var file multipart.File
			file, _, err = r.FormFile("fileupload")
			if err != nil {
				logger.Error("unable to get file from fileupload", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer file.Close()
			body = file
		}

		err = a.Seed(ctx, body)
		if err != nil {
			logger.Error("could not seed", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func latestHandler(log *slog.Logger, a app.HydrologyApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-latest-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/json")

		sn := chi.URLParam(r, "sn")
		if sn == "" {
			logger.Error("no sn parameter found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		reading, ok, err := a.Latest(ctx, app.WithSerial(sn))
		if err != nil {
			logger.Error("could not get latest reading", "sn", sn, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}
		if !ok {
			logger.Debug("no readings found", "sn", sn)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(NewApiResponse(reading).Byte())
	}
}

func reportHandler(log *slog.Logger, a app.HydrologyApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "preview-report")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/json")

		tenantID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Debug("invalid tenant id", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		kind, err := app.ParseReportKind(chi.URLParam(r, "kind"))
		if err != nil {
			logger.Debug("invalid report kind", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tenant, err := a.GetTenant(ctx, tenantID)
		if errors.Is(err, app.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("could not get tenant", "tenant", tenantID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		report, err := a.BuildReport(ctx, kind, tenant)
		if err != nil {
			logger.Error("could not build report", "tenant", tenantID, "kind", kind, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		if strings.Contains(r.Header.Get("Accept"), "text/plain") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(report.Body))
			return
		}

		b, err := json.Marshal(NewApiResponse(report))
		if err != nil {
			logger.Error("could not marshal report", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func isMultipartFormData(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "multipart/form-data")
}

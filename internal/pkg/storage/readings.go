package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	app "github.com/diwise/iot-hydrology/internal/app/hydrology"
	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AddReading stores the raw payload and its reading in one transaction. Raw
// content that is already stored is kept as is.
func (db Db) AddReading(ctx context.Context, raw sensors.RawPayload, r sensors.Reading) error {
	log := logging.GetFromContext(ctx)

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return err
	}

	insertRaw := `INSERT INTO raw_payloads(content, received) VALUES (@content, @received)
				  ON CONFLICT (md5(content::text)) DO NOTHING;`

	_, err = tx.Exec(ctx, insertRaw, pgx.NamedArgs{
		"content":  string(raw.Content),
		"received": raw.Received.UTC(),
	})
	if err != nil {
		log.Error("could not insert raw payload", "err", err.Error())
		tx.Rollback(ctx)
		return err
	}

	insertReading := `INSERT INTO readings(logger_sn, tenant_id, location_id, sampling, up_since, time_set_at, altitude, pressure, signal_quality, temperature, humidity, battery, rain, water_level, received)
					  VALUES (@sn, @tenant_id, @location_id, @sampling, @up_since, @time_set_at, @altitude, @pressure, @signal_quality, @temperature, @humidity, @battery, @rain, @water_level, @received);`

	_, err = tx.Exec(ctx, insertReading, pgx.NamedArgs{
		"sn":             r.LoggerSN,
		"tenant_id":      r.TenantID,
		"location_id":    r.LocationID,
		"sampling":       r.Sampling.UTC(),
		"up_since":       nullTime(r.UpSince),
		"time_set_at":    nullTime(r.TimeSetAt),
		"altitude":       r.Altitude,
		"pressure":       r.Pressure,
		"signal_quality": r.SignalQuality,
		"temperature":    r.Temperature,
		"humidity":       r.Humidity,
		"battery":        r.Battery,
		"rain":           r.Rain,
		"water_level":    r.WaterLevel,
		"received":       r.Received.UTC(),
	})
	if err != nil {
		tx.Rollback(ctx)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Debug("insert statement failed", "err", pgErr.Error(), "code", pgErr.Code, "message", pgErr.Message)
		}

		if isDuplicateKeyErr(err) {
			log.Debug("error is duplicate key")
			return fmt.Errorf("reading %s at %s: %w", r.LoggerSN, r.Sampling.Format(time.RFC3339), app.ErrAlreadyExists)
		}

		log.Error("could not insert reading", "err", err.Error())
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return err
	}

	return nil
}

// UpdateRain rewrites the rain of one reading and nothing else.
func (db Db) UpdateRain(ctx context.Context, serial string, sampling time.Time, rain *float64) error {
	update := `UPDATE readings SET rain=@rain WHERE logger_sn=@sn AND sampling=@sampling;`

	tag, err := db.pool.Exec(ctx, update, pgx.NamedArgs{
		"sn":       serial,
		"sampling": sampling.UTC(),
		"rain":     rain,
	})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not update rain", "err", err.Error())
		return err
	}

	if tag.RowsAffected() == 0 {
		return app.ErrNotFound
	}

	return nil
}

func (db Db) QueryReadings(ctx context.Context, conditions ...app.ConditionFunc) ([]sensors.Reading, error) {
	c := newConditions(conditions...)
	where, args := newQueryReadingsParams(c)

	rows, err := db.pool.Query(ctx, selectFrom(readingColumns, "readings", where, args, c, "sampling ASC"), args)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanReading)
}

func (db Db) LatestReading(ctx context.Context, conditions ...app.ConditionFunc) (sensors.Reading, error) {
	c := newConditions(conditions...)
	c["limit"] = 1
	where, args := newQueryReadingsParams(c)

	rows, err := db.pool.Query(ctx, selectFrom(readingColumns, "readings", where, args, c, "sampling DESC"), args)
	if err != nil {
		return sensors.Reading{}, err
	}

	r, err := pgx.CollectExactlyOneRow(rows, scanReading)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sensors.Reading{}, app.ErrNotFound
		}
		return sensors.Reading{}, err
	}

	return r, nil
}

func (db Db) LatestReadings(ctx context.Context, conditions ...app.ConditionFunc) ([]sensors.Reading, error) {
	c := newConditions(conditions...)
	where, args := newQueryReadingsParams(c)
	where += " AND location_id IS NOT NULL"

	query := fmt.Sprintf("SELECT DISTINCT ON (location_id) %s FROM readings %s ORDER BY location_id, sampling DESC", readingColumns, where)

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanReading)
}

func (db Db) QueryRawPayloads(ctx context.Context, conditions ...app.ConditionFunc) ([]sensors.RawPayload, error) {
	c := newConditions(conditions...)
	where, args := newQueryRawPayloadsParams(c)

	rows, err := db.pool.Query(ctx, selectFrom(rawColumns, "raw_payloads", where, args, c, "received ASC, id ASC"), args)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanRawPayload)
}

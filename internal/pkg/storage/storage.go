package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", "localhost"),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", "postgres"),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", "password"),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "hydrology"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

type Db struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (Db, error) {
	p, err := connect(ctx, cfg)
	if err != nil {
		return Db{}, err
	}

	err = initialize(ctx, p)
	if err != nil {
		p.Close()
		return Db{}, err
	}

	return Db{
		pool: p,
	}, nil
}

func (db Db) Close() {
	db.pool.Close()
}

func initialize(ctx context.Context, pool *pgxpool.Pool) error {
	log := logging.GetFromContext(ctx)

	ddl := `
	CREATE TABLE IF NOT EXISTS tenants (
		id                BIGSERIAL,
		name              TEXT NOT NULL,
		slug              TEXT NOT NULL,
		timezone          TEXT NOT NULL DEFAULT 'Asia/Jakarta',
		info_destination  TEXT NOT NULL DEFAULT '',
		alert_destination TEXT NOT NULL DEFAULT '',
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE (name),
		UNIQUE (slug)
	);

	CREATE TABLE IF NOT EXISTS locations (
		id        BIGSERIAL,
		name      TEXT   NOT NULL,
		type      TEXT   NOT NULL,
		tenant_id BIGINT NULL REFERENCES tenants(id),
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE (name)
	);

	CREATE TABLE IF NOT EXISTS loggers (
		id                 BIGSERIAL,
		sn                 TEXT   NOT NULL,
		type               TEXT   NOT NULL DEFAULT 'arr',
		tenant_id          BIGINT NULL REFERENCES tenants(id),
		location_id        BIGINT NULL REFERENCES locations(id),
		temperature_offset DOUBLE PRECISION NULL,
		humidity_offset    DOUBLE PRECISION NULL,
		battery_offset     DOUBLE PRECISION NULL,
		tip_factor         DOUBLE PRECISION NULL,
		mount_height       DOUBLE PRECISION NULL,
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE (sn)
	);

	CREATE TABLE IF NOT EXISTS raw_payloads (
		id       BIGSERIAL,
		content  JSONB NOT NULL,
		received timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS raw_payloads_content_idx ON raw_payloads (md5(content::text));
	CREATE INDEX IF NOT EXISTS raw_payloads_received_idx ON raw_payloads (received);

	CREATE TABLE IF NOT EXISTS readings (
		id             BIGSERIAL,
		logger_sn      TEXT   NOT NULL,
		tenant_id      BIGINT NOT NULL,
		location_id    BIGINT NULL,
		sampling       timestamp with time zone NOT NULL,
		up_since       timestamp with time zone NULL,
		time_set_at    timestamp with time zone NULL,
		altitude       DOUBLE PRECISION NULL,
		pressure       DOUBLE PRECISION NULL,
		signal_quality INTEGER NULL,
		temperature    DOUBLE PRECISION NULL,
		humidity       DOUBLE PRECISION NULL,
		battery        DOUBLE PRECISION NULL,
		rain           DOUBLE PRECISION NULL,
		water_level    DOUBLE PRECISION NULL,
		received       timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE (logger_sn, sampling)
	);

	CREATE INDEX IF NOT EXISTS readings_tenant_sampling_idx ON readings (tenant_id, sampling);
	CREATE INDEX IF NOT EXISTS readings_location_sampling_idx ON readings (location_id, sampling DESC);
	`

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return err
	}

	_, err = tx.Exec(ctx, ddl)
	if err != nil {
		log.Error("could not execute ddl statement", "err", err.Error())
		tx.Rollback(ctx)
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return err
	}

	return nil
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return conn, err
}

func isDuplicateKeyErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // duplicate key value violates unique constraint
			return true
		}
	}
	return false
}

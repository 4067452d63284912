package storage

import (
	"context"
	"fmt"

	app "github.com/diwise/iot-hydrology/internal/app/hydrology"
	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

func (db Db) QueryTenants(ctx context.Context, conditions ...app.ConditionFunc) ([]sensors.Tenant, error) {
	c := newConditions(conditions...)
	where, args := newQueryTenantsParams(c)

	rows, err := db.pool.Query(ctx, selectFrom(tenantColumns, "tenants", where, args, c, "id"), args)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanTenant)
}

func (db Db) QueryLocations(ctx context.Context, conditions ...app.ConditionFunc) ([]sensors.Location, error) {
	c := newConditions(conditions...)
	where, args := newQueryLocationsParams(c)

	rows, err := db.pool.Query(ctx, selectFrom(locationColumns, "locations", where, args, c, "id"), args)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanLocation)
}

func (db Db) QueryLoggers(ctx context.Context, conditions ...app.ConditionFunc) ([]sensors.Logger, error) {
	c := newConditions(conditions...)
	where, args := newQueryLoggersParams(c)

	rows, err := db.pool.Query(ctx, selectFrom(loggerColumns, "loggers", where, args, c, "id"), args)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanLogger)
}

// SaveTenant inserts or updates the tenant identified by its slug.
func (db Db) SaveTenant(ctx context.Context, t sensors.Tenant) (int64, error) {
	log := logging.GetFromContext(ctx)

	upsert := `INSERT INTO tenants(name, slug, timezone, info_destination, alert_destination)
			   VALUES (@name, @slug, @timezone, @info_destination, @alert_destination)
			   ON CONFLICT (slug) DO UPDATE SET
				name=EXCLUDED.name,
				timezone=EXCLUDED.timezone,
				info_destination=EXCLUDED.info_destination,
				alert_destination=EXCLUDED.alert_destination,
				modified_on=CURRENT_TIMESTAMP
			   RETURNING id;`

	var id int64
	err := db.pool.QueryRow(ctx, upsert, pgx.NamedArgs{
		"name":              t.Name,
		"slug":              t.Slug,
		"timezone":          t.Timezone,
		"info_destination":  t.InfoDestination,
		"alert_destination": t.AlertDestination,
	}).Scan(&id)
	if err != nil {
		if isDuplicateKeyErr(err) {
			return 0, fmt.Errorf("tenant %s: %w", t.Name, app.ErrAlreadyExists)
		}
		log.Error("could not save tenant", "err", err.Error())
		return 0, err
	}

	return id, nil
}

// SaveLocation inserts or updates the location identified by its name.
func (db Db) SaveLocation(ctx context.Context, l sensors.Location) (int64, error) {
	log := logging.GetFromContext(ctx)

	upsert := `INSERT INTO locations(name, type, tenant_id)
			   VALUES (@name, @type, @tenant_id)
			   ON CONFLICT (name) DO UPDATE SET
				type=EXCLUDED.type,
				tenant_id=EXCLUDED.tenant_id,
				modified_on=CURRENT_TIMESTAMP
			   RETURNING id;`

	var id int64
	err := db.pool.QueryRow(ctx, upsert, pgx.NamedArgs{
		"name":      l.Name,
		"type":      string(l.Type),
		"tenant_id": l.TenantID,
	}).Scan(&id)
	if err != nil {
		log.Error("could not save location", "err", err.Error())
		return 0, err
	}

	return id, nil
}

// SaveLogger inserts or updates the logger identified by its serial number.
func (db Db) SaveLogger(ctx context.Context, l sensors.Logger) error {
	log := logging.GetFromContext(ctx)

	upsert := `INSERT INTO loggers(sn, type, tenant_id, location_id, temperature_offset, humidity_offset, battery_offset, tip_factor, mount_height)
			   VALUES (@sn, @type, @tenant_id, @location_id, @temperature_offset, @humidity_offset, @battery_offset, @tip_factor, @mount_height)
			   ON CONFLICT (sn) DO UPDATE SET
				type=EXCLUDED.type,
				tenant_id=EXCLUDED.tenant_id,
				location_id=EXCLUDED.location_id,
				temperature_offset=EXCLUDED.temperature_offset,
				humidity_offset=EXCLUDED.humidity_offset,
				battery_offset=EXCLUDED.battery_offset,
				tip_factor=EXCLUDED.tip_factor,
				mount_height=EXCLUDED.mount_height,
				modified_on=CURRENT_TIMESTAMP;`

	_, err := db.pool.Exec(ctx, upsert, pgx.NamedArgs{
		"sn":                 l.Serial,
		"type":               string(l.Type),
		"tenant_id":          l.TenantID,
		"location_id":        l.LocationID,
		"temperature_offset": l.Calibration.TemperatureOffset,
		"humidity_offset":    l.Calibration.HumidityOffset,
		"battery_offset":     l.Calibration.BatteryOffset,
		"tip_factor":         l.Calibration.TipFactor,
		"mount_height":       l.Calibration.MountHeight,
	})
	if err != nil {
		log.Error("could not save logger", "err", err.Error())
		return err
	}

	return nil
}

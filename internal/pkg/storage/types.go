package storage

import (
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/jackc/pgx/v5"
)

const (
	tenantColumns   string = "id, name, slug, timezone, info_destination, alert_destination"
	locationColumns string = "id, name, type, tenant_id"
	loggerColumns   string = "id, sn, type, tenant_id, location_id, temperature_offset, humidity_offset, battery_offset, tip_factor, mount_height"
	readingColumns  string = "id, logger_sn, tenant_id, location_id, sampling, up_since, time_set_at, altitude, pressure, signal_quality, temperature, humidity, battery, rain, water_level, received"
	rawColumns      string = "id, content, received"
)

func scanTenant(row pgx.CollectableRow) (sensors.Tenant, error) {
	t := sensors.Tenant{}
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Timezone, &t.InfoDestination, &t.AlertDestination)
	return t, err
}

func scanLocation(row pgx.CollectableRow) (sensors.Location, error) {
	l := sensors.Location{}
	var locationType string

	err := row.Scan(&l.ID, &l.Name, &locationType, &l.TenantID)
	l.Type = sensors.LocationType(locationType)

	return l, err
}

func scanLogger(row pgx.CollectableRow) (sensors.Logger, error) {
	l := sensors.Logger{}
	var loggerType string

	err := row.Scan(&l.ID, &l.Serial, &loggerType, &l.TenantID, &l.LocationID,
		&l.Calibration.TemperatureOffset, &l.Calibration.HumidityOffset, &l.Calibration.BatteryOffset,
		&l.Calibration.TipFactor, &l.Calibration.MountHeight)
	l.Type = sensors.LoggerType(loggerType)

	return l, err
}

func scanReading(row pgx.CollectableRow) (sensors.Reading, error) {
	r := sensors.Reading{}
	var upSince, timeSetAt *time.Time

	err := row.Scan(&r.ID, &r.LoggerSN, &r.TenantID, &r.LocationID, &r.Sampling, &upSince, &timeSetAt,
		&r.Altitude, &r.Pressure, &r.SignalQuality, &r.Temperature, &r.Humidity, &r.Battery,
		&r.Rain, &r.WaterLevel, &r.Received)
	if err != nil {
		return r, err
	}

	r.Sampling = r.Sampling.UTC()
	r.Received = r.Received.UTC()
	if upSince != nil {
		r.UpSince = upSince.UTC()
	}
	if timeSetAt != nil {
		r.TimeSetAt = timeSetAt.UTC()
	}

	return r, nil
}

func scanRawPayload(row pgx.CollectableRow) (sensors.RawPayload, error) {
	p := sensors.RawPayload{}
	var content string

	err := row.Scan(&p.ID, &content, &p.Received)
	p.Content = []byte(content)
	p.Received = p.Received.UTC()

	return p, err
}

// nullTime stores the zero time as NULL.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

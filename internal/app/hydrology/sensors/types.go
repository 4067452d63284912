package sensors

import (
	"strings"
	"time"
)

const DefaultTimezone string = "Asia/Jakarta"

type Tenant struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Timezone         string `json:"timezone"`
	InfoDestination  string `json:"infoDestination,omitempty"`
	AlertDestination string `json:"alertDestination,omitempty"`
}

// Location returns the tenant's time zone, Asia/Jakarta when none is configured.
func (t Tenant) Location() (*time.Location, error) {
	tz := t.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

type LocationType string

const (
	LocationRain       LocationType = "1"
	LocationWaterLevel LocationType = "2"
	LocationDam        LocationType = "3"
	LocationClimate    LocationType = "4"
)

// ParseLocationType accepts both the stored type codes and their names.
func ParseLocationType(s string) (LocationType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "rain":
		return LocationRain, true
	case "2", "water-level", "waterlevel":
		return LocationWaterLevel, true
	case "3", "dam":
		return LocationDam, true
	case "4", "climate", "climatology":
		return LocationClimate, true
	}
	return "", false
}

type Location struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Type     LocationType `json:"type"`
	TenantID *int64       `json:"tenantId,omitempty"`
}

type LoggerType string

const (
	LoggerRain       LoggerType = "arr"
	LoggerWaterLevel LoggerType = "awlr"
	LoggerClimate    LoggerType = "aws"
)

// Calibration holds the per logger correction constants. Nil means not set.
type Calibration struct {
	TemperatureOffset *float64 `json:"temperatureOffset,omitempty" yaml:"temperatureOffset"`
	HumidityOffset    *float64 `json:"humidityOffset,omitempty" yaml:"humidityOffset"`
	BatteryOffset     *float64 `json:"batteryOffset,omitempty" yaml:"batteryOffset"`
	TipFactor         *float64 `json:"tipFactor,omitempty" yaml:"tipFactor"`
	MountHeight       *float64 `json:"mountHeight,omitempty" yaml:"mountHeight"`
}

type Logger struct {
	ID          int64       `json:"id"`
	Serial      string      `json:"sn"`
	Type        LoggerType  `json:"type"`
	TenantID    *int64      `json:"tenantId,omitempty"`
	LocationID  *int64      `json:"locationId,omitempty"`
	Calibration Calibration `json:"calibration"`
}

// Reading is one calibrated periodic record, unique on (LoggerSN, Sampling).
type Reading struct {
	ID            int64     `json:"id"`
	LoggerSN      string    `json:"sn"`
	TenantID      int64     `json:"tenantId"`
	LocationID    *int64    `json:"locationId,omitempty"`
	Sampling      time.Time `json:"sampling"`
	UpSince       time.Time `json:"upSince"`
	TimeSetAt     time.Time `json:"timeSetAt"`
	Altitude      *float64  `json:"altitude,omitempty"`
	Pressure      *float64  `json:"pressure,omitempty"`
	SignalQuality *int      `json:"signalQuality,omitempty"`
	Temperature   *float64  `json:"temperature,omitempty"`
	Humidity      *float64  `json:"humidity,omitempty"`
	Battery       *float64  `json:"battery,omitempty"`
	Rain          *float64  `json:"rain,omitempty"`
	WaterLevel    *float64  `json:"waterLevel,omitempty"`
	Received      time.Time `json:"received"`
}

type RawPayload struct {
	ID       int64     `json:"id"`
	Content  []byte    `json:"content"`
	Received time.Time `json:"received"`
}

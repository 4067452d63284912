package hydrology

import (
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
)

type ConditionFunc func(map[string]any) map[string]any

func WithID(id int64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["id"] = id
		return m
	}
}

func WithSerial(serial string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["sn"] = serial
		return m
	}
}

func WithSerials(serials []string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["sns"] = serials
		return m
	}
}

func WithTenant(tenantID int64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["tenant_id"] = tenantID
		return m
	}
}

func WithLocation(locationID int64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["location_id"] = locationID
		return m
	}
}

func WithLocations(locationIDs []int64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["location_ids"] = locationIDs
		return m
	}
}

func WithLocationTypes(types ...sensors.LocationType) ConditionFunc {
	return func(m map[string]any) map[string]any {
		s := make([]string, 0, len(types))
		for _, t := range types {
			s = append(s, string(t))
		}
		m["types"] = s
		return m
	}
}

// WithSampling matches readings sampled at exactly ts.
func WithSampling(ts time.Time) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["sampling"] = ts.UTC()
		return m
	}
}

// WithSamplingBetween matches readings sampled in [from, to).
func WithSamplingBetween(from, to time.Time) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["sampling_from"] = from.UTC()
		m["sampling_to"] = to.UTC()
		return m
	}
}

// WithSamplingBefore matches readings sampled at or before ts.
func WithSamplingBefore(ts time.Time) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["sampling_until"] = ts.UTC()
		return m
	}
}

// WithWaterLevel matches readings that carry a water level.
func WithWaterLevel() ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["has_water_level"] = true
		return m
	}
}

// WithReceivedBetween matches raw payloads received in [from, to).
func WithReceivedBetween(from, to time.Time) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["received_from"] = from.UTC()
		m["received_to"] = to.UTC()
		return m
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["limit"] = limit
		return m
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["offset"] = offset
		return m
	}
}

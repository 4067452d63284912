package hydrology

import (
	"bytes"
	"context"
	"slices"
	"sort"
	"time"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
)

func newConditions(conditions ...ConditionFunc) map[string]any {
	m := map[string]any{}
	for _, c := range conditions {
		c(m)
	}
	return m
}

// memStore keeps everything in slices and applies the same conditions as the
// postgres store, enough for the app to be tested without a database.
type memStore struct {
	tenants   []sensors.Tenant
	locations []sensors.Location
	loggers   []sensors.Logger
	readings  []sensors.Reading
	raws      []sensors.RawPayload
}

func (s *memStore) reader() *HydrologyReaderMock {
	return &HydrologyReaderMock{
		QueryTenantsFunc: func(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Tenant, error) {
			args := newConditions(conditions...)
			result := []sensors.Tenant{}
			for _, t := range s.tenants {
				if id, ok := args["id"]; ok && id.(int64) != t.ID {
					continue
				}
				result = append(result, t)
			}
			return result, nil
		},
		QueryLocationsFunc: func(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Location, error) {
			args := newConditions(conditions...)
			result := []sensors.Location{}
			for _, l := range s.locations {
				if tenantID, ok := args["tenant_id"]; ok && (l.TenantID == nil || *l.TenantID != tenantID.(int64)) {
					continue
				}
				if types, ok := args["types"]; ok && !slices.Contains(types.([]string), string(l.Type)) {
					continue
				}
				result = append(result, l)
			}
			return result, nil
		},
		QueryLoggersFunc: func(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Logger, error) {
			args := newConditions(conditions...)
			result := []sensors.Logger{}
			for _, l := range s.loggers {
				if sn, ok := args["sn"]; ok && sn.(string) != l.Serial {
					continue
				}
				if tenantID, ok := args["tenant_id"]; ok && (l.TenantID == nil || *l.TenantID != tenantID.(int64)) {
					continue
				}
				result = append(result, l)
			}
			return result, nil
		},
		QueryReadingsFunc: func(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Reading, error) {
			return s.queryReadings(newConditions(conditions...)), nil
		},
		LatestReadingFunc: func(ctx context.Context, conditions ...ConditionFunc) (sensors.Reading, error) {
			result := s.queryReadings(newConditions(conditions...))
			if len(result) == 0 {
				return sensors.Reading{}, ErrNotFound
			}
			return result[len(result)-1], nil
		},
		LatestReadingsFunc: func(ctx context.Context, conditions ...ConditionFunc) ([]sensors.Reading, error) {
			latest := map[int64]sensors.Reading{}
			for _, r := range s.queryReadings(newConditions(conditions...)) {
				if r.LocationID != nil {
					latest[*r.LocationID] = r
				}
			}
			result := []sensors.Reading{}
			for _, r := range latest {
				result = append(result, r)
			}
			return result, nil
		},
		QueryRawPayloadsFunc: func(ctx context.Context, conditions ...ConditionFunc) ([]sensors.RawPayload, error) {
			args := newConditions(conditions...)
			result := []sensors.RawPayload{}
			for _, r := range s.raws {
				if from, ok := args["received_from"]; ok && r.Received.Before(from.(time.Time)) {
					continue
				}
				if to, ok := args["received_to"]; ok && !r.Received.Before(to.(time.Time)) {
					continue
				}
				result = append(result, r)
			}
			return result, nil
		},
	}
}

// queryReadings returns the matching readings ordered by sampling.
func (s *memStore) queryReadings(args map[string]any) []sensors.Reading {
	result := []sensors.Reading{}

	for _, r := range s.readings {
		if sn, ok := args["sn"]; ok && sn.(string) != r.LoggerSN {
			continue
		}
		if tenantID, ok := args["tenant_id"]; ok && tenantID.(int64) != r.TenantID {
			continue
		}
		if locationID, ok := args["location_id"]; ok && (r.LocationID == nil || *r.LocationID != locationID.(int64)) {
			continue
		}
		if ts, ok := args["sampling"]; ok && !r.Sampling.Equal(ts.(time.Time)) {
			continue
		}
		if from, ok := args["sampling_from"]; ok && r.Sampling.Before(from.(time.Time)) {
			continue
		}
		if to, ok := args["sampling_to"]; ok && !r.Sampling.Before(to.(time.Time)) {
			continue
		}
		if until, ok := args["sampling_until"]; ok && r.Sampling.After(until.(time.Time)) {
			continue
		}
		if _, ok := args["has_water_level"]; ok && r.WaterLevel == nil {
			continue
		}
		result = append(result, r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sampling.Before(result[j].Sampling)
	})

	if limit, ok := args["limit"]; ok && len(result) > limit.(int) {
		result = result[:limit.(int)]
	}

	return result
}

func (s *memStore) writer() *HydrologyWriterMock {
	return &HydrologyWriterMock{
		AddReadingFunc: func(ctx context.Context, raw sensors.RawPayload, r sensors.Reading) error {
			for _, existing := range s.readings {
				if existing.LoggerSN == r.LoggerSN && existing.Sampling.Equal(r.Sampling) {
					return ErrAlreadyExists
				}
			}

			if !slices.ContainsFunc(s.raws, func(e sensors.RawPayload) bool { return bytes.Equal(e.Content, raw.Content) }) {
				raw.ID = int64(len(s.raws) + 1)
				s.raws = append(s.raws, raw)
			}

			r.ID = int64(len(s.readings) + 1)
			s.readings = append(s.readings, r)
			return nil
		},
		UpdateRainFunc: func(ctx context.Context, serial string, sampling time.Time, rain *float64) error {
			for i, r := range s.readings {
				if r.LoggerSN == serial && r.Sampling.Equal(sampling) {
					s.readings[i].Rain = rain
					return nil
				}
			}
			return ErrNotFound
		},
		SaveTenantFunc: func(ctx context.Context, t sensors.Tenant) (int64, error) {
			t.ID = int64(len(s.tenants) + 1)
			s.tenants = append(s.tenants, t)
			return t.ID, nil
		},
		SaveLocationFunc: func(ctx context.Context, l sensors.Location) (int64, error) {
			l.ID = int64(len(s.locations) + 1)
			s.locations = append(s.locations, l)
			return l.ID, nil
		},
		SaveLoggerFunc: func(ctx context.Context, l sensors.Logger) error {
			l.ID = int64(len(s.loggers) + 1)
			s.loggers = append(s.loggers, l)
			return nil
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

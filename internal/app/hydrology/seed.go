package hydrology

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

type seedConfig struct {
	Tenants []seedTenant `yaml:"tenants"`
	// Loggers that are known but not yet assigned to a tenant.
	Loggers []seedLogger `yaml:"loggers"`
}

type seedTenant struct {
	Name             string         `yaml:"name"`
	Slug             string         `yaml:"slug"`
	Timezone         string         `yaml:"timezone"`
	InfoDestination  string         `yaml:"infoDestination"`
	AlertDestination string         `yaml:"alertDestination"`
	Locations        []seedLocation `yaml:"locations"`
	Loggers          []seedLogger   `yaml:"loggers"`
}

type seedLocation struct {
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Loggers []seedLogger `yaml:"loggers"`
}

type seedLogger struct {
	Serial      string              `yaml:"sn"`
	Type        string              `yaml:"type"`
	Calibration sensors.Calibration `yaml:"calibration"`
}

// Seed upserts tenants, then their locations, then the loggers of each.
func (a *app) Seed(ctx context.Context, r io.Reader) error {
	log := logging.GetFromContext(ctx)

	cfg := seedConfig{}
	err := yaml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("could not decode seed file: %w", err)
	}

	for _, st := range cfg.Tenants {
		if st.Name == "" {
			return errors.New("tenant name must be provided")
		}

		tenant := sensors.Tenant{
			Name:             st.Name,
			Slug:             st.Slug,
			Timezone:         st.Timezone,
			InfoDestination:  st.InfoDestination,
			AlertDestination: st.AlertDestination,
		}
		if tenant.Slug == "" {
			tenant.Slug = slug(st.Name)
		}
		if tenant.Timezone == "" {
			tenant.Timezone = sensors.DefaultTimezone
		}
		if _, err := tenant.Location(); err != nil {
			return fmt.Errorf("tenant %s: %w", st.Name, err)
		}

		tenantID, err := a.writer.SaveTenant(ctx, tenant)
		if err != nil {
			return fmt.Errorf("could not save tenant %s: %w", st.Name, err)
		}

		for _, sl := range st.Locations {
			locationType, ok := sensors.ParseLocationType(sl.Type)
			if !ok {
				return fmt.Errorf("location %s has unknown type %q", sl.Name, sl.Type)
			}

			locationID, err := a.writer.SaveLocation(ctx, sensors.Location{
				Name:     sl.Name,
				Type:     locationType,
				TenantID: &tenantID,
			})
			if err != nil {
				return fmt.Errorf("could not save location %s: %w", sl.Name, err)
			}

			for _, l := range sl.Loggers {
				err = a.saveLogger(ctx, l, &tenantID, &locationID)
				if err != nil {
					return err
				}
			}
		}

		for _, l := range st.Loggers {
			err = a.saveLogger(ctx, l, &tenantID, nil)
			if err != nil {
				return err
			}
		}

		log.Debug("tenant seeded", "tenant_id", tenantID, "name", st.Name)
	}

	for _, l := range cfg.Loggers {
		err = a.saveLogger(ctx, l, nil, nil)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *app) saveLogger(ctx context.Context, sl seedLogger, tenantID, locationID *int64) error {
	if strings.TrimSpace(sl.Serial) == "" {
		return errors.New("logger sn must be provided")
	}

	l := sensors.Logger{
		Serial:      sl.Serial,
		Type:        sensors.LoggerType(sl.Type),
		TenantID:    tenantID,
		LocationID:  locationID,
		Calibration: sl.Calibration,
	}
	if l.Type == "" {
		l.Type = sensors.LoggerRain
	}

	err := a.writer.SaveLogger(ctx, l)
	if err != nil {
		return fmt.Errorf("could not save logger %s: %w", sl.Serial, err)
	}

	return nil
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

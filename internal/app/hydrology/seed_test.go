package hydrology

import (
	"context"
	"strings"
	"testing"

	"github.com/diwise/iot-hydrology/internal/app/hydrology/sensors"
	"github.com/matryer/is"
)

func TestSeed(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &memStore{}
	w := s.writer()
	a := New(s.reader(), w)

	err := a.Seed(ctx, strings.NewReader(seedYaml))
	is.NoErr(err)

	is.Equal(len(s.tenants), 1)
	is.Equal(s.tenants[0].Slug, "river-basin")
	is.Equal(s.tenants[0].Timezone, "Asia/Makassar")

	is.Equal(len(s.locations), 2)
	is.Equal(s.locations[0].Type, sensors.LocationRain)
	is.Equal(s.locations[1].Type, sensors.LocationWaterLevel)
	is.Equal(*s.locations[1].TenantID, int64(1))

	is.Equal(len(s.loggers), 4)

	rain := s.loggers[0]
	is.Equal(rain.Serial, "1811-3")
	is.Equal(rain.Type, sensors.LoggerRain)
	is.Equal(*rain.LocationID, int64(1))
	is.Equal(*rain.Calibration.TipFactor, 0.5)

	level := s.loggers[1]
	is.Equal(level.Type, sensors.LoggerWaterLevel)
	is.Equal(*level.LocationID, int64(2))
	is.Equal(*level.Calibration.MountHeight, 450.0)

	unplaced := s.loggers[2]
	is.Equal(*unplaced.TenantID, int64(1))
	is.Equal(unplaced.LocationID, nil)

	unassigned := s.loggers[3]
	is.Equal(unassigned.TenantID, nil)

	is.Equal(len(w.SaveTenantCalls()), 1)
	is.Equal(len(w.SaveLocationCalls()), 2)
}

func TestSeedRejectsUnknownLocationType(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &memStore{}
	a := New(s.reader(), s.writer())

	err := a.Seed(ctx, strings.NewReader(`
tenants:
  - name: River Basin
    locations:
      - name: Upstream
        type: lake
`))
	is.True(err != nil)
	is.Equal(len(s.locations), 0)
}

func TestSeedEmptyFile(t *testing.T) {
	is := is.New(t)

	s := &memStore{}
	a := New(s.reader(), s.writer())

	is.NoErr(a.Seed(context.Background(), strings.NewReader("")))
}

const seedYaml string = `
tenants:
  - name: River Basin
    timezone: Asia/Makassar
    infoDestination: "-1001"
    alertDestination: "@basin_alerts"
    locations:
      - name: Upstream
        type: rain
        loggers:
          - sn: "1811-3"
            calibration:
              tipFactor: 0.5
      - name: Bridge
        type: "2"
        loggers:
          - sn: "2001"
            type: awlr
            calibration:
              mountHeight: 450
    loggers:
      - sn: "2002"
        type: aws
loggers:
  - sn: "3001"
`

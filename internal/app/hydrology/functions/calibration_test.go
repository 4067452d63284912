package functions

import (
	"testing"

	"github.com/matryer/is"
)

func TestRainfall(t *testing.T) {
	is := is.New(t)

	tick := 5.0
	factor := 0.2

	rain := Rainfall(&tick, &factor)
	is.Equal(*rain, 1.0)

	rain = Rainfall(&tick, nil)
	is.Equal(*rain, 1.0) // default factor

	zero := 0.0
	rain = Rainfall(&zero, &factor)
	is.Equal(*rain, 0.0)

	is.True(Rainfall(nil, &factor) == nil)
}

func TestRainfallWithCustomFactor(t *testing.T) {
	is := is.New(t)

	tick := 3.0
	factor := 0.254

	is.Equal(*Rainfall(&tick, &factor), 0.762)
}

func TestWaterLevel(t *testing.T) {
	is := is.New(t)

	distance := 300.0
	mountHeight := 100.0

	is.Equal(*WaterLevel(&distance, &mountHeight), 70.0)
	is.Equal(*WaterLevel(&distance, nil), 70.0)

	mountHeight = 450.0
	distance = 1234.0
	is.Equal(*WaterLevel(&distance, &mountHeight), 326.6)

	is.True(WaterLevel(nil, &mountHeight) == nil)
}

func TestCalibrate(t *testing.T) {
	is := is.New(t)

	raw := 27.5
	offset := -1.2

	is.Equal(*Calibrate(&raw, &offset), 26.3)
	is.Equal(*Calibrate(&raw, nil), 27.5)
	is.True(Calibrate(nil, &offset) == nil)
	is.True(Calibrate(nil, nil) == nil)
}

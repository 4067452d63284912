package functions

import "math"

const (
	DefaultTipFactor   float64 = 0.2
	DefaultMountHeight float64 = 100.0
)

// Rainfall converts a tip count into millimetres of rain. A nil tick means
// the logger did not report rain and yields nil, not zero.
func Rainfall(tick, tipFactor *float64) *float64 {
	if tick == nil {
		return nil
	}

	rain := rnd(*tick * valueOr(tipFactor, DefaultTipFactor))
	return &rain
}

// WaterLevel returns the level in centimetres above the river bed given a
// sonar distance in millimetres and the sonar mount height in centimetres.
func WaterLevel(distance, mountHeight *float64) *float64 {
	if distance == nil {
		return nil
	}

	level := rnd(valueOr(mountHeight, DefaultMountHeight) - *distance*0.1)
	return &level
}

// Calibrate applies an offset to a raw measurement. The raw value passes
// through unchanged when no offset is configured.
func Calibrate(raw, offset *float64) *float64 {
	if raw == nil {
		return nil
	}

	v := *raw
	if offset != nil {
		v = rnd(v + *offset)
	}
	return &v
}

func valueOr(value *float64, v float64) float64 {
	if value != nil {
		return *value
	}
	return v
}

func rnd(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

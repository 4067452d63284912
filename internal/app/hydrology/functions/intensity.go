package functions

type RainIntensity string

const (
	NoAlert       RainIntensity = ""
	HeavyRain     RainIntensity = "heavy rain"
	VeryHeavyRain RainIntensity = "very heavy rain"
)

const (
	HeavyRainThreshold     float64 = 10.0
	VeryHeavyRainThreshold float64 = 20.0
)

// ClassifyRain maps the rain accumulated over one hour to an alert level.
// Both thresholds are exclusive.
func ClassifyRain(mm float64) RainIntensity {
	switch {
	case mm > VeryHeavyRainThreshold:
		return VeryHeavyRain
	case mm > HeavyRainThreshold:
		return HeavyRain
	default:
		return NoAlert
	}
}

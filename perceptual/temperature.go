package perceptual

import (
	"math"

	"fortio.org/pigment/colorspace"
)

// Temperature is the warm/cool/neutral classification of a color.
type Temperature int

const (
	Neutral Temperature = iota
	Warm
	Cool
)

func (t Temperature) String() string {
	switch t {
	case Warm:
		return "warm"
	case Cool:
		return "cool"
	default:
		return "neutral"
	}
}

// TemperatureInfo is the classification plus an approximate Kelvin value.
// The Kelvin value is a stylistic estimate for display, not a correlated color
// temperature: it is interpolated from the hue inside each bucket.
type TemperatureInfo struct {
	Class  Temperature
	Kelvin float64
}

// Bucket boundaries, in degrees and percent saturation.
const (
	warmEnd        = 60.
	warmStart      = 300.
	coolStart      = 180.
	coolEnd        = 270.
	minSaturation  = 10.
	neutralKelvin  = 5500.
	warmKelvinLow  = 2000.
	warmKelvinHigh = 3500.
	coolKelvinLow  = 7000.
	coolKelvinHigh = 10000.
)

// ColorTemperature classifies hue into warm (0-60 and 300-360), cool (180-270)
// or neutral, with saturation under 10% always neutral.
func ColorTemperature(c colorspace.RGB) TemperatureInfo {
	hsl := c.HSL()
	h := hsl.H
	switch {
	case hsl.S < minSaturation:
		return TemperatureInfo{Class: Neutral, Kelvin: neutralKelvin}
	case h <= warmEnd || h >= warmStart:
		offRed := h
		if h >= warmStart {
			offRed = 360 - h
		}
		k := warmKelvinLow + offRed/warmEnd*(warmKelvinHigh-warmKelvinLow)
		return TemperatureInfo{Class: Warm, Kelvin: math.Round(k)}
	case h >= coolStart && h <= coolEnd:
		k := coolKelvinLow + (h-coolStart)/(coolEnd-coolStart)*(coolKelvinHigh-coolKelvinLow)
		return TemperatureInfo{Class: Cool, Kelvin: math.Round(k)}
	default:
		return TemperatureInfo{Class: Neutral, Kelvin: neutralKelvin}
	}
}

//go:build fastmath

package denoise

import "github.com/meko-christian/algo-approx"

// ln10Over20 converts dB to the natural exponent of an amplitude ratio.
const ln10Over20 = 0.115129254649702284200899572734

// dbToAmplitude converts dB to linear amplitude using a fast exp approximation.
func dbToAmplitude(db float64) float64 {
	return approx.FastExp(db * ln10Over20)
}

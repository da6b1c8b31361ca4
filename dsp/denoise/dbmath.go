//go:build !fastmath

package denoise

import "github.com/cwbudde/goldilocks/dsp/core"

// dbToAmplitude converts dB to linear amplitude using standard library math.
func dbToAmplitude(db float64) float64 {
	return core.DBToLinear(db)
}

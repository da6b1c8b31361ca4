package denoise_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/goldilocks/dsp/denoise"
)

func ExampleEngine() {
	e, err := denoise.New(denoise.WithChannels(1), denoise.WithSampleRate(48000))
	if err != nil {
		panic(err)
	}

	if err := e.Initialize(); err != nil {
		panic(err)
	}

	// A faint hum well below a -40 dB floor.
	in := make([]float64, 2048)
	for i := range in {
		in[i] = 1e-4 * math.Sin(2*math.Pi*50*float64(i)/48000)
	}

	out := make([]float64, len(in))
	controls := denoise.Controls{LearnWindow: 1, NoiseFloorDB: -40}

	if err := e.ProcessBlock([][]float64{out}, [][]float64{in}, controls); err != nil {
		panic(err)
	}

	peak := 0.0
	for _, v := range out {
		peak = math.Max(peak, math.Abs(v))
	}

	fmt.Printf("steps=%d peak=%g\n", e.Stats().Steps, peak)
	// Output: steps=2 peak=0
}

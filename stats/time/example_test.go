package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/goldilocks/stats/time"
)

func ExampleMeasure() {
	l := timestats.Measure([]float64{1, -1, 1, -1})
	fmt.Printf("peak=%.1f rms=%.1f crest=%.1f dB\n", l.Peak, l.RMS, l.CrestFactor_dB)

	// Output:
	// peak=1.0 rms=1.0 crest=0.0 dB
}

func ExampleReduction() {
	var before, after timestats.Meter

	before.Update([]float64{0.5, -0.5})
	after.Update([]float64{0.05, -0.05})

	fmt.Printf("%.1f dB\n", timestats.Reduction(before.Levels(), after.Levels()))

	// Output:
	// 20.0 dB
}

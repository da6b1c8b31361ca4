package core_test

import (
	"fmt"

	"github.com/cwbudde/goldilocks/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithChannels(1),
		core.WithFrameSize(512),
	)

	fmt.Printf("sampleRate=%.0f channels=%d frameSize=%d\n", cfg.SampleRate, cfg.Channels, cfg.FrameSize)

	// Output:
	// sampleRate=44100 channels=1 frameSize=512
}

package denoise

// NoiseProfile is a per-channel, per-bin accumulator fed while learning is
// enabled. Each learning step scales bin i by magnitude[i]/learnTime.
//
// The gate never reads the profile on its own. A [BinFloor] can consult it
// to derive per-bin thresholds.
type NoiseProfile struct {
	bins []float64
}

// NewNoiseProfile returns a profile of n bins set to the multiplicative identity.
func NewNoiseProfile(n int) *NoiseProfile {
	p := &NoiseProfile{bins: make([]float64, n)}
	p.Reset()

	return p
}

// Len returns the number of bins.
func (p *NoiseProfile) Len() int { return len(p.bins) }

// At returns the accumulated value of bin i.
func (p *NoiseProfile) At(i int) float64 { return p.bins[i] }

// Values returns the accumulator slice. Callers must not modify it.
func (p *NoiseProfile) Values() []float64 { return p.bins }

// Learn folds one frame of bin magnitudes into the profile.
// Non-positive learnTime is ignored.
func (p *NoiseProfile) Learn(magnitude []float64, learnTime float64) {
	if learnTime <= 0 {
		return
	}

	inv := 1 / learnTime
	n := min(len(p.bins), len(magnitude))

	for i := range n {
		p.bins[i] *= magnitude[i] * inv
	}
}

// Reset restores every bin to 1.
func (p *NoiseProfile) Reset() {
	for i := range p.bins {
		p.bins[i] = 1
	}
}

// BinFloor lets a gate use a per-bin threshold instead of the scalar floor.
//
// BinFloor is called for every bin of every analysis step on the audio path;
// implementations must not block or allocate. profile is the channel's
// accumulator.
type BinFloor interface {
	BinFloor(bin int, floor float64, profile *NoiseProfile) float64
}

// BinFloorFunc adapts a function to [BinFloor].
type BinFloorFunc func(bin int, floor float64, profile *NoiseProfile) float64

// BinFloor implements [BinFloor].
func (f BinFloorFunc) BinFloor(bin int, floor float64, profile *NoiseProfile) float64 {
	return f(bin, floor, profile)
}

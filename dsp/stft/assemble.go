package stft

import "fmt"

// ExtractTail copies the newest len(dst) samples of a synthesized frame into dst.
//
// With rectangular framing those are the samples whose analysis history is
// fully populated by real input, so they are the ones emitted for the step
// that was just admitted.
func ExtractTail(dst, frame []float64) error {
	step := len(dst)
	if step == 0 || step > len(frame) {
		return fmt.Errorf("%w: tail of %d samples from %d-sample frame", ErrGeometry, step, len(frame))
	}

	copy(dst, frame[len(frame)-step:])

	return nil
}

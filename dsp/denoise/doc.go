// Package denoise implements a real-time spectral noise gate.
//
// Audio arrives in host-sized blocks of any length. Each channel keeps a
// fixed-length history (see [stft.FrameBuffer]); every analysis step admits
// up to FrameSize new samples, transforms the history, zeroes the bins whose
// normalized magnitude lies below the noise floor and emits the newest
// samples of the resynthesized frame. Output is sample-aligned with input:
// with the gate fully open the processor is an identity.
//
// Components:
//   - Gate: per-bin magnitude thresholding with an optional learn accumulator.
//   - NoiseProfile: per-channel accumulator updated while learning.
//   - StreamProcessor: block to analysis-step orchestration per channel.
//   - Engine: lifecycle wrapper (Initialize / ProcessBlock / Shutdown) that
//     derives gate parameters from host controls.
//
// Nothing on the block path allocates, locks or logs once an Engine is
// constructed.
package denoise

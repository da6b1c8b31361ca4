// Package stft provides the streaming short-time Fourier building blocks used
// by block-based spectral processors.
//
// The pieces are allocation-free after construction:
//   - FrameBuffer: fixed-length per-channel history ring.
//   - Analyzer: real frame to amplitude-normalized half-spectrum.
//   - Synthesizer: half-spectrum back to a real frame.
//   - ExtractTail: causal tail extraction for output assembly.
//
// Framing is rectangular. No window or cross-frame blending is applied, so a
// frame that is not modified in the spectral domain reconstructs exactly.
package stft

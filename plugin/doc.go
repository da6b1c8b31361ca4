// Package plugin adapts the denoise engine to a LADSPA-style host model:
// a static descriptor with a numbered port table, and an Instance whose
// ports are connected to host-owned float32 buffers before Run is called
// once per block.
package plugin

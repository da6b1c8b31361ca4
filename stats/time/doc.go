// Package time provides time-domain level measurements for audio buffers:
// peak, RMS, crest factor and the level difference between two renditions
// of the same material.
package time

// Package pcm converts between the float64 domain internal/encoder and
// internal/decoder operate in and the 32-bit signed PCM sample streams the
// wire format is actually carried over (original_source/s2d.c, d2s.c),
// generalizing pkg/modem/convert.go from the teacher.
package pcm

import "encoding/binary"

// FullScale is the magnitude of a full-scale 32-bit signed PCM sample,
// matching 0x7FFFFFFF in both original_source/s2d.c and d2s.c.
const FullScale = 0x7FFFFFFF

// SignalStrength is the decoder's raw sample domain width (s2d.c's
// SIGNAL_STREANGTH): decoder.Decode takes samples in [0, SignalStrength].
const SignalStrength = 1024

// Int32ToFloat64 converts PCM samples to the encoder/decoder's [-1,1]
// float64 domain (pkg/modem/convert.go, generalized from int32 slices read
// off the wire to a single-sample helper usable in a streaming reader).
func Int32ToFloat64(v int32) float64 {
	return float64(v) / FullScale
}

// Float64ToInt32 is the inverse of Int32ToFloat64, clamping to [-1,1]
// first (d2s.c's write_sample does the same clamp before scaling).
func Float64ToInt32(x float64) int32 {
	if x > 1 {
		x = 1
	}
	if x < -1 {
		x = -1
	}
	return int32(x * FullScale)
}

// ToDecoderSample maps a [-1,1] float64 sample to the nonnegative integer
// domain internal/decoder.Decode consumes: (x+1)/2*SignalStrength, exactly
// as s2d.c's main loop does before calling decoder_decode.
func ToDecoderSample(x float64) int {
	return int((x + 1) / 2 * SignalStrength)
}

// WriteSample appends the little-endian 32-bit PCM encoding of x to buf,
// matching d2s.c's write_sample byte order.
func WriteSample(buf []byte, x float64) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(Float64ToInt32(x)))
	return append(buf, tmp[:]...)
}

// ReadSample decodes one little-endian 32-bit PCM sample from buf, which
// must be at least 4 bytes long.
func ReadSample(buf []byte) float64 {
	return Int32ToFloat64(int32(binary.LittleEndian.Uint32(buf)))
}

package decoder

import "math"

// FourierAccumulator is a sparse discrete Fourier transform against the
// BitCount target frequencies described in spec §4.3. It is the
// "Fourier Correlator" component: callers feed it one conditioned sample
// per call and, once SampleCount samples have been seen, read back the
// per-frequency squared magnitude.
//
// The teacher's reference models this as a header struct followed by a
// trailing flexible array of sin/cos pairs for cache locality (see
// original_source/s2d.c, struct fourier). That layout trick carries no
// semantic weight in Go; a fixed-size array is used instead.
type FourierAccumulator struct {
	i           int // samples consumed into the current symbol
	SampleCount int // current estimate of samples per symbol

	sinAcc [BitCount]float64
	cosAcc [BitCount]float64
}

// Reset clears the accumulator for the next symbol. SampleCount is left
// untouched; it is owned by the synchronizer's clock-recovery logic.
func (f *FourierAccumulator) Reset() {
	f.i = 0
	for k := range f.sinAcc {
		f.sinAcc[k] = 0
		f.cosAcc[k] = 0
	}
}

// AddSample accumulates one conditioned sample and reports whether the
// symbol window is now complete (i == SampleCount).
func (f *FourierAccumulator) AddSample(sample float64) (ready bool) {
	n := float64(f.SampleCount)
	for k := 0; k < BitCount; k++ {
		freq := float64(k + 1)
		phase := freq * float64(f.i) / n
		scale := sample * fourierScale / n
		f.sinAcc[k] += nsin(phase) * scale
		f.cosAcc[k] += ncos(phase) * scale
	}
	f.i++
	return f.i >= f.SampleCount
}

// ToFrequencies returns the squared magnitude p_f := sin_acc[f]^2 +
// cos_acc[f]^2 for each of the BitCount target frequencies. No square
// root is taken; the bit-present threshold is compared against the
// squared magnitude directly (spec §4.3).
func (f *FourierAccumulator) ToFrequencies() [BitCount]float64 {
	var out [BitCount]float64
	for k := 0; k < BitCount; k++ {
		out[k] = f.sinAcc[k]*f.sinAcc[k] + f.cosAcc[k]*f.cosAcc[k]
	}
	return out
}

// phase returns the signed phase of the lowest target frequency (f=1),
// scaled to sample units. sincosToPhase(x, y) computes atan2(y, x), and
// this call passes (sin, cos) as (x, y) — netting out to atan2(cos, sin),
// not the conventional atan2(sin, cos). This swap is load-bearing, see
// spec §9 and original_source/s2d.c's sincos_to_phase call site. Preserve
// it exactly.
func (f *FourierAccumulator) phase() float64 {
	return sincosToPhase(f.sinAcc[0], f.cosAcc[0])
}

func nsin(turns float64) float64 {
	return math.Sin(turns * 2 * math.Pi)
}

func ncos(turns float64) float64 {
	return nsin(turns + 0.25)
}

// sincosToPhase returns atan2(y, x) in turns (range (-0.5, 0.5]), matching
// the reference's sincos_to_phase(x, y) = atan2(y, x) / (2*pi).
func sincosToPhase(x, y float64) float64 {
	return math.Atan2(y, x) / (2 * math.Pi)
}

// decodeByte feeds one conditioned sample into the Fourier accumulator and,
// once a symbol completes, assembles the 9-bit symbol word, derives the
// clock-phase correction from frequency 1, resets the accumulator, and
// returns the decode result:
//
//   - RetNoData: more samples are required (the common case)
//   - RetEof:    a complete symbol decoded to all-zeros
//   - 0..255:    a data byte (sync bit stripped)
//
// As a side effect, d.phase is overwritten whenever a symbol completes
// (never touched otherwise) — mirroring original_source/s2d.c's
// decoder_decode_byte, which writes decoder->phase directly rather than
// returning it. This matters for the rare case where the "early close"
// re-feed (spec §9 open question) itself completes a second symbol: the
// reference lets that second completion clobber decoder->phase too, and
// this port preserves the same field-write semantics instead of quietly
// discarding it.
func (d *Decoder) decodeByte(fsample float64) int {
	if !d.fourier.AddSample(fsample) {
		return RetNoData
	}

	freqs := d.fourier.ToFrequencies()
	word := 0
	for k := 0; k < BitCount; k++ {
		if freqs[k] > bitPresentThreshold {
			word |= 1 << (BitCount - k - 1)
		}
	}

	if word&SyncBit != 0 {
		d.phase = int(math.Round(d.fourier.phase() * float64(d.fourier.SampleCount)))
	} else {
		d.phase = 0
	}

	d.fourier.Reset()

	if word == 0 {
		return RetEof
	}
	return word & 0xFF
}

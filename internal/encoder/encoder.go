// Package encoder implements the wire format of spec §6: the inverse of
// internal/decoder, kept deliberately thin (the spec treats the encoder's
// symbol loop as out of scope, covered only as the decoder's dual).
package encoder

import (
	"math"

	"tonewire/internal/decoder"
)

// SampleCount is the nominal number of samples per symbol the reference
// encoder uses (spec §6). The decoder discovers this adaptively and never
// assumes it; the encoder, as the transmitter, gets to pick it.
const SampleCount = 20

const (
	// SyncAmplitude is used for the two baseline-silence symbols and the
	// eight sync-only calibration symbols.
	SyncAmplitude = 1.0
	// DataAmplitude is used for the start marker and every data byte, kept
	// low enough that up to nine summed sinusoids never clip (spec §6).
	DataAmplitude = 0.16
)

const startMarker = '>'

// Encoder turns a byte stream into the Sample sequence spec §6 describes.
// SampleRate and SampleCount together determine the symbol rate; a caller
// driving real audio hardware divides SampleRate by SampleCount to get the
// byte rate.
type Encoder struct {
	SampleCount int
}

// New returns an Encoder using the wire format's nominal symbol length.
func New() Encoder {
	return Encoder{SampleCount: SampleCount}
}

// Encode renders data as the full transmission described in spec §6:
// two zero symbols, eight sync-flag-only symbols at full amplitude, one
// start-marker symbol, each data byte (sync flag set), and two trailing
// zero symbols. The returned samples are float64 in [-1,1]; a transport
// quantizes them to its wire representation (see pkg/pcm).
func (e Encoder) Encode(data []byte) []float64 {
	n := e.SampleCount
	if n == 0 {
		n = SampleCount
	}

	out := make([]float64, 0, n*(4+8+1+len(data)))

	emit := func(word int, amplitude float64) {
		out = append(out, e.symbol(word, amplitude, n)...)
	}

	emit(0, SyncAmplitude)
	emit(0, SyncAmplitude)

	for i := 0; i < 8; i++ {
		emit(decoder.SyncBit, SyncAmplitude)
	}

	emit(startMarker|decoder.SyncBit, DataAmplitude)
	for _, b := range data {
		emit(int(b)|decoder.SyncBit, DataAmplitude)
	}

	emit(0, SyncAmplitude)
	emit(0, SyncAmplitude)

	return out
}

// symbol renders one BitCount-bit word as n samples: the sum, over every
// set bit b, of a sine wave at frequency (BitCount-b) (spec §4.3's
// bit-to-frequency mapping, inverted — bit k maps to frequency
// BitCount-k, the highest byte bit carried by the lowest frequency).
func (e Encoder) symbol(word int, amplitude float64, n int) []float64 {
	samples := make([]float64, n)
	for t := 0; t < n; t++ {
		var sum float64
		for b := 0; b < decoder.BitCount; b++ {
			if word&(1<<b) == 0 {
				continue
			}
			freq := float64(decoder.BitCount - b)
			sum += math.Sin(2 * math.Pi * freq * float64(t) / float64(n))
		}
		samples[t] = sum * amplitude
	}
	return samples
}

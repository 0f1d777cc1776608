// Package decoder implements the sliding-DFT / state-machine decoder that
// turns a stream of audio samples back into the byte stream a matching
// internal/encoder produced. See original_source/s2d.c for the reference
// this package is a direct port of.
package decoder

// BitCount is the number of target frequencies (and the number of data
// bits per symbol, excluding the sync flag).
const BitCount = 9

// SyncBit marks a symbol as carrying the sync flag (bit 8, value 0x100).
const SyncBit = 1 << 8

// SampleCountMin is the smallest allowed symbol period: 2*BitCount+1.
// The Nyquist-ish margin of 2 samples per frequency, plus one, is what the
// reference implementation uses; preserved literally.
const SampleCountMin = BitCount*2 + 1

// TimingSignalThreshold is the baseline-deviation threshold (in Sample
// units) that promotes DetectPolarity to DetectWaveFirstHalf.
const TimingSignalThreshold = 64

// fourierScale and bitPresentThreshold are the literal constants the wire
// format is calibrated against (see spec §4.3). Do not change these: they
// must match the reference encoder's amplitudes for wire compatibility.
const (
	fourierScale        = 25
	bitPresentThreshold = 0.5 * 0.5
)

// State is the decoder's state-machine tag (spec §3, DecoderState).
type State int

const (
	Init State = iota
	DetectPolarity
	DetectWaveFirstHalf
	DetectWaveSecondHalf
	DetectCalibrate
	DecodeData
	Eof
)

func (s State) String() string {
	switch s {
	case Init:
		return "Init"
	case DetectPolarity:
		return "DetectPolarity"
	case DetectWaveFirstHalf:
		return "DetectWaveFirstHalf"
	case DetectWaveSecondHalf:
		return "DetectWaveSecondHalf"
	case DetectCalibrate:
		return "DetectCalibrate"
	case DecodeData:
		return "DecodeData"
	case Eof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Return values for decodeByte / Decode, matching the reference's
// DECODER_RET_* enum.
const (
	RetEof    = -1
	RetNoData = -2
)

package pcm

// HeaderSize is the length, in bytes, of the fixed WAV header WriteHeader
// emits and DetectHeader recognizes.
const HeaderSize = 44

// header is the literal byte sequence original_source/d2s.c's
// write_wav_header emits: a 44-byte mono, 44100Hz, 32-bit PCM WAV header
// with placeholder (streaming, size-unknown) RIFF and data chunk sizes.
// cmd/encode writes this verbatim ahead of the first symbol so the
// resulting stream plays back in any WAV-aware tool; cmd/decode treats it
// as optional (spec §6.2): a stream may start directly with raw samples.
var header = [HeaderSize]byte{
	'R', 'I', 'F', 'F', 0x24, 0, 0, 0x80, 'W', 'A', 'V', 'E',
	'f', 'm', 't', ' ', 0x10, 0, 0, 0, 1, 0, 1, 0,
	0x44, 0xAC, 0, 0, 0, 0xEE, 2, 0, 4, 0, 0x20, 0,
	'd', 'a', 't', 'a', 0, 0, 0, 0x80,
}

// WriteHeader appends the WAV header to buf.
func WriteHeader(buf []byte) []byte {
	return append(buf, header[:]...)
}

// DetectHeader reports whether buf begins with the RIFF/WAVE magic this
// package writes, and if so returns the number of leading bytes to skip.
// A stream lacking the magic is assumed to be raw samples (skip 0), per
// spec §6.2's auto-detection requirement; buf must be at least 4 bytes
// long to be recognized.
func DetectHeader(buf []byte) (skip int) {
	if len(buf) >= 4 && buf[0] == 'R' && buf[1] == 'I' && buf[2] == 'F' && buf[3] == 'F' {
		return HeaderSize
	}
	return 0
}

// Package device provides the audio sample transports cmd/live and the
// decoder/encoder test suite drive: a full-duplex Device interface, a real
// ASIO-backed implementation, and a Loopback fake for deterministic tests.
package device

// Device is a full-duplex int32 PCM sample source/sink. Start must be
// called at most once; callback is invoked repeatedly with equal-length
// input and output buffers until Stop returns.
type Device interface {
	Start(callback func(in, out []int32))
	Stop()
}

// BufferSize is the number of samples per callback invocation.
const BufferSize = 512

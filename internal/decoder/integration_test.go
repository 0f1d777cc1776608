package decoder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tonewire/internal/decoder"
	"tonewire/internal/encoder"
	"tonewire/pkg/device"
	"tonewire/pkg/pcm"
)

// Drives a full encode/decode round trip over pkg/device.Loopback, the same
// Device implementation cmd/live drives a real sound card through, so the
// transport plumbing gets exercised by something other than its own tests.
func TestRoundTripOverLoopbackDevice(t *testing.T) {
	enc := encoder.New()
	samples := enc.Encode([]byte("loopback"))

	dec := decoder.New()
	var got []byte
	done := make(chan struct{})

	d := &device.Loopback{}
	idx := 0
	d.Start(func(in, out []int32) {
		for i := range out {
			if idx < len(samples) {
				out[i] = pcm.Float64ToInt32(samples[idx])
				idx++
			} else {
				out[i] = 0
			}
		}
		for _, x := range in {
			raw := pcm.ToDecoderSample(pcm.Int32ToFloat64(x))
			if b := dec.Decode(raw); b >= 0 {
				got = append(got, byte(b))
			}
			if dec.State() == decoder.Eof {
				close(done)
				return
			}
		}
	})
	defer d.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for decode to finish")
	}
	assert.Equal(t, []byte("loopback"), got)
}

// Routes an encoded stream through pkg/device.Network's generic named-buffer
// topology instead of a direct Loopback, confirming the decoder tolerates
// an extra hop of buffering/summing on the way in.
func TestRoundTripOverNetworkTopology(t *testing.T) {
	enc := encoder.New()
	samples := enc.Encode([]byte("net"))

	n := &device.Network[string]{
		Config: device.NetworkConfig[string]{
			{In: "link", Out: "link"},
		},
	}
	nodes := n.Build()

	dec := decoder.New()
	var got []byte
	done := make(chan struct{})

	idx := 0
	nodes[0].Start(func(in, out []int32) {
		for i := range out {
			if idx < len(samples) {
				out[i] = pcm.Float64ToInt32(samples[idx])
				idx++
			} else {
				out[i] = 0
			}
		}
		for _, x := range in {
			raw := pcm.ToDecoderSample(pcm.Int32ToFloat64(x))
			if b := dec.Decode(raw); b >= 0 {
				got = append(got, byte(b))
			}
			if dec.State() == decoder.Eof {
				select {
				case <-done:
				default:
					close(done)
				}
			}
		}
	})
	defer n.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for decode to finish")
	}
	assert.Equal(t, []byte("net"), got)
}

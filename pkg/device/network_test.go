package device

import (
	"reflect"
	"testing"
	"time"

	"tonewire/pkg/pcm"
)

// Exercises Network's named-buffer topology with fixed per-node PCM
// amplitudes (standing in for distinct transmitters on a shared channel)
// instead of random noise, so the buffer-routing assertions below are
// reproducible. This is the same Network type
// internal/decoder/integration_test.go drives end-to-end through an
// actual Decoder; here the topology plumbing itself is checked in
// isolation: a self-looped buffer shared by two nodes (nodes 1 and 2),
// a standalone buffer (node 3), and a cross-swapped pair (nodes 4 and 5).
func TestNetworkRoutesNamedBuffers(t *testing.T) {

	lastOutSum1 := alloci32(BufferSize)
	lastOutSum2 := alloci32(BufferSize)
	lastOutSum3 := alloci32(BufferSize)
	lastOutSum4 := alloci32(BufferSize)
	outputSum1 := alloci32(BufferSize)
	outputSum3 := alloci32(BufferSize)
	outputSum4 := alloci32(BufferSize)

	amplitude := func(x float64) []int32 {
		buf := alloci32(BufferSize)
		v := pcm.Float64ToInt32(x)
		for i := range buf {
			buf[i] = v
		}
		return buf
	}
	tone1 := amplitude(0.16)
	tone2 := amplitude(0.32)
	tone3 := amplitude(0.48)
	tone4 := amplitude(0.64)
	tone5 := amplitude(0.80)

	network := Network[string]{
		SampleRate: 48000,
		Config: NetworkConfig[string]{
			{In: "buf1", Out: "buf1"},
			{In: "buf1", Out: "buf1"},
			{In: "buf2", Out: "buf2"},
			{In: "buf3", Out: "buf4"},
			{In: "buf4", Out: "buf3"},
		},
		LateUpdate: func() {
			copy(lastOutSum1, outputSum1)
			copy(lastOutSum3, outputSum3)
			copy(lastOutSum4, outputSum4)
			cleari32(outputSum1)
		},
	}

	devs := network.Build()

	devs[0].Start(func(in, out []int32) {
		t.Logf("[tx1] - in: %p, out: %p\n", in, out)
		if !reflect.DeepEqual(in, lastOutSum1) {
			t.Errorf("[tx1] Expected %v, but got %v", lastOutSum1, in)
		}

		copy(out, tone1)
		sumi32(outputSum1, out, outputSum1)
	})

	devs[1].Start(func(in, out []int32) {
		t.Logf("[tx2] - in: %p, out: %p\n", in, out)

		if !reflect.DeepEqual(in, lastOutSum1) {
			t.Errorf("[tx2] Expected %v, but got %v", lastOutSum1, in)
		}

		copy(out, tone2)
		sumi32(outputSum1, out, outputSum1)
	})

	devs[2].Start(func(in, out []int32) {
		t.Logf("[tx3] - in: %p, out: %p\n", in, out)
		if !reflect.DeepEqual(in, lastOutSum2) {
			t.Errorf("[tx3] Expected %v, but got %v", lastOutSum2, in[0])
		}

		copy(out, tone3)
		copy(lastOutSum2, out)
	})

	devs[3].Start(func(in, out []int32) {

		t.Logf("[tx4] - in: %p, out: %p\n", in, out)
		if !reflect.DeepEqual(in, lastOutSum4) {
			t.Errorf("[tx4] Expected %v, but got %v", lastOutSum4, in)
		}

		copy(out, tone4)
		copy(outputSum3, out)
	})

	devs[4].Start(func(in, out []int32) {

		t.Logf("[tx5] - in: %p, out: %p\n", in, out)
		if !reflect.DeepEqual(in, lastOutSum3) {
			t.Errorf("[tx5] Expected %v, but got %v", lastOutSum3, in)
		}
		copy(out, tone5)
		copy(outputSum4, out)
	})

	time.Sleep(3 * time.Millisecond)

	network.Stop()

}

package pcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestInt32Float64RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1, 1).Draw(t, "x")
		v := Float64ToInt32(x)
		got := Int32ToFloat64(v)
		assert.InDelta(t, x, got, 1.0/FullScale)
	})
}

func TestFloat64ToInt32Clamps(t *testing.T) {
	assert.Equal(t, int32(FullScale), Float64ToInt32(2))
	assert.Equal(t, int32(-FullScale), Float64ToInt32(-2))
}

func TestToDecoderSampleRange(t *testing.T) {
	assert.Equal(t, 0, ToDecoderSample(-1))
	assert.Equal(t, SignalStrength, ToDecoderSample(1))
	assert.Equal(t, SignalStrength/2, ToDecoderSample(0))
}

func TestWriteReadSampleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1, 1).Draw(t, "x")
		buf := WriteSample(nil, x)
		got := ReadSample(buf)
		assert.InDelta(t, x, got, 1.0/FullScale)
	})
}

func TestDetectHeader(t *testing.T) {
	buf := WriteHeader(nil)
	assert.Equal(t, HeaderSize, DetectHeader(buf))
	assert.Equal(t, 0, DetectHeader([]byte{0, 0, 0, 0}))
}

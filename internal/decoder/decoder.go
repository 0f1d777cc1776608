package decoder

// Decoder is the full sample -> byte pipeline of spec §2: a Conditioner
// feeding a FourierAccumulator, gated by the state machine described in
// spec §4.2 (the "Symbol Clock / Synchronizer"). One Decoder is created
// per incoming stream, fed by exactly one caller, and discarded once it
// returns Eof (spec §3, Lifecycle).
type Decoder struct {
	state   State
	cond    Conditioner
	fourier FourierAccumulator

	phase, phase2, phase3 int

	metrics Metrics
}

// Metrics receives passive observability callbacks; a nil-valued Metrics
// (the zero Decoder) performs no observation at all. See pkg/metrics for
// a Prometheus-backed implementation.
type Metrics interface {
	ByteDecoded()
	Restarted()
	Finished()
	SampleCount(n int)
}

// New returns a Decoder ready to consume samples from State Init.
func New() *Decoder {
	return &Decoder{}
}

// WithMetrics attaches an observability sink. Wiring metrics never
// changes decode semantics (spec §6.4).
func (d *Decoder) WithMetrics(m Metrics) *Decoder {
	d.metrics = m
	return d
}

// State reports the decoder's current DecoderState, mostly useful for
// tests and diagnostics.
func (d *Decoder) State() State {
	return d.state
}

// Decode advances the decoder by exactly one raw Sample (spec §3: a
// nonnegative scalar in a fixed integer range) and returns:
//
//   - RetNoData: the common case, more samples are needed
//   - RetEof: the decoder has reached the terminal state
//   - 0..255: a decoded data byte
func (d *Decoder) Decode(raw int) int {
	switch d.state {
	case Init, DetectPolarity, DetectWaveFirstHalf:
		next, counted := d.cond.transition(d.state, raw)
		if counted {
			d.fourier.SampleCount++
		}
		if d.state == Init {
			d.fourier.SampleCount = 0
		}
		d.state = next
		return RetNoData

	case DetectWaveSecondHalf:
		next, counted := d.cond.transition(d.state, raw)
		if counted {
			d.fourier.SampleCount++
		}
		if next == DetectCalibrate {
			// sample_count is a very, very rough estimate at this point.
			if d.fourier.SampleCount < SampleCountMin {
				d.fourier.SampleCount = SampleCountMin
			}
			d.phase, d.phase2, d.phase3 = 0, 0, 0
			d.reportSampleCount()
		}
		d.state = next
		return RetNoData

	case DetectCalibrate:
		d.stepCalibrate(raw)
		return RetNoData

	case DecodeData:
		return d.stepDecodeData(raw)

	default: // Eof
		return RetEof
	}
}

// stepCalibrate implements the DetectCalibrate case of spec §4.2: bytes
// decoded here never reach the caller, they only drive clock recovery and
// the `'>'`-triggered transition into DecodeData.
func (d *Decoder) stepCalibrate(raw int) {
	if d.phase < 0 {
		d.phase++
		return
	}

	fsample := d.cond.normalize(raw)
	byteVal := d.decodeByte(fsample)

	switch {
	case byteVal == RetEof:
		// False positive: polarity/wave detection triggered on noise.
		d.state = Init
		d.reportRestarted()
	case byteVal >= 0:
		d.applyClockCorrection()
		if byteVal == '>' {
			d.state = DecodeData
		}
		if d.phase > 0 {
			// Early close: feed the same sample again (spec §9 open question).
			d.decodeByte(fsample)
		}
	}
}

// stepDecodeData implements the DecodeData case of spec §4.2, returning
// the decoded byte (or RetNoData/RetEof) to the caller.
func (d *Decoder) stepDecodeData(raw int) int {
	if d.phase < 0 {
		d.phase++
		return RetNoData
	}

	fsample := d.cond.normalize(raw)
	byteVal := d.decodeByte(fsample)

	switch {
	case byteVal == RetEof:
		d.state = Eof
		d.reportFinished()
	case byteVal >= 0:
		d.applyClockCorrection()
		if d.phase > 0 {
			d.decodeByte(fsample)
		}
		d.reportByteDecoded()
	}
	return byteVal
}

// applyClockCorrection implements the phase-history shift and bulk
// drift-correction rule of spec §4.2. phase2 (not phase3) is cleared after
// a bulk correction is applied; preserve this exactly (spec §9).
func (d *Decoder) applyClockCorrection() {
	if d.phase != 0 && d.phase2 != 0 && d.phase3 != 0 &&
		sameSign(d.phase, d.phase2) && sameSign(d.phase2, d.phase3) {
		d.fourier.SampleCount -= roundDiv3(d.phase + d.phase2 + d.phase3)
		d.phase2 = 0
		d.reportSampleCount()
	} else {
		d.phase3 = d.phase2
		d.phase2 = d.phase
	}
}

func sameSign(a, b int) bool {
	return (a < 0) == (b < 0)
}

// roundDiv3 divides by 3 the way the reference's integer division does
// (truncating toward zero).
func roundDiv3(x int) int {
	return x / 3
}

func (d *Decoder) reportByteDecoded() {
	if d.metrics != nil {
		d.metrics.ByteDecoded()
	}
}

func (d *Decoder) reportRestarted() {
	if d.metrics != nil {
		d.metrics.Restarted()
	}
}

func (d *Decoder) reportFinished() {
	if d.metrics != nil {
		d.metrics.Finished()
	}
}

func (d *Decoder) reportSampleCount() {
	if d.metrics != nil {
		d.metrics.SampleCount(d.fourier.SampleCount)
	}
}

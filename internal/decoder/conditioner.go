package decoder

// Conditioner is the "Signal Conditioner" component (spec §4.1). It tracks
// baseline, polarity, and dynamic range, and turns raw samples into a
// normalized [0,1] float once calibration is sufficient. It holds no
// clock/Fourier state; that belongs to the synchronizer half of Decoder.
type Conditioner struct {
	baseline  int
	polarity  bool // true = positive-going first half-wave
	signalMin int
	signalMax int
}

// transition advances the conditioner by one raw sample while the decoder
// is still in one of the pre-calibration states (Init..DetectWaveSecondHalf)
// and returns the resulting state.
//
// countSample reports whether this call ran the "wave half" body (spec
// §4.2's sample-count seed: the synchronizer increments sample_count once
// per call for which this is true, whether DetectWaveFirstHalf ran
// directly or via the DetectPolarity fallthrough).
//
// The DetectPolarity -> DetectWaveFirstHalf transition re-executes the
// DetectWaveFirstHalf body immediately with the same sample (spec §9);
// preserved here via waveFirstHalfBody instead of a literal C-style
// switch-fallthrough.
func (c *Conditioner) transition(state State, raw int) (next State, countSample bool) {
	switch state {
	case Init:
		c.baseline = raw
		return DetectPolarity, false

	case DetectPolarity:
		diff := raw - c.baseline
		if diff > TimingSignalThreshold || diff < -TimingSignalThreshold {
			c.polarity = diff > 0
			c.signalMax = c.baseline
			c.signalMin = c.baseline
			return c.waveFirstHalfBody(raw), true
		}
		c.baseline = c.baseline + diff/8 // truncating integer division; preserve
		return state, false

	case DetectWaveFirstHalf:
		return c.waveFirstHalfBody(raw), true

	case DetectWaveSecondHalf:
		c.updateMagnitude(raw)
		crossed := (raw > (c.signalMax+c.signalMin)/2) == c.polarity
		if crossed {
			return DetectCalibrate, true
		}
		return state, true

	default:
		return state, false
	}
}

// normalize produces the conditioned [0,1] sample once calibration is
// complete (state >= DetectCalibrate). signalMin/signalMax are frozen by
// this point; see spec §4.1's error-conditions note for the
// signalMax==signalMin degenerate case.
func (c *Conditioner) normalize(raw int) float64 {
	fsample := float64(raw-c.signalMin) / float64(c.signalMax-c.signalMin)
	if !c.polarity {
		fsample = 1 - fsample
	}
	return fsample
}

// waveFirstHalfBody runs the DetectWaveFirstHalf state body: it decides
// whether the polarity-aware distance from the extremum has exceeded the
// full observed range (spec §4.2), which promotes to DetectWaveSecondHalf.
func (c *Conditioner) waveFirstHalfBody(raw int) State {
	var diff int
	if c.polarity {
		diff = c.signalMax - raw
	} else {
		diff = raw - c.signalMin
	}
	// The comparison uses the range as of *before* this sample widens it
	// (updateMagnitude runs after); preserve this ordering exactly, it is
	// load-bearing for when the promotion fires.
	promote := diff > c.signalMax-c.signalMin
	c.updateMagnitude(raw)
	if promote {
		return DetectWaveSecondHalf
	}
	return DetectWaveFirstHalf
}

// updateMagnitude widens signalMin/signalMax but never narrows them
// (testable property 3).
func (c *Conditioner) updateMagnitude(raw int) {
	if raw > c.signalMax {
		c.signalMax = raw
	}
	if raw < c.signalMin {
		c.signalMin = raw
	}
}

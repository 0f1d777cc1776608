// Package metrics implements internal/decoder.Metrics with Prometheus
// collectors, following the promauto registration idiom used throughout
// madpsy-ka9q_ubersdr's prometheus.go. Wiring this sink never changes
// decode semantics (spec §6.4); a *Decoder with no metrics attached runs
// identically.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decoder collects the passive observability counters/gauges internal/decoder
// emits per stream: bytes successfully decoded, false-positive-triggered
// restarts back to Init, stream completions, and the synchronizer's current
// estimate of samples per symbol.
type Decoder struct {
	bytesDecoded  prometheus.Counter
	restartsTotal prometheus.Counter
	eofTotal      prometheus.Counter
	sampleCount   prometheus.Gauge
}

// NewDecoder registers and returns a Decoder metrics sink. Multiple Decoders
// sharing a single process should share one Decoder sink rather than each
// registering their own, since Prometheus collector names are global.
func NewDecoder() *Decoder {
	return &Decoder{
		bytesDecoded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tonewire_decoder_bytes_decoded_total",
			Help: "Total number of data bytes successfully decoded.",
		}),
		restartsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tonewire_decoder_restarts_total",
			Help: "Total number of false-positive-triggered restarts back to the Init state.",
		}),
		eofTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tonewire_decoder_eof_total",
			Help: "Total number of streams that reached the terminal Eof state.",
		}),
		sampleCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tonewire_decoder_sample_count",
			Help: "Synchronizer's current estimate of samples per symbol.",
		}),
	}
}

func (d *Decoder) ByteDecoded() {
	d.bytesDecoded.Inc()
}

func (d *Decoder) Restarted() {
	d.restartsTotal.Inc()
}

func (d *Decoder) Finished() {
	d.eofTotal.Inc()
}

func (d *Decoder) SampleCount(n int) {
	d.sampleCount.Set(float64(n))
}

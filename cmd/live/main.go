// Command live drives a real ASIO sound card full-duplex: it decodes
// whatever arrives on the input channel to stdout, and simultaneously
// encodes stdin to the output channel, so two machines running this tool
// against a shared analog link (or even the same machine in loopback) can
// exchange a byte stream (spec §6.2 Live transport).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"tonewire/internal/config"
	"tonewire/internal/decoder"
	"tonewire/internal/encoder"
	"tonewire/pkg/async"
	"tonewire/pkg/device"
	"tonewire/pkg/metrics"
	"tonewire/pkg/pcm"
)

func main() {
	var (
		configPath  = pflag.StringP("config", "c", "", "path to a YAML config file")
		deviceName  = pflag.StringP("device", "d", "", "ASIO device name (overrides config)")
		sampleRate  = pflag.Float64P("sample-rate", "s", 0, "sample rate in Hz (overrides config)")
		withMetrics = pflag.Bool("metrics", false, "count decoded bytes via pkg/metrics")
		recordPath  = pflag.String("record", "", "capture raw input samples to this file on exit")
		playback    = pflag.String("playback", "", "replay raw samples from this file instead of live-encoding stdin")
		help        = pflag.BoolP("help", "h", false, "display this help text")
	)
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "live: full-duplex encode/decode over a real sound card")
		pflag.PrintDefaults()
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "live: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *deviceName != "" {
		cfg.Device.Name = *deviceName
	}
	if *sampleRate != 0 {
		cfg.Device.SampleRate = *sampleRate
	}

	dec := decoder.New()
	if *withMetrics {
		dec.WithMetrics(metrics.NewDecoder())
	}
	enc := encoder.New()
	if cfg.Encoder.SampleCount != 0 {
		enc.SampleCount = cfg.Encoder.SampleCount
	}

	var player *device.Player
	if *playback != "" {
		track, err := pcm.ReadBinary[int32](*playback)
		if err != nil {
			fmt.Fprintf(os.Stderr, "live: %v\n", err)
			os.Exit(1)
		}
		player = &device.Player{Track: track}
	}

	outQueue := make(chan []float64, 64)
	if player == nil {
		async.Job(func() {
			stdin := bufio.NewReader(os.Stdin)
			buf := make([]byte, 4096)
			for {
				n, err := stdin.Read(buf)
				if n > 0 {
					outQueue <- enc.Encode(buf[:n])
				}
				if err != nil {
					if err != io.EOF {
						fmt.Fprintf(os.Stderr, "live: reading stdin: %v\n", err)
					}
					return
				}
			}
		})
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	var pending []float64
	var recorder *device.Recorder
	if *recordPath != "" {
		recorder = &device.Recorder{}
	}

	d := &device.ASIOMono{
		DeviceName: cfg.Device.Name,
		SampleRate: cfg.Device.SampleRate,
	}

	d.Start(func(in, out []int32) {
		if recorder != nil {
			recorder.Record(in)
		}

		for _, x := range in {
			fsample := pcm.Int32ToFloat64(x)
			raw := pcm.ToDecoderSample(fsample)
			if byteVal := dec.Decode(raw); byteVal >= 0 {
				stdout.WriteByte(byte(byteVal))
				stdout.Flush()
			}
		}

		if player != nil {
			player.Play(out)
			return
		}

		for i := range out {
			if len(pending) == 0 {
				select {
				case next := <-outQueue:
					pending = next
				default:
				}
			}
			if len(pending) > 0 {
				out[i] = pcm.Float64ToInt32(pending[0])
				pending = pending[1:]
			} else {
				out[i] = 0
			}
		}
	})
	defer d.Stop()

	fmt.Fprintln(os.Stderr, "live: running, press Enter to stop")
	<-async.EnterKey()

	if recorder != nil {
		if err := pcm.WriteBinary(*recordPath, recorder.Track); err != nil {
			fmt.Fprintf(os.Stderr, "live: %v\n", err)
		}
	}
}

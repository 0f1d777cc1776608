// Command decode reads an audio sample stream from stdin (optionally
// WAV-wrapped, spec §6.2) and writes the decoded byte stream to stdout.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"tonewire/internal/config"
	"tonewire/internal/decoder"
	"tonewire/pkg/metrics"
	"tonewire/pkg/pcm"
)

func main() {
	var (
		configPath  = pflag.StringP("config", "c", "", "path to a YAML config file")
		verbose     = pflag.BoolP("verbose", "v", false, "log state transitions to stderr")
		withMetrics = pflag.Bool("metrics", false, "serve Prometheus metrics while decoding (see cmd/monitor for a standalone server)")
		help        = pflag.BoolP("help", "h", false, "display this help text")
	)
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "decode: reads audio samples from stdin, writes decoded bytes to stdout")
		pflag.PrintDefaults()
		return
	}

	if *configPath != "" {
		if _, err := config.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "decode: %v\n", err)
			os.Exit(1)
		}
	}

	dec := decoder.New()
	if *withMetrics {
		dec.WithMetrics(metrics.NewDecoder())
	}

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if peeked, err := in.Peek(4); err == nil {
		if skip := pcm.DetectHeader(peeked); skip > 0 {
			if _, err := in.Discard(skip); err != nil {
				fmt.Fprintf(os.Stderr, "decode: skipping WAV header: %v\n", err)
				os.Exit(1)
			}
		}
	}

	sample := make([]byte, 4)
	feed := func(buf []byte) (int, bool) {
		x := pcm.ReadSample(buf)
		raw := pcm.ToDecoderSample(x)
		ret := dec.Decode(raw)
		return ret, ret == decoder.RetEof
	}

	for {
		if _, err := readFull(in, sample); err != nil {
			return
		}
		ret, eof := feed(sample)
		if *verbose {
			fmt.Fprintf(os.Stderr, "decode: state=%s\n", dec.State())
		}
		if ret >= 0 {
			out.WriteByte(byte(ret))
		}
		if eof {
			return
		}
	}
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

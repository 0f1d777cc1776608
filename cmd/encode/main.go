// Command encode reads bytes from stdin and writes the corresponding
// audio sample stream to stdout (spec §6.1, §6.2 Pipe transport).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"tonewire/internal/config"
	"tonewire/internal/encoder"
	"tonewire/pkg/pcm"
)

func main() {
	var (
		configPath  = pflag.StringP("config", "c", "", "path to a YAML config file")
		sampleCount = pflag.IntP("sample-count", "n", 0, "samples per symbol (0: use config/default)")
		rawOutput   = pflag.BoolP("raw", "r", false, "omit the WAV header, emit raw 32-bit PCM only")
		help        = pflag.BoolP("help", "h", false, "display this help text")
	)
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "encode: reads bytes from stdin, writes audio samples to stdout")
		pflag.PrintDefaults()
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	enc := encoder.New()
	if *sampleCount != 0 {
		enc.SampleCount = *sampleCount
	} else if cfg.Encoder.SampleCount != 0 {
		enc.SampleCount = cfg.Encoder.SampleCount
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: reading stdin: %v\n", err)
		os.Exit(1)
	}

	samples := enc.Encode(data)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if !*rawOutput {
		if _, err := out.Write(pcm.WriteHeader(nil)); err != nil {
			fmt.Fprintf(os.Stderr, "encode: writing header: %v\n", err)
			os.Exit(1)
		}
	}

	buf := make([]byte, 0, 4)
	for _, s := range samples {
		buf = pcm.WriteSample(buf[:0], s)
		if _, err := out.Write(buf); err != nil {
			fmt.Fprintf(os.Stderr, "encode: writing samples: %v\n", err)
			os.Exit(1)
		}
	}
}

// Command monitor decodes stdin like cmd/decode, but additionally serves
// Prometheus metrics over HTTP while it runs (spec §6.4), following the
// promhttp.Handler wiring used throughout madpsy-ka9q_ubersdr.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"tonewire/internal/config"
	"tonewire/internal/decoder"
	"tonewire/pkg/metrics"
	"tonewire/pkg/pcm"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "path to a YAML config file")
		listenAddr = pflag.StringP("listen", "l", "", "address to serve /metrics on (overrides config)")
		help       = pflag.BoolP("help", "h", false, "display this help text")
	)
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "monitor: decodes stdin to stdout while serving /metrics")
		pflag.PrintDefaults()
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "monitor: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	addr := cfg.Monitor.ListenAddr
	if *listenAddr != "" {
		addr = *listenAddr
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		fmt.Fprintf(os.Stderr, "monitor: serving /metrics on %s\n", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			fmt.Fprintf(os.Stderr, "monitor: http server: %v\n", err)
		}
	}()

	dec := decoder.New().WithMetrics(metrics.NewDecoder())

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if peeked, err := in.Peek(4); err == nil {
		if skip := pcm.DetectHeader(peeked); skip > 0 {
			in.Discard(skip)
		}
	}

	sample := make([]byte, 4)
	for {
		if _, err := readFull(in, sample); err != nil {
			return
		}
		x := pcm.ReadSample(sample)
		raw := pcm.ToDecoderSample(x)
		ret := dec.Decode(raw)
		if ret >= 0 {
			out.WriteByte(byte(ret))
		}
		if ret == decoder.RetEof {
			out.Flush()
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

// Command hexcat decodes hex strings and writes the bytes they describe.
//
// Each argument, or each line of standard input when there are no arguments,
// is a string of hex digit pairs. The decoded values are written in order,
// either raw or rendered back as hex text.
//
//	hexcat -mode hex 0aff 00      # prints "0A FF 00 "
//	echo 48656c6c6f | hexcat      # prints "Hello"
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/oy3o/serial"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexcat:", err)
		os.Exit(2)
	}
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "output mode: raw, hex or escape")
	flag.IntVar(&cfg.SinkCapacity, "sink-capacity", cfg.SinkCapacity, "buffer size for hex and escape output")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	log := newLogger(os.Stderr, cfg.Debug)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs, err = readLines(os.Stdin)
		if err != nil {
			log.Error("read stdin", "error", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, log, os.Stdout, inputs); err != nil {
		log.Error("hexcat failed", "error", err)
		os.Exit(1)
	}
}

// run decodes every input and writes the joined result to out.
func run(cfg *Config, log *slog.Logger, out io.Writer, inputs []string) error {
	parts := make([]serial.Serializable, 0, len(inputs))
	for i, in := range inputs {
		v, err := serial.ForHexString(in)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		log.Debug("decoded input", "index", i, "bytes", len(in)/2)
		parts = append(parts, v)
	}
	value := serial.Of(parts...)

	if cfg.Mode == ModeRaw {
		bw := bufio.NewWriter(out)
		n, err := serial.WriteTo(bw, value)
		log.Debug("wrote raw output", "bytes", n)
		return err
	}

	pool := serial.NewSinkPool(cfg.SinkCapacity)
	r := serial.NewRenderer(pool)
	var text string
	var err error
	if cfg.Mode == ModeHex {
		text, err = r.HexString(value)
	} else {
		text, err = r.HexEscapeString(value)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text+"\n")
	return err
}

// readLines returns the non-blank lines of r with surrounding space removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

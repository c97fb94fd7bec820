// Command amqptab encodes a YAML field-table document into AMQP 0-9-1
// wire bytes.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dadrian/amqpwire"
	intr "github.com/dadrian/amqpwire/internal"
	"github.com/dadrian/amqpwire/tabledoc"
)

func main() {
	in := flag.String("in", "-", "input .yaml file (or - for stdin)")
	out := flag.String("out", "-", "output file (or - for stdout)")
	hexOut := flag.Bool("hex", false, "write hex-encoded bytes instead of binary")
	validate := flag.Bool("validate", false, "validate only; parse and encode without writing output")
	info := flag.Bool("info", false, "print a brief table summary (no output bytes)")
	fullTables := flag.Bool("full-tables", false, "keep encoding fields that follow a nested table")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	if err := run(log, *in, *out, *hexOut, *validate, *info, *fullTables); err != nil {
		log.Error("amqptab failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func run(log *zap.Logger, in, out string, hexOut, validate, info, fullTables bool) error {
	var inBytes []byte
	var err error
	if in == "-" {
		inBytes, err = io.ReadAll(os.Stdin)
	} else {
		inBytes, err = os.ReadFile(in)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Debug("read input", zap.String("path", in), zap.Int("bytes", len(inBytes)))

	var opts []amqpwire.Option
	if fullTables {
		opts = append(opts, amqpwire.WithFullTables())
	}
	outBytes, err := tabledoc.EncodeBytes(inBytes, opts...)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	log.Debug("encoded table", zap.Int("bytes", len(outBytes)), zap.Bool("full_tables", fullTables))

	if info {
		return printInfo(os.Stdout, outBytes)
	}
	if validate {
		return nil
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if hexOut {
		if _, err := hex.NewEncoder(w).Write(outBytes); err != nil {
			return fmt.Errorf("write hex: %w", err)
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
	_, err = w.Write(outBytes)
	return err
}

// printInfo writes the table length and one line per field, descending
// into nested tables.
func printInfo(w io.Writer, b []byte) error {
	entries, _, err := intr.ScanTable(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Length: %d\n", intr.U32(b))
	return printEntries(w, entries, "")
}

func printEntries(w io.Writer, entries []intr.Entry, indent string) error {
	for _, e := range entries {
		fmt.Fprintf(w, "%s%s: %v (%d bytes)\n", indent, e.Name, amqpwire.FieldType(e.Tag), len(e.Payload))
		if e.Tag != intr.TagTable {
			continue
		}
		nested, _, err := intr.ScanTable(e.Payload)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		if err := printEntries(w, nested, indent+"  "); err != nil {
			return err
		}
	}
	return nil
}

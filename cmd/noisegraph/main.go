// Command noisegraph builds a noise module graph from YAML, samples it over
// the configured window and writes the samples as CSV.
//
// Usage:
//
//	noisegraph [-config graph.yaml] [-out samples.csv] [-seed N] [-dump] [-v]
//
// Without -config the embedded example graph is used; without -out the CSV
// goes to stdout. Logs are written to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/lvnoise/graphconf"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// sample is one CSV row: the surface coordinates of a cell and its value.
type sample struct {
	X     float64 `csv:"x"`
	Z     float64 `csv:"z"`
	Value float64 `csv:"value"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "noisegraph: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("noisegraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "graph YAML file (default: embedded example)")
	outPath := fs.String("out", "", "CSV output file (default: stdout)")
	seed := fs.Int("seed", 0, "override the document seed")
	dump := fs.Bool("dump", false, "print the effective configuration as YAML and exit")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// 1) Load.
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = int32(*seed)
		}
	})
	logger.Info("config loaded", "source", sourceName(*configPath), "modules", len(cfg.Modules), "root", cfg.Root, "seed", cfg.Seed)

	if *dump {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)

		return err
	}

	// 2) Build.
	g, err := cfg.Build()
	if err != nil {
		return err
	}
	kind, _ := module.KindOf(g.Root)
	logger.Debug("graph built", "root_kind", kind.String(), "nodes", len(g.Nodes))

	// 3) Sample.
	sc := g.SampleConfig()
	m, err := g.Sample(noisemap.WithRowCallback(func(row int) {
		logger.Debug("row sampled", "row", row, "of", sc.Height)
	}))
	if err != nil {
		return err
	}
	st := m.Stats()
	logger.Info("sampled", "shape", sc.Shape, "width", m.Width(), "height", m.Height(),
		"min", st.Min, "max", st.Max, "mean", st.Mean, "stddev", st.StdDev)

	// 4) Write.
	rows := samples(m, sc)
	if *outPath == "" {
		if err := gocsv.Marshal(rows, stdout); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	} else {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *outPath, err)
		}
		if err := writeAndClose(f, rows); err != nil {
			return fmt.Errorf("writing %s: %w", *outPath, err)
		}
	}
	logger.Info("samples written", "rows", len(rows), "out", sourceName(*outPath))

	return nil
}

// writeAndClose marshals rows into w and closes it. A close error is
// reported, since it may be the first sign of a failed flush.
func writeAndClose(w io.WriteCloser, rows []*sample) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		_ = w.Close()

		return err
	}

	return w.Close()
}

func loadConfig(path string) (*graphconf.Config, error) {
	if path == "" {
		return graphconf.Default(), nil
	}

	return graphconf.LoadFile(path)
}

// samples flattens m into CSV rows, mapping each cell back to the surface
// coordinates it was sampled at.
func samples(m *noisemap.Map, sc graphconf.SampleConfig) []*sample {
	b := sc.Bounds
	du := (b[1] - b[0]) / float64(m.Width())
	dv := (b[3] - b[2]) / float64(m.Height())

	out := make([]*sample, 0, m.Width()*m.Height())
	for row := 0; row < m.Height(); row++ {
		values := m.Row(row)
		for col, v := range values {
			out = append(out, &sample{
				X:     b[0] + float64(col)*du,
				Z:     b[2] + float64(row)*dv,
				Value: v,
			})
		}
	}

	return out
}

func sourceName(path string) string {
	if path == "" {
		return "default"
	}

	return path
}

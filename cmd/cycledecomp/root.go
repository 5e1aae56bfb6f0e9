// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycledecomp/builder"
	"github.com/katalvlaran/cycledecomp/core"
	"github.com/katalvlaran/cycledecomp/decompose"
	"github.com/katalvlaran/cycledecomp/graphfile"
	"github.com/katalvlaran/cycledecomp/schedule"
)

// errNoInput is returned when neither --file nor --generate is given.
var errNoInput = errors.New("one of --file or --generate is required")

type rootFlags struct {
	file        string
	generate    string
	divisor     int
	strict      bool
	requireFull bool
	watch       bool
	metricsFile string
	stepLimit   int
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags
	log := logrus.New()
	log.SetOutput(stderr)

	cmd := &cobra.Command{
		Use:          "cycledecomp",
		Short:        "Decompose an undirected graph into edge-disjoint cycles",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			r := &runner{
				flags:   flags,
				out:     stdout,
				log:     log,
				reg:     prometheus.NewRegistry(),
				divisor: flags.divisor,
			}
			r.metrics = decompose.NewMetrics(r.reg)
			r.divisorSet = cmd.Flags().Changed("divisor")

			return r.run(cmd.Context())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&flags.file, "file", "f", "", "path to YAML graph file")
	fs.StringVarP(&flags.generate, "generate", "g", "", "generate a graph instead: cycle:n, complete:n, wheel:n, path:n, petersen, fixture")
	fs.IntVar(&flags.divisor, "divisor", schedule.DefaultDivisor, "edge-count divisor for the minimum cycle size (overrides the file)")
	fs.BoolVar(&flags.strict, "strict", false, "reject edges whose endpoints are not listed as vertices")
	fs.BoolVar(&flags.requireFull, "require-full", false, "fail when edges are left uncovered")
	fs.BoolVar(&flags.watch, "watch", false, "re-run whenever the graph file changes")
	fs.StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file after each run")
	fs.IntVar(&flags.stepLimit, "step-limit", 0, "abandon a single search after this many expansions (0 = unlimited)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	cmd.MarkFlagsMutuallyExclusive("file", "generate")
	cmd.MarkFlagsMutuallyExclusive("generate", "watch")

	return cmd
}

// runner carries one invocation's state.
type runner struct {
	flags      rootFlags
	out        io.Writer
	log        *logrus.Logger
	reg        *prometheus.Registry
	metrics    *decompose.Metrics
	divisor    int
	divisorSet bool
}

func (r *runner) run(ctx context.Context) error {
	if r.flags.generate != "" {
		con, err := builder.Parse(r.flags.generate)
		if err != nil {
			return err
		}
		g, err := builder.BuildGraph(con)
		if err != nil {
			return err
		}

		return r.decompose(ctx, g, r.divisor)
	}
	if r.flags.file == "" {
		return errNoInput
	}

	loader, err := graphfile.NewLoader(r.flags.file, r.log)
	if err != nil {
		return err
	}
	if err = r.decomposeFile(ctx, loader.File()); err != nil && !r.flags.watch {
		return err
	}
	if !r.flags.watch {
		return nil
	}

	loader.OnChange(func(f *graphfile.File) {
		if err := r.decomposeFile(ctx, f); err != nil {
			r.log.WithError(err).Error("decomposition failed")
		}
	})
	stop, err := loader.Watch()
	if err != nil {
		return err
	}
	defer stop()
	r.log.WithField("file", r.flags.file).Info("watching for changes")
	<-ctx.Done()

	return nil
}

func (r *runner) decomposeFile(ctx context.Context, f *graphfile.File) error {
	fc := *f
	if r.flags.strict {
		fc.Strict = true
	}
	g, err := fc.Graph()
	if err != nil {
		return err
	}
	divisor := fc.Divisor()
	if r.divisorSet {
		divisor = r.divisor
	}

	return r.decompose(ctx, g, divisor)
}

func (r *runner) decompose(ctx context.Context, g *core.Graph, divisor int) error {
	opts := []decompose.Option{
		decompose.WithContext(ctx),
		decompose.WithDivisor(divisor),
		decompose.WithLogger(r.log),
		decompose.WithMetrics(r.metrics),
		decompose.WithStepLimit(r.flags.stepLimit),
		decompose.WithOnCycle(func(c decompose.Cycle) error {
			_, err := fmt.Fprintf(r.out, "cycle %d (L=%d): %v\n", c.Index, c.Length, c.Path)
			return err
		}),
	}
	if r.flags.requireFull {
		opts = append(opts, decompose.WithRequireFullCover())
	}

	fmt.Fprintf(r.out, "adjacency:\n%s", g)
	d, err := decompose.New(g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "queue: %v\n", d.Pending())

	res, runErr := d.Run()
	if res != nil {
		fmt.Fprintf(r.out, "covered %d/%d edges (%.1f%%), skipped %v, remaining %v\n",
			res.CoveredEdges, res.TotalEdges, 100*res.Coverage(), res.Skipped, res.Remaining)
	}
	if r.flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(r.flags.metricsFile, r.reg); err != nil {
			r.log.WithError(err).Warn("metrics export failed")
		}
	}

	return runErr
}

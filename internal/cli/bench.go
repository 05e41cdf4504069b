package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlpath/bench"
	"github.com/katalvlaran/lvlpath/config"
	"github.com/katalvlaran/lvlpath/metrics"
	"github.com/katalvlaran/lvlpath/report"
)

// reportFile is the JSON report name inside the output directory.
const reportFile = "report.json"

// benchFlags are the bench section flags shared by bench and search.
type benchFlags struct {
	configPath    string
	size          int
	density       float64
	seed          int64
	start, end    int
	algorithms    []string
	timeout       time.Duration
	maxCandidates int
}

func (f *benchFlags) register(fs *pflag.FlagSet) {
	d := bench.DefaultConfig()
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	fs.IntVar(&f.size, "size", d.Size, "vertex count of the random graph")
	fs.Float64Var(&f.density, "density", d.Density, "edge probability of the random graph")
	fs.Int64Var(&f.seed, "seed", d.Seed, "random seed")
	fs.IntVar(&f.start, "start", d.Start, "start vertex")
	fs.IntVar(&f.end, "end", d.End, "end vertex")
	fs.StringSliceVar(&f.algorithms, "algo", d.Algorithms, "algorithms to run")
	fs.DurationVar(&f.timeout, "timeout", d.Timeout, "per-call time limit (0 = none)")
	fs.IntVar(&f.maxCandidates, "max-candidates", d.MaxCandidates, "candidate cap of deviation search")
}

// overrides returns the config keys of every flag set on the command line.
func (f *benchFlags) overrides(fs *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	set := func(flag, key string, v any) {
		if fs.Changed(flag) {
			out[key] = v
		}
	}
	set("size", "bench.size", f.size)
	set("density", "bench.density", f.density)
	set("seed", "bench.seed", f.seed)
	set("start", "bench.start", f.start)
	set("end", "bench.end", f.end)
	set("algo", "bench.algorithms", f.algorithms)
	set("timeout", "bench.timeout", f.timeout)
	set("max-candidates", "bench.max_candidates", f.maxCandidates)

	return out
}

func (c *CLI) benchCommand() *cobra.Command {
	var (
		shared      benchFlags
		minLength   int
		maxLength   int
		runs        int
		warmUp      int
		outDir      string
		metricsFile string
		writeJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the algorithms on seeded random graphs",
		Long: `Fill a random graph, time every algorithm for each length in [min-length, max-length],
verify every returned path and write one "<algorithm>_times" file per algorithm.`,
		Example: `  lvlpath bench
  lvlpath bench --size 300 --max-length 40 --runs 5 --out target
  lvlpath bench -c bench.toml --json --metrics-file lvlpath.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			overrides := shared.overrides(fs)
			set := func(flag, key string, v any) {
				if fs.Changed(flag) {
					overrides[key] = v
				}
			}
			set("min-length", "bench.min_length", minLength)
			set("max-length", "bench.max_length", maxLength)
			set("runs", "bench.runs", runs)
			set("warm-up", "bench.warm_up", warmUp)
			set("out", "output.dir", outDir)
			set("metrics-file", "output.metrics_file", metricsFile)
			set("json", "output.json", writeJSON)

			cfg, closeLog, err := c.loadConfig(shared.configPath, overrides)
			if err != nil {
				return err
			}
			defer closeLog()

			return runBench(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	d := bench.DefaultConfig()
	fs := cmd.Flags()
	shared.register(fs)
	fs.IntVar(&minLength, "min-length", d.MinLength, "shortest target length, in vertices")
	fs.IntVar(&maxLength, "max-length", d.MaxLength, "longest target length, in vertices")
	fs.IntVar(&runs, "runs", d.Runs, "rounds per length")
	fs.IntVar(&warmUp, "warm-up", d.WarmUp, "warm-up iterations")
	fs.StringVarP(&outDir, "out", "o", "target", "output directory")
	fs.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.BoolVar(&writeJSON, "json", false, "also write "+reportFile)

	return cmd
}

func runBench(ctx context.Context, w io.Writer, cfg *config.Config) error {
	logger := loggerFromContext(ctx)

	var m *metrics.Metrics
	if cfg.Output.MetricsFile != "" {
		m = metrics.New(prometheus.NewRegistry())
	}
	runner, err := bench.NewRunner(cfg.Bench, logger, m)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	rep, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Measured %d lengths", len(rep.Rows)))

	paths, err := report.WriteTimes(cfg.Output.Dir, rep)
	if err != nil {
		return err
	}
	if cfg.Output.JSON {
		path := filepath.Join(cfg.Output.Dir, reportFile)
		if err := report.WriteJSON(path, rep); err != nil {
			return err
		}
		paths = append(paths, path)
	}
	if cfg.Output.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		paths = append(paths, cfg.Output.MetricsFile)
	}

	fmt.Fprintln(w, StyleTitle.Render("lvlpath bench"))
	printKeyValue(w, "run", rep.RunID.String())
	printKeyValue(w, "graph", fmt.Sprintf("G(%d, %g), %d → %d", cfg.Bench.Size, cfg.Bench.Density, cfg.Bench.Start, cfg.Bench.End))
	printKeyValue(w, "elapsed", rep.FinishedAt.Sub(rep.StartedAt).Round(time.Millisecond).String())
	fmt.Fprintln(w)
	printSummary(w, rep)
	fmt.Fprintln(w)
	printSuccess(w, "Wrote %d files", len(paths))
	for _, path := range paths {
		printFile(w, path)
	}

	return nil
}

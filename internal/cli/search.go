package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/bench"
	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/config"
	"github.com/katalvlaran/lvlpath/converters"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
	"github.com/katalvlaran/lvlpath/verify"
)

// topologies maps --topology values to graph constructors over the configured size.
var topologies = map[string]func(bc bench.Config) builder.Constructor{
	"random":   func(bc bench.Config) builder.Constructor { return builder.Random(bc.Density, bench.FillSeed(bc.Seed)) },
	"complete": func(bc bench.Config) builder.Constructor { return builder.Complete(bc.Size) },
	"cycle":    func(bc bench.Config) builder.Constructor { return builder.Cycle(bc.Size) },
	"path":     func(bc bench.Config) builder.Constructor { return builder.Path(bc.Size) },
	"star":     func(bc bench.Config) builder.Constructor { return builder.Star(bc.Size) },
	"wheel":    func(bc bench.Config) builder.Constructor { return builder.Wheel(bc.Size) },
}

func topologyNames() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (c *CLI) searchCommand() *cobra.Command {
	var (
		shared   benchFlags
		length   int
		maxSteps int
		topology string
		dotPath  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path of exact length on one random graph",
		Long: `Build one G(size, density) graph from the seed, run each selected algorithm
for the requested vertex count and print the verified path, or report that none was found.
The random graph is the first one "lvlpath bench" measures with the same seed.`,
		Example: `  lvlpath search --length 12
  lvlpath search --size 40 --density 0.2 --length 30 --algo fls --max-steps 1000000
  lvlpath search -t wheel --size 8 --length 5 --dot wheel.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := c.loadConfig(shared.configPath, shared.overrides(cmd.Flags()))
			if err != nil {
				return err
			}
			defer closeLog()

			return runSearch(cmd.Context(), cmd.OutOrStdout(), cfg, topology, dotPath, length, maxSteps)
		},
	}

	fs := cmd.Flags()
	shared.register(fs)
	fs.IntVarP(&length, "length", "l", 0, "path length, in vertices")
	fs.IntVar(&maxSteps, "max-steps", 0, "step budget per algorithm (0 = unlimited)")
	fs.StringVarP(&topology, "topology", "t", "random", "graph shape: "+strings.Join(topologyNames(), ", "))
	fs.StringVar(&dotPath, "dot", "", "also write the searched graph in Graphviz DOT to this file")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

// buildSearchGraph builds the graph named by topology over the configured size.
func buildSearchGraph(bc bench.Config, topology string) (*core.Graph, error) {
	shape, ok := topologies[topology]
	if !ok {
		return nil, fmt.Errorf("unknown topology %q (want one of %s)", topology, strings.Join(topologyNames(), ", "))
	}

	return builder.BuildGraph(bc.Size, shape(bc))
}

// writeGraphDOT writes g to path as a DOT graph called name.
func writeGraphDOT(g core.Reader, name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	if err := converters.WriteDOT(f, g, name); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func runSearch(ctx context.Context, w io.Writer, cfg *config.Config, topology, dotPath string, length, maxSteps int) error {
	logger := loggerFromContext(ctx)
	bc := cfg.Bench

	g, err := buildSearchGraph(bc, topology)
	if err != nil {
		return err
	}
	logger.Debug("graph ready", "topology", topology, "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", bc.Seed)
	if dotPath != "" {
		if err := writeGraphDOT(g, topology, dotPath); err != nil {
			return err
		}
		logger.Debug("graph written", "dot", dotPath)
	}

	if topology == "random" {
		printInfo(w, "G(%d, %g) seed %d, %d edges; %d → %d, %d vertices",
			bc.Size, bc.Density, bc.Seed, g.EdgeCount(), bc.Start, bc.End, length)
	} else {
		printInfo(w, "%s(%d), %d edges; %d → %d, %d vertices",
			topology, bc.Size, g.EdgeCount(), bc.Start, bc.End, length)
	}

	for _, name := range bc.Algorithms {
		run, err := search.Lookup(name)
		if err != nil {
			return err
		}
		res, elapsed, err := timedSearch(ctx, run, g, bc.Start, bc.End, length,
			bc.Timeout, maxSteps, bc.MaxCandidates)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !errors.Is(err, search.ErrBudgetExceeded) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			printError(w, "%s %s", StyleTitle.Render(name), StyleDim.Render(fmt.Sprintf("gave up: %v (%s, %d steps)", err, elapsed, res.Steps)))
		case res.Found:
			if err := verify.Path(g, res.Path, bc.Start, bc.End, length); err != nil {
				return fmt.Errorf("%s returned an invalid path: %w", name, err)
			}
			printSuccess(w, "%s %s", StyleTitle.Render(name), StyleDim.Render(fmt.Sprintf("(%s, %d steps)", elapsed, res.Steps)))
			fmt.Fprintln(w, "  "+formatPath(res.Path))
		default:
			reason := "no path"
			if res.Capped {
				reason = "candidate cap reached"
			}
			printError(w, "%s %s", StyleTitle.Render(name), StyleDim.Render(fmt.Sprintf("%s (%s, %d steps)", reason, elapsed, res.Steps)))
		}
	}

	return nil
}

func timedSearch(ctx context.Context, run search.Func, g core.Reader, start, end, length int,
	timeout time.Duration, maxSteps, maxCandidates int) (search.Result, time.Duration, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	begin := time.Now()
	res, err := run(g, start, end, length,
		search.WithContext(ctx),
		search.WithMaxSteps(maxSteps),
		search.WithMaxCandidates(maxCandidates),
	)

	return res, time.Since(begin).Round(time.Microsecond), err
}

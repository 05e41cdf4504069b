package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlpath/core"
	_ "github.com/katalvlaran/lvlpath/fls" // registers "fls"
	"github.com/katalvlaran/lvlpath/metrics"
	"github.com/katalvlaran/lvlpath/search"
	"github.com/katalvlaran/lvlpath/verify"
	_ "github.com/katalvlaran/lvlpath/yen" // registers "yen"
)

// Runner owns the benchmark graph and drives every round of a Config.
// A Runner is not safe for concurrent use.
type Runner struct {
	cfg     Config
	logger  *log.Logger
	metrics *metrics.Metrics
	algos   []algorithm
	graph   *core.Graph
}

type algorithm struct {
	name string
	run  search.Func
}

// NewRunner validates cfg, resolves its algorithms and allocates the graph.
// A nil logger discards output; nil metrics record nothing.
func NewRunner(cfg Config, logger *log.Logger, m *metrics.Metrics) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algos := make([]algorithm, 0, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		fn, err := search.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		algos = append(algos, algorithm{name: name, run: fn})
	}
	g, err := core.New(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{cfg: cfg, logger: logger, metrics: m, algos: algos, graph: g}, nil
}

// Run performs the warm-up and then measures every length in
// [MinLength, MaxLength]. On failure it returns the rows measured so far,
// stamped with FinishedAt, together with the error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Config:    r.cfg,
		Rows:      make([]Row, 0, r.cfg.MaxLength-r.cfg.MinLength+1),
	}
	r.logger.Info("benchmark started",
		"run", rep.RunID,
		"size", r.cfg.Size,
		"density", r.cfg.Density,
		"lengths", fmt.Sprintf("%d..%d", r.cfg.MinLength, r.cfg.MaxLength),
		"algorithms", r.cfg.Algorithms,
	)

	fail := func(err error) (*Report, error) {
		rep.FinishedAt = time.Now().UTC()
		r.logger.Warn("benchmark aborted", "run", rep.RunID, "rows", len(rep.Rows), "err", err)

		return rep, err
	}

	if err := r.warmUp(ctx); err != nil {
		return fail(err)
	}

	fillRNG := streamRNG(r.cfg.Seed, streamFill)
	orderRNG := streamRNG(r.cfg.Seed, streamOrder)
	for length := r.cfg.MinLength; length <= r.cfg.MaxLength; length++ {
		row, err := r.measure(ctx, length, fillRNG, orderRNG)
		if err != nil {
			return fail(err)
		}
		rep.Rows = append(rep.Rows, row)
		for _, a := range r.algos {
			st := row.Stats[a.name]
			r.logger.Debug("length measured",
				"length", length, "algorithm", a.name,
				"mean", st.Mean, "found", st.Found, "capped", st.Capped, "timed_out", st.TimedOut)
		}
	}

	rep.FinishedAt = time.Now().UTC()
	r.logger.Info("benchmark finished", "run", rep.RunID, "elapsed", rep.FinishedAt.Sub(rep.StartedAt))

	return rep, nil
}

// warmUp runs every algorithm at MinLength on graphs of increasing density.
// Results are discarded; only cancellation and broken paths stop it.
func (r *Runner) warmUp(ctx context.Context) error {
	if r.cfg.WarmUp < 2 {
		return nil
	}
	rng := streamRNG(r.cfg.Seed, streamWarm)
	r.logger.Debug("warm-up", "iterations", r.cfg.WarmUp-1)
	for i := 1; i < r.cfg.WarmUp; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("bench: warm-up: %w", err)
		}
		density := r.cfg.Density * float64(i) / float64(r.cfg.WarmUp)
		if err := r.graph.FillUndirected(density, rng); err != nil {
			return fmt.Errorf("bench: warm-up fill: %w", err)
		}
		for _, a := range r.algos {
			if _, err := r.call(ctx, a, r.cfg.MinLength, false); err != nil {
				return err
			}
		}
		r.graph.Clear()
	}

	return nil
}

// measure runs cfg.Runs rounds at one length: fill, shuffled calls, clear.
func (r *Runner) measure(ctx context.Context, length int, fillRNG, orderRNG *rand.Rand) (Row, error) {
	samples := make(map[string][]sample, len(r.algos))
	order := make([]int, len(r.algos))
	for round := 0; round < r.cfg.Runs; round++ {
		if err := ctx.Err(); err != nil {
			return Row{}, fmt.Errorf("bench: length %d round %d: %w", length, round, err)
		}
		if err := r.graph.FillUndirected(r.cfg.Density, fillRNG); err != nil {
			return Row{}, fmt.Errorf("bench: fill: %w", err)
		}
		for i := range order {
			order[i] = i
		}
		orderRNG.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, idx := range order {
			a := r.algos[idx]
			s, err := r.call(ctx, a, length, true)
			if err != nil {
				return Row{}, err
			}
			samples[a.name] = append(samples[a.name], s)
		}
		r.graph.Clear()
	}

	row := Row{Length: length, Stats: make(map[string]Stat, len(r.algos))}
	for _, a := range r.algos {
		row.Stats[a.name] = summarize(samples[a.name])
	}

	return row, nil
}

// call times one search. Timeouts and budget exhaustion count as "not found";
// cancellation of ctx itself and invalid paths are errors.
func (r *Runner) call(ctx context.Context, a algorithm, length int, record bool) (sample, error) {
	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if r.cfg.Timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
	}
	defer cancel()

	begin := time.Now()
	res, err := a.run(r.graph, r.cfg.Start, r.cfg.End, length,
		search.WithContext(callCtx),
		search.WithMaxCandidates(r.cfg.MaxCandidates),
	)
	elapsed := time.Since(begin)

	s := sample{steps: res.Steps}
	outcome := metrics.OutcomeNotFound
	switch {
	case err == nil && res.Found:
		if verr := verify.Path(r.graph, res.Path, r.cfg.Start, r.cfg.End, length); verr != nil {
			return s, fmt.Errorf("bench: %s returned an invalid path at length %d: %w", a.name, length, verr)
		}
		s.found, s.seconds = true, elapsed.Seconds()
		outcome = metrics.OutcomeFound
	case err == nil && res.Capped:
		s.capped = true
		outcome = metrics.OutcomeCapped
	case err == nil:
	case ctx.Err() == nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, search.ErrBudgetExceeded)):
		s.timedOut = true
		outcome = metrics.OutcomeTimeout
	default:
		return s, fmt.Errorf("bench: %s at length %d: %w", a.name, length, err)
	}
	if record {
		r.metrics.Observe(a.name, outcome, elapsed, len(res.Path))
	}

	return s, nil
}

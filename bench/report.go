package bench

import (
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of one Runner.Run.
type Report struct {
	RunID      uuid.UUID `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Config     Config    `json:"config"`
	Rows       []Row     `json:"rows"`
}

// Row aggregates every round of one target length.
type Row struct {
	Length int             `json:"length"`
	Stats  map[string]Stat `json:"stats"`
}

// Stat summarises the rounds of one algorithm at one length.
type Stat struct {
	// Mean is the average elapsed seconds over all rounds, counting rounds
	// without a path as zero.
	Mean float64 `json:"mean"`

	// MeanFound averages only the rounds that found a path; zero when none did.
	MeanFound float64 `json:"mean_found"`

	Found    int `json:"found"`
	Capped   int `json:"capped"`
	TimedOut int `json:"timed_out"`
	Steps    int `json:"steps"`
}

// Means returns the per-length Mean of algorithm, one entry per row.
func (r *Report) Means(algorithm string) []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Stats[algorithm].Mean
	}

	return out
}

// sample is one timed call.
type sample struct {
	seconds  float64
	found    bool
	capped   bool
	timedOut bool
	steps    int
}

// summarize folds the samples of one algorithm at one length into a Stat.
func summarize(samples []sample) Stat {
	var (
		st         Stat
		total      float64
		totalFound float64
	)
	for _, s := range samples {
		st.Steps += s.steps
		switch {
		case s.found:
			st.Found++
			total += s.seconds
			totalFound += s.seconds
		case s.capped:
			st.Capped++
		case s.timedOut:
			st.TimedOut++
		}
	}
	if len(samples) > 0 {
		st.Mean = total / float64(len(samples))
	}
	if st.Found > 0 {
		st.MeanFound = totalFound / float64(st.Found)
	}

	return st
}

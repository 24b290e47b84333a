// Package batch perceives many molecules concurrently and reports per-line
// results.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/atomtype"
	"github.com/katalvlaran/lvchem/internal/logging"
	"github.com/katalvlaran/lvchem/internal/metrics"
	"github.com/katalvlaran/lvchem/smiles"
)

// ErrNoDetector is returned by NewRunner for a nil detector.
var ErrNoDetector = errors.New("batch: nil detector")

// Input is one molecule of a batch.
type Input struct {
	// Line is the 1-based source line, or the position for generated input.
	Line   int
	SMILES string
	Title  string
}

// Result is the outcome for one Input. Err is set when parsing, typing or
// perception failed; the other fields are then zero.
type Result struct {
	Input
	Atoms    []int
	Bonds    []int
	Rings    int
	Duration time.Duration
	Err      error
}

// Report collects the results of one Run in input order.
type Report struct {
	RunID   uuid.UUID
	Model   string
	Finder  string
	Results []Result
	Failed  int
}

// Runner perceives inputs with a shared Detector.
type Runner struct {
	detector *aromaticity.Detector
	workers  int
	metrics  *metrics.Registry
	log      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds concurrency; values below one are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithMetrics records every result into reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(r *Runner) { r.metrics = reg }
}

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner returns a Runner with one worker unless configured otherwise.
func NewRunner(d *aromaticity.Detector, opts ...Option) (*Runner, error) {
	if d == nil {
		return nil, ErrNoDetector
	}
	r := &Runner{detector: d, workers: 1, log: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run perceives every input. Per-molecule failures are reported in the
// Result; only cancellation of ctx aborts the run.
func (r *Runner) Run(ctx context.Context, inputs []Input) (*Report, error) {
	rep := &Report{
		RunID:   uuid.New(),
		Model:   r.detector.Model().Name(),
		Finder:  r.detector.Finder().Name(),
		Results: make([]Result, len(inputs)),
	}
	log := r.log.With("run_id", rep.RunID.String(), "model", rep.Model, "finder", rep.Finder)
	log.Info("batch started", "molecules", len(inputs), "workers", r.workers)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, in := range inputs {
		i, in := i, in
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res := Perceive(r.detector, in)
			rep.Results[i] = res
			r.record(log, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", rep.RunID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", rep.RunID, err)
	}

	for _, res := range rep.Results {
		if res.Err != nil {
			rep.Failed++
		}
	}
	log.Info("batch finished", "molecules", len(inputs), "failed", rep.Failed)

	return rep, nil
}

func (r *Runner) record(log *slog.Logger, res Result) {
	status := metrics.StatusOK
	if res.Err != nil {
		status = metrics.StatusError
		log.Warn("molecule failed", "line", res.Line, "smiles", res.SMILES, "error", res.Err)
	} else {
		log.Debug("molecule perceived", "line", res.Line, "aromatic_bonds", len(res.Bonds), "rings", res.Rings)
	}
	if r.metrics != nil {
		r.metrics.RecordPerception(r.detector.Model().Name(), status, res.Duration, res.Rings, len(res.Bonds))
	}
}

// Perceive parses, types and perceives a single input.
func Perceive(d *aromaticity.Detector, in Input) (res Result) {
	res.Input = in
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	m, err := smiles.Parse(in.SMILES)
	if err != nil {
		res.Err = err
		return res
	}
	if _, err := atomtype.Perceive(m); err != nil {
		res.Err = err
		return res
	}
	p, err := d.Perceive(m)
	if err != nil {
		res.Err = err
		return res
	}
	res.Atoms, res.Bonds, res.Rings = p.AromaticAtoms, p.AromaticBonds, p.RingCount()

	return res
}

// ReadInputs reads one "SMILES [title]" record per line. Blank lines and
// lines starting with '#' are skipped.
func ReadInputs(rd io.Reader) ([]Input, error) {
	var out []Input
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		in := Input{Line: line, SMILES: text}
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			in.SMILES, in.Title = text[:i], strings.TrimSpace(text[i+1:])
		}
		out = append(out, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return out, nil
}

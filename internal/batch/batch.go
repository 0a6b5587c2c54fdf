// Package batch solves several puzzles concurrently with a bounded worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"chronal/internal/core"
)

// Job names a puzzle and the input file to solve it on.
type Job struct {
	Puzzle string
	Input  string
	Config map[string]string
}

// Result is the outcome of one job.
type Result struct {
	Job
	Answers core.Answers
	Err     error
	Elapsed time.Duration
}

// Discover returns a job for every name with a "<name>.txt" file in dir,
// in the order of names.
func Discover(dir string, names []string, cfg map[string]string) ([]Job, error) {
	var jobs []Job
	for _, name := range names {
		path := filepath.Join(dir, name+".txt")
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("batch: %w", err)
		}
		jobs = append(jobs, Job{Puzzle: name, Input: path, Config: cfg})
	}
	return jobs, nil
}

// Runner executes jobs on at most Workers goroutines.
type Runner struct {
	Workers int
	Logger  *log.Logger
}

// Run solves every job and returns the results in job order. A failing job
// does not stop the others; only cancellation of ctx does.
func (r Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			input, err := job.Load()
			var answers core.Answers
			if err == nil {
				answers, err = Solve(job, input)
			}
			results[i] = Result{Job: job, Answers: answers, Err: err, Elapsed: time.Since(start)}
			if err != nil {
				logger.Warn("puzzle failed", "puzzle", job.Puzzle, "err", err)
			} else {
				logger.Debug("puzzle solved", "puzzle", job.Puzzle, "elapsed", results[i].Elapsed)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Load reads the job's input file. A job without a file has empty input.
func (j Job) Load() ([]byte, error) {
	if j.Input == "" {
		return nil, nil
	}
	input, err := os.ReadFile(j.Input)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	return input, nil
}

// Solve builds the job's puzzle and runs it on input.
func Solve(job Job, input []byte) (core.Answers, error) {
	factory, err := core.Lookup(job.Puzzle)
	if err != nil {
		return nil, err
	}
	return factory(job.Config).Solve(input)
}

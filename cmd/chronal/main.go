// Command chronal solves the registered puzzles from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"chronal/internal/batch"
	"chronal/internal/core"
	_ "chronal/internal/puzzles/claims"
	_ "chronal/internal/puzzles/coords"
	_ "chronal/internal/puzzles/frequency"
	_ "chronal/internal/puzzles/guards"
	_ "chronal/internal/puzzles/inventory"
	_ "chronal/internal/puzzles/license"
	_ "chronal/internal/puzzles/polymer"
	"chronal/internal/sims/lights"
	_ "chronal/internal/sims/marbles"
	_ "chronal/internal/sims/steps"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns its exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := NewConfig()
	fs := flag.NewFlagSet("chronal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewWithOptions(stderr, log.Options{ReportTimestamp: true, TimeFormat: time.Kitchen, Prefix: "chronal"})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Error("bad log level", "level", cfg.LogLevel)
		return 2
	}
	logger.SetLevel(level)

	switch {
	case cfg.List:
		list(stdout)
		return 0
	case cfg.Dir != "":
		return solveDir(ctx, cfg, logger, stdout)
	case cfg.Puzzle == "":
		logger.Error("no puzzle selected; use -puzzle <name> or -list")
		return 2
	}

	input, err := readInput(cfg.Input, stdin)
	if err != nil {
		logger.Error("read input", "err", err)
		return 1
	}

	if cfg.Watch {
		if cfg.Puzzle != "lights" {
			logger.Error("-watch only supports the lights puzzle", "puzzle", cfg.Puzzle)
			return 2
		}
		if err := watch(input, lights.FromMap(cfg.Sets.Map()), cfg.TPS, logger, stdout); err != nil {
			logger.Error("watch failed", "err", err)
			return 1
		}
		return 0
	}

	answers, err := batch.Solve(batch.Job{Puzzle: cfg.Puzzle, Config: cfg.Sets.Map()}, input)
	if err != nil {
		logger.Error("solve failed", "puzzle", cfg.Puzzle, "err", err)
		return 1
	}
	fmt.Fprint(stdout, answers.String())
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func list(w io.Writer) {
	for _, name := range core.Names() {
		fmt.Fprintln(w, name)
		f, err := core.Lookup(name)
		if err != nil {
			continue
		}
		if d, ok := f(nil).(core.Describer); ok {
			fmt.Fprint(w, d.Parameters().String())
		}
	}
}

func solveDir(ctx context.Context, cfg *Config, logger *log.Logger, stdout io.Writer) int {
	names := core.Names()
	if cfg.Puzzle != "" {
		names = []string{cfg.Puzzle}
	}
	jobs, err := batch.Discover(cfg.Dir, names, cfg.Sets.Map())
	if err != nil {
		logger.Error("discover inputs", "err", err)
		return 1
	}
	if len(jobs) == 0 {
		logger.Warn("no inputs found", "dir", cfg.Dir)
		return 1
	}
	logger.Info("solving", "puzzles", len(jobs), "workers", cfg.Workers)

	results, err := batch.Runner{Workers: cfg.Workers, Logger: logger}.Run(ctx, jobs)
	if err != nil {
		logger.Error("batch interrupted", "err", err)
		return 1
	}
	code := 0
	for _, r := range results {
		if r.Err != nil {
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "== %s\n%s", r.Puzzle, r.Answers.String())
	}
	return code
}

// watch animates the sky one frame per tick until it aligns, then prints
// the aligned frame and tick.
func watch(input []byte, cfg lights.Config, tps int, logger *log.Logger, w io.Writer) error {
	sky, err := lights.Parse(input)
	if err != nil {
		return err
	}
	pacer := core.NewFixedStep(tps)
	show := func(tick int) error {
		pacer.Wait()
		frame, err := sky.Render(cfg.MaxArea)
		if errors.Is(err, lights.ErrFieldTooLarge) {
			b := sky.Bounds()
			fmt.Fprintf(w, "tick %d: %dx%d\n", tick, b.Width(), b.Height())
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\x1b[H\x1b[2Jtick %d\n%s", tick, frame)
		return nil
	}
	tick, err := lights.Align(sky, cfg.AlignLimit, core.WithObserver(show), core.WithLogger(logger))
	if err != nil {
		return err
	}
	frame, err := sky.Render(cfg.MaxArea)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s%s\n", frame, strings.TrimSpace(core.Answers{core.Part(2, tick)}.String()))
	return nil
}

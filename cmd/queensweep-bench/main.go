package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/cli"
	"github.com/hailam/queensweep/internal/solver"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	runs       = flag.Int("n", 20, "number of searches")
	workers    = flag.Int("workers", 1, "workers per search")
)

func main() {
	flag.Parse()
	cli.SetupLogging(os.Stderr, zerolog.InfoLevel)

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.Info().Str("path", profilePath).Msg("CPU profiling enabled")
	}

	start := board.Default()
	s := solver.New(solver.WithWorkers(*workers), solver.WithLogger(zerolog.Nop()))

	var total time.Duration
	var branches uint64
	for i := 0; i < *runs; i++ {
		res, sols := s.Collect(start)
		total += res.Elapsed
		branches += res.Branches
		log.Debug().Int("run", i+1).Dur("elapsed", res.Elapsed).Int("solutions", len(sols)).Msg("bench-run")
	}

	if *runs > 0 {
		log.Info().
			Int("runs", *runs).
			Int("workers", *workers).
			Dur("total", total).
			Dur("per_run", total/time.Duration(*runs)).
			Float64("branches_per_sec", float64(branches)/total.Seconds()).
			Msg("bench-done")
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb"
	"github.com/rs/zerolog/log"

	"github.com/metaform3d/prisoners-dilemma/internal/config"
	"github.com/metaform3d/prisoners-dilemma/internal/logger"
	"github.com/metaform3d/prisoners-dilemma/internal/report"
	"github.com/metaform3d/prisoners-dilemma/internal/tournament"
)

func main() {
	logger.Init()

	cfg := config.Load()

	var (
		cfgPath    string
		rounds     int
		stop       int
		step       float64
		workers    int
		population string
		jsonOut    bool
		noColor    bool
		progress   bool
	)

	flag.StringVar(&cfgPath, "config", "", "YAML config file (optional)")
	flag.IntVar(&rounds, "rounds", cfg.Rounds, "Rounds per pairing")
	flag.IntVar(&stop, "stop", cfg.StopSize, "Stop eliminating at this population size")
	flag.Float64Var(&step, "step", cfg.WeightStep, "Weight sweep increment")
	flag.IntVar(&workers, "workers", cfg.Workers, "Concurrency (parallel pairing rows)")
	flag.StringVar(&population, "population", cfg.Population, "Population: unique or full")
	flag.BoolVar(&jsonOut, "json", false, "Output final histories as JSON")
	flag.BoolVar(&noColor, "no-color", cfg.NoColor, "Disable colored output")
	flag.BoolVar(&progress, "progress", false, "Show a progress bar while ranking")

	flag.Parse()

	// Resolve config: the file overlays env values, explicit flags win.
	if cfgPath != "" {
		if err := cfg.MergeFile(cfgPath); err != nil {
			log.Fatal().Err(err).Msg("Config load failed")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = rounds
		case "stop":
			cfg.StopSize = stop
		case "step":
			cfg.WeightStep = step
		case "workers":
			cfg.Workers = workers
		case "population":
			cfg.Population = population
		case "no-color":
			cfg.NoColor = noColor
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	runID := logger.NewRunID()
	ctx, cancel := context.WithCancel(logger.WithRunID(context.Background(), runID))
	defer cancel()

	// Handle graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var pool []tournament.Prototype
	if cfg.Population == config.PopulationFull {
		pool = tournament.AllPrototypes()
	} else {
		pool = tournament.UniquePrototypes()
	}

	lg := logger.ForRun(ctx)
	lg.Info().
		Str("population", cfg.Population).
		Int("prototypes", len(pool)).
		Int("rounds", cfg.Rounds).
		Int("workers", cfg.Workers).
		Msg("Starting elimination run")

	rep := &report.Console{Out: os.Stdout, Color: !cfg.NoColor}
	rep.SignatureTable()

	opts := tournament.Options{
		Rounds:     cfg.Rounds,
		StopSize:   cfg.StopSize,
		WeightStep: cfg.WeightStep,
		Workers:    cfg.Workers,
	}
	if progress {
		opts.Progress = rowProgress()
	}

	hist, err := tournament.RunElimination(ctx, pool, opts, rep)
	if err != nil {
		log.Fatal().Err(err).Msg("Elimination run failed")
	}

	if jsonOut {
		printJSON(runID, cfg, hist)
	} else {
		rep.RankHistory(hist)
		rep.AverageHistory(hist)
	}

	lg.Info().Int("tracked", len(hist.Ranks)).Msg("Run complete")
}

// rowProgress returns a Progress hook drawing one pb bar per ranking
// pass. Each pass fires exactly one call per pairing row, on whichever
// worker finished it, so the hook counts calls under a lock and closes
// the bar once the pass's rows are all in.
func rowProgress() func(done, total int) {
	var (
		mu    sync.Mutex
		bar   *pb.ProgressBar
		count int
	)
	return func(_, total int) {
		mu.Lock()
		defer mu.Unlock()
		if bar == nil {
			bar = pb.New(total)
			bar.SetWidth(80)
			bar.Start()
			count = 0
		}
		count++
		bar.Increment()
		if count == total {
			bar.Finish()
			bar = nil
		}
	}
}

func printJSON(runID string, cfg *config.Config, hist *tournament.History) {
	out := struct {
		RunID    string               `json:"runId"`
		Rounds   int                  `json:"rounds"`
		StopSize int                  `json:"stopSize"`
		Ranks    map[string][]float64 `json:"ranks"`
		Averages map[string][]float64 `json:"averages"`
	}{
		RunID:    runID,
		Rounds:   cfg.Rounds,
		StopSize: cfg.StopSize,
		Ranks:    hist.Ranks,
		Averages: hist.Averages,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

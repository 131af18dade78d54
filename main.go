package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"konane/experiments"
	"konane/experiments/metrics"
	"konane/meta"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	size := flag.Int("size", meta.DEFAULT_SIZE, "Board side length")
	games := flag.Int("games", meta.DEFAULT_GAMES, "Number of games, agents swap sides every game")
	concurrency := flag.Int("concurrency", 1, "Number of games played in parallel")
	seed := flag.Uint64("seed", 1, "Seed for random agents")
	show := flag.Bool("show", false, "Print the board before every move")
	outDir := flag.String("out", "", "Directory for CSV match records")
	agent1 := flag.String("agent1", "minimax:2", "First agent as kind[:depth] (minimax, alphabeta, random, human)")
	agent2 := flag.String("agent2", "minimax:2", "Second agent as kind[:depth]")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	setupLogging(*logLevel)

	config := meta.Default()
	if *configPath != "" {
		var err error
		config, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given on the command line override the config file
	var errs []error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			config.Size = *size
		case "games":
			config.Games = *games
		case "concurrency":
			config.Concurrency = *concurrency
		case "seed":
			config.Seed = *seed
		case "show":
			config.Show = *show
		case "out":
			config.OutDir = *outDir
		case "agent1":
			errs = append(errs, setAgent(&config, 0, *agent1))
		case "agent2":
			errs = append(errs, setAgent(&config, 1, *agent2))
		}
	})
	errs = append(errs, config.Validate())
	if err := errors.Join(errs...); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := experiments.RunMatch(ctx, experiments.NewMatch(config, os.Stdin, os.Stdout))
	if err != nil {
		log.Error().Err(err).Msg("match aborted")
		return
	}
	for _, tally := range result.Tallies {
		fmt.Println(tally)
	}

	if config.OutDir != "" {
		dir, err := result.Store(config.OutDir)
		if err != nil {
			log.Error().Err(err).Msg("failed to store match records")
			return
		}
		log.Info().Str("dir", dir).Msg("stored match records")
	}
}

func setAgent(config *meta.Config, i int, spec string) error {
	agent, err := meta.ParseAgent(spec)
	if err != nil {
		return err
	}
	agent.ID = i + 1
	for len(config.Agents) <= i {
		config.Agents = append(config.Agents, metrics.AgentConfig{ID: len(config.Agents) + 1, Kind: metrics.KindMinimax})
	}
	config.Agents[i] = agent
	return nil
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/experiments"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config, overrides -experiment")
	experiment := flag.String("experiment", "baselines", "Preset experiment: baselines, book or pruning")
	games := flag.Int("games", 0, "Games per matchup, 0 keeps the configured number")
	output := flag.String("output", "", "Directory for experiment records")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(lvl)

	var config experiments.Config
	if *configPath != "" {
		config, err = experiments.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	} else {
		preset, ok := experiments.Presets[*experiment]
		if !ok {
			log.Fatal().Msgf("unknown experiment %q", *experiment)
		}
		config = preset()
	}
	if *games > 0 {
		config.Games = *games
	}
	if *output != "" {
		config.OutputDir = *output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := experiments.Run(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("records written to %s", dir)
}

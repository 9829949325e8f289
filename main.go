package main

import (
	"flag"
	"os"
	"time"

	"draughts/config"
	"draughts/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML tournament config (defaults are used when empty)")
	outputDir := flag.String("out", "", "Directory for result files, overrides the config")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *outputDir != "" {
		cfg.Tournament.OutputDir = *outputDir
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	res, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	for i, s := range res.Standings {
		log.Info().Msgf("%d. %s: %.1f points (%d won, %d drawn, %d lost)", i+1, s.Player, s.Points, s.Wins, s.Draws, s.Losses)
	}
}

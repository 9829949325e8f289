package config

import (
	"errors"
	"fmt"
	"os"

	"draughts/meta"

	"gopkg.in/yaml.v3"
)

type PlayerKind string

const (
	RandomPlayer PlayerKind = "random"
	FirstPlayer  PlayerKind = "first"
	ReplayPlayer PlayerKind = "replay"
)

type PlayerConfig struct {
	Name     string     `yaml:"name"`
	Kind     PlayerKind `yaml:"kind"`
	Seed     uint64     `yaml:"seed,omitempty"`
	OfferTie bool       `yaml:"offerTie,omitempty"`
	Replay   string     `yaml:"replay,omitempty"` // path to a JSON record file
}

type MatchConfig struct {
	MaxPlies       int `yaml:"maxPlies"`
	TieRequestTurn int `yaml:"tieRequestTurn"`
}

type Points struct {
	Win  float64 `yaml:"win"`
	Draw float64 `yaml:"draw"`
	Loss float64 `yaml:"loss"`
}

type TournamentConfig struct {
	Workers   int    `yaml:"workers"`
	Points    Points `yaml:"points"`
	OutputDir string `yaml:"outputDir"`
}

type Config struct {
	LogLevel   string           `yaml:"logLevel"`
	Match      MatchConfig      `yaml:"match"`
	Tournament TournamentConfig `yaml:"tournament"`
	Players    []PlayerConfig   `yaml:"players"`
}

// Default is a two-player random tournament.
func Default() Config {
	return Config{
		LogLevel: "info",
		Match: MatchConfig{
			MaxPlies:       meta.MAX_PLIES,
			TieRequestTurn: meta.TIE_REQUEST_TURN,
		},
		Tournament: TournamentConfig{
			Workers:   4,
			Points:    Points{Win: 2, Draw: 0.5, Loss: 0},
			OutputDir: "results",
		},
		Players: []PlayerConfig{
			{Name: "random-1", Kind: RandomPlayer, Seed: 1},
			{Name: "random-2", Kind: RandomPlayer, Seed: 2},
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Match.MaxPlies <= 0 {
		errs = append(errs, fmt.Errorf("match.maxPlies must be positive, got %d", c.Match.MaxPlies))
	}
	if c.Match.TieRequestTurn < 1 {
		errs = append(errs, fmt.Errorf("match.tieRequestTurn must be at least 1, got %d", c.Match.TieRequestTurn))
	}
	if c.Tournament.Workers <= 0 {
		errs = append(errs, fmt.Errorf("tournament.workers must be positive, got %d", c.Tournament.Workers))
	}
	if len(c.Players) < 2 {
		errs = append(errs, fmt.Errorf("need at least two players, got %d", len(c.Players)))
	}

	names := make(map[string]bool)
	for i, p := range c.Players {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("players[%d] has no name", i))
		} else if names[p.Name] {
			errs = append(errs, fmt.Errorf("duplicate player name %q", p.Name))
		}
		names[p.Name] = true

		switch p.Kind {
		case RandomPlayer, FirstPlayer:
		case ReplayPlayer:
			if p.Replay == "" {
				errs = append(errs, fmt.Errorf("replay player %q has no replay file", p.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("player %q has unknown kind %q", p.Name, p.Kind))
		}
	}
	return errors.Join(errs...)
}

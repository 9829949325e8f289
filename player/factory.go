package player

import (
	"fmt"
	"os"

	"draughts/config"
	"draughts/game"
)

// New builds a fresh player instance from its configuration. Every match gets its
// own instances so no state is shared between concurrent matches. tieRequestTurn
// is the first turn the game loop accepts tie requests on.
func New(cfg config.PlayerConfig, tieRequestTurn int) (Player, error) {
	switch cfg.Kind {
	case config.RandomPlayer:
		return NewRandom(cfg.Name, cfg.Seed), nil
	case config.FirstPlayer:
		return NewFirst(cfg.Name, cfg.OfferTie, tieRequestTurn), nil
	case config.ReplayPlayer:
		f, err := os.Open(cfg.Replay)
		if err != nil {
			return nil, fmt.Errorf("failed to open replay file: %w", err)
		}
		defer f.Close()
		records, err := game.DecodeRecords(f)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", cfg.Name, err)
		}
		return NewReplay(cfg.Name, records), nil
	}
	return nil, fmt.Errorf("unknown player kind %q", cfg.Kind)
}

package player

import (
	"draughts/game"

	"golang.org/x/exp/rand"
)

type Random struct {
	base
	rng *rand.Rand
}

// NewRandom returns a player picking uniformly among the legal pieces, then among
// that piece's moves. A zero seed draws from the global source.
func NewRandom(name string, seed uint64) *Random {
	if name == "" {
		name = "Random"
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{
		base: base{name: name},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Action(state *game.GameState, history *game.History) game.Action {
	legal := game.LegalMoves(state)
	if len(legal) == 0 {
		return game.Resign()
	}
	pick := legal[r.rng.Intn(len(legal))]
	return game.Play(pick.Piece, pick.Moves[r.rng.Intn(len(pick.Moves))])
}

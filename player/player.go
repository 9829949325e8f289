package player

import (
	"fmt"

	"draughts/game"
)

// Player decides the actions of one side. Implementations only propose actions;
// the game loop validates them.
type Player interface {
	Name() string
	// Initialize is called once before the match with the side the player controls.
	Initialize(id game.Player)
	// Action receives copies of the current state and history.
	Action(state *game.GameState, history *game.History) game.Action
	// EndGame reports the final history and the winner (game.NoWinner on a draw).
	EndGame(history *game.History, winner game.Player)
}

// base carries the bookkeeping shared by all players.
type base struct {
	name string
	id   game.Player
}

func (b *base) Name() string                       { return b.name }
func (b *base) Initialize(id game.Player)          { b.id = id }
func (b *base) EndGame(*game.History, game.Player) {}
func (b *base) String() string                     { return fmt.Sprintf("%s(%s)", b.name, b.id) }

package player

import (
	"draughts/game"
	"draughts/meta"
)

// First always plays the first legal move. With offerTie set it offers a draw
// with every move once tieRequestTurn is reached, and accepts any pending offer.
type First struct {
	base
	offerTie       bool
	tieRequestTurn int
}

// NewFirst uses meta.TIE_REQUEST_TURN when tieRequestTurn is not positive. It must
// match the turn the game loop enforces.
func NewFirst(name string, offerTie bool, tieRequestTurn int) *First {
	if name == "" {
		name = "First"
	}
	if tieRequestTurn <= 0 {
		tieRequestTurn = meta.TIE_REQUEST_TURN
	}
	return &First{base: base{name: name}, offerTie: offerTie, tieRequestTurn: tieRequestTurn}
}

func (f *First) Action(state *game.GameState, history *game.History) game.Action {
	tieAllowed := f.offerTie && state.Turn >= f.tieRequestTurn
	if tieAllowed && state.TieRequest.RaisedBy(f.id.Opponent()) {
		return game.AcceptTie()
	}

	legal := game.LegalMoves(state)
	if len(legal) == 0 {
		return game.Resign()
	}
	if tieAllowed && !state.TieRequest.RaisedBy(f.id) {
		return game.PlayAndRequestTie(legal[0].Piece, legal[0].Moves[0])
	}
	return game.Play(legal[0].Piece, legal[0].Moves[0])
}

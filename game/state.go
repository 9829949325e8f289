package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"draughts/meta"
)

// TieRequest records which side, if any, has offered a draw.
type TieRequest int

const (
	TieRequestPlayer0 TieRequest = iota
	TieRequestPlayer1
	NoTieRequest
	InvalidTieRequest // a rejected request or acceptance, shown once then cleared
)

// TieRequestBy returns the request raised by player.
func TieRequestBy(player Player) TieRequest {
	return TieRequest(player)
}

func (t TieRequest) RaisedBy(player Player) bool {
	return t == TieRequestBy(player)
}

func (t TieRequest) String() string {
	switch t {
	case TieRequestPlayer0:
		return "requested by Player0"
	case TieRequestPlayer1:
		return "requested by Player1"
	case NoTieRequest:
		return "none"
	case InvalidTieRequest:
		return "invalid"
	}
	return "unknown"
}

// GameState is the snapshot of one ply. States are never modified once handed
// out; every transition builds a new one with its own copy of the board.
type GameState struct {
	Board         Board
	Turn          int // Completed rounds + 1; advances when control returns to player 0
	CurrentPlayer Player
	TieRequest    TieRequest
}

// NewGameState returns the opening position with player 0 to move.
func NewGameState() *GameState {
	return NewGameStateFrom(NewBoard(), 1, Player0)
}

func NewGameStateFrom(board Board, turn int, player Player) *GameState {
	return &GameState{
		Board:         board,
		Turn:          turn,
		CurrentPlayer: player,
		TieRequest:    NoTieRequest,
	}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

// WithTieRequest returns a copy of the state carrying the given tie request.
func (gs *GameState) WithTieRequest(t TieRequest) *GameState {
	next := gs.Copy()
	next.TieRequest = t
	return next
}

// GetSuccessor applies move to piece and returns the next state. Illegal moves
// are rejected before the board is touched.
func (gs *GameState) GetSuccessor(piece Piece, move Move) (*GameState, error) {
	if len(move) == 0 || !IsValid(piece, move, gs) {
		return nil, fmt.Errorf("%w: piece on %d to %s", ErrInvalidMove, piece.Position.Number(), move)
	}

	mover := gs.CurrentPlayer
	next := &GameState{
		Board:         gs.Board,
		Turn:          gs.Turn,
		CurrentPlayer: mover.Opponent(),
		TieRequest:    NoTieRequest,
	}
	if mover == Player1 {
		next.Turn++
	}
	if gs.TieRequest.RaisedBy(mover) {
		next.TieRequest = gs.TieRequest
	}

	for _, captured := range CapturedBy(piece, move, gs.Board.PiecesOf(mover.Opponent())) {
		next.Board.Remove(captured.Position)
	}
	next.Board.Move(piece.Position, move.Final())
	if move.Final().Y == mover.backRank() {
		next.Board.Promote(move.Final())
	}

	return next, nil
}

// IsOpponentWinning reports whether the player to move is stuck, which loses.
func (gs *GameState) IsOpponentWinning() bool {
	return len(LegalMoves(gs)) == 0
}

// DrawRule names the rule that ended a match in a draw.
type DrawRule int

const (
	NoDraw DrawRule = iota
	KingVsManPlusOneDraw
	KingVsManPlusTwoDraw
	KingMovesDraw
	RepetitionDraw
)

func (d DrawRule) String() string {
	switch d {
	case NoDraw:
		return "none"
	case KingVsManPlusOneDraw:
		return "king-vs-man-plus-one"
	case KingVsManPlusTwoDraw:
		return "king-vs-man-plus-two"
	case KingMovesDraw:
		return "king-moves"
	case RepetitionDraw:
		return "repetition"
	}
	return "unknown"
}

// DrawRule checks the draw counters and the repetition table of history, which
// must already contain this state.
func (gs *GameState) DrawRule(history *History) DrawRule {
	switch {
	case history.KingVsManPlusOne >= meta.KingVsManPlusOneLimit:
		return KingVsManPlusOneDraw
	case history.KingVsManPlusTwo >= meta.KingVsManPlusTwoLimit:
		return KingVsManPlusTwoDraw
	case history.ConsecutiveKingMoves >= meta.ConsecutiveKingMovesLimit:
		return KingMovesDraw
	case history.LastOccurrence() >= meta.RepetitionLimit:
		return RepetitionDraw
	}
	return NoDraw
}

func (gs *GameState) IsDraw(history *History) bool {
	return gs.DrawRule(history) != NoDraw
}

// Hash identifies the (player, board) configuration.
func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	for _, c := range gs.Board.cells {
		hasher.Write([]byte{byte(c)})
	}

	return StateHash(hasher.Sum64())
}

func (gs GameState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn %d, %s to move, tie %s\n", gs.Turn, gs.CurrentPlayer, gs.TieRequest)
	sb.WriteString(gs.Board.String())
	return sb.String()
}

package game

import (
	"maps"

	"golang.org/x/exp/slices"
)

// HistoryMove is one entry of the move log. Exactly one of a played move, a
// resignation or an accepted tie is meaningful per entry.
type HistoryMove struct {
	PlayerID     Player `json:"playerId"`
	Piece        *Piece `json:"piece,omitempty"`
	Move         Move   `json:"move,omitempty"`
	Captured     bool   `json:"captured"`
	RequestedTie bool   `json:"requestedTie"`
	AcceptedTie  bool   `json:"acceptedTie"`
	Resigned     bool   `json:"resigned"`
}

func PlayedMove(player Player, piece Piece, move Move, captured, requestedTie bool) HistoryMove {
	return HistoryMove{
		PlayerID:     player,
		Piece:        &piece,
		Move:         slices.Clone(move),
		Captured:     captured,
		RequestedTie: requestedTie,
	}
}

func ResignMove(player Player) HistoryMove {
	return HistoryMove{PlayerID: player, Resigned: true}
}

func AcceptTieMove(player Player) HistoryMove {
	return HistoryMove{PlayerID: player, AcceptedTie: true}
}

func (hm HistoryMove) IsPlayed() bool {
	return hm.Piece != nil && len(hm.Move) > 0 && !hm.Resigned && !hm.AcceptedTie
}

// Occurrence pairs a reached state with how many times its (player, board)
// configuration had been reached at that point, itself included.
type Occurrence struct {
	State *GameState
	Count int
}

// History is the append-only log of a single match along with the counters the
// draw rules need. Add must be called once per ply, in order.
type History struct {
	moves       []HistoryMove
	occurrences []Occurrence
	seen        map[StateHash]int // keyed on GameState.Hash, which covers player and board

	KingVsManPlusOne     int // draw at meta.KingVsManPlusOneLimit
	KingVsManPlusTwo     int // draw at meta.KingVsManPlusTwoLimit
	ConsecutiveKingMoves int // draw at meta.ConsecutiveKingMovesLimit
}

// NewHistory starts a history whose repetition table already holds initial.
func NewHistory(initial *GameState) *History {
	h := &History{seen: make(map[StateHash]int)}
	if initial != nil {
		h.record(initial)
	}
	return h
}

func (h *History) record(state *GameState) {
	if h.seen == nil {
		h.seen = make(map[StateHash]int)
	}
	key := state.Hash()
	h.seen[key]++
	h.occurrences = append(h.occurrences, Occurrence{State: state, Count: h.seen[key]})
}

// Add logs move, played from oldState and leading to newState. Resignations and
// accepted ties are only logged.
func (h *History) Add(newState *GameState, move HistoryMove, oldState *GameState) {
	h.moves = append(h.moves, move)
	if !move.IsPlayed() || newState == nil {
		return
	}

	if oldState != nil {
		for _, side := range []Player{Player0, Player1} {
			pieces, kings := oldState.Board.Count(side)
			opponentPieces, opponentKings := oldState.Board.Count(side.Opponent())
			if kings == 0 || opponentPieces != 1 || opponentKings != 1 {
				continue
			}
			switch pieces {
			case 2:
				h.KingVsManPlusOne++
			case 3:
				h.KingVsManPlusTwo++
			}
		}
	}

	if move.Piece.IsKing && !move.Captured {
		h.ConsecutiveKingMoves++
	} else {
		h.ConsecutiveKingMoves = 0
	}

	h.record(newState)
}

func (h *History) Moves() []HistoryMove {
	return slices.Clone(h.moves)
}

func (h *History) Occurrences() []Occurrence {
	return slices.Clone(h.occurrences)
}

// LastOccurrence is the repetition count of the most recently recorded state.
func (h *History) LastOccurrence() int {
	if len(h.occurrences) == 0 {
		return 0
	}
	return h.occurrences[len(h.occurrences)-1].Count
}

func (h *History) Len() int {
	return len(h.moves)
}

// Clone returns an independent copy for handing to players.
func (h *History) Clone() *History {
	clone := *h
	clone.moves = slices.Clone(h.moves)
	clone.occurrences = slices.Clone(h.occurrences)
	clone.seen = maps.Clone(h.seen)
	return &clone
}

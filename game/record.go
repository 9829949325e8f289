package game

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the persisted form of a HistoryMove, consumed by replay players.
// Squares are stored by their 1-50 number.
type Record struct {
	PlayerID     Player `json:"playerId"`
	PieceOrigin  *int   `json:"pieceOrigin,omitempty"`
	MoveStops    []int  `json:"moveStops,omitempty"`
	Captured     bool   `json:"captured"`
	RequestedTie bool   `json:"requestedTie"`
	Resigned     bool   `json:"resigned"`
	AcceptedTie  bool   `json:"acceptedTie"`
}

func (hm HistoryMove) Record() Record {
	r := Record{
		PlayerID:     hm.PlayerID,
		Captured:     hm.Captured,
		RequestedTie: hm.RequestedTie,
		Resigned:     hm.Resigned,
		AcceptedTie:  hm.AcceptedTie,
	}
	if hm.Piece != nil {
		origin := hm.Piece.Position.Number()
		r.PieceOrigin = &origin
	}
	for _, sq := range hm.Move {
		r.MoveStops = append(r.MoveStops, sq.Number())
	}
	return r
}

// Records converts the whole move log.
func (h *History) Records() []Record {
	records := make([]Record, len(h.moves))
	for i, hm := range h.moves {
		records[i] = hm.Record()
	}
	return records
}

// Action turns the record back into a candidate action against state. The piece
// is looked up on the board, so the action still goes through normal validation.
func (r Record) Action(state *GameState) (Action, error) {
	switch {
	case r.Resigned:
		return Resign(), nil
	case r.AcceptedTie:
		return AcceptTie(), nil
	case r.PieceOrigin == nil || len(r.MoveStops) == 0:
		return Action{}, fmt.Errorf("record for %s has neither a move nor a resign/tie flag", r.PlayerID)
	}

	origin, err := SquareFromNumber(*r.PieceOrigin)
	if err != nil {
		return Action{}, fmt.Errorf("record piece origin: %w", err)
	}
	piece, ok := state.Board.PieceAt(origin)
	if !ok {
		return Action{}, fmt.Errorf("%w: no piece on square %d", ErrInvalidMove, *r.PieceOrigin)
	}

	move := make(Move, len(r.MoveStops))
	for i, n := range r.MoveStops {
		if move[i], err = SquareFromNumber(n); err != nil {
			return Action{}, fmt.Errorf("record move stop: %w", err)
		}
	}

	return Action{Type: PlayAction, Piece: piece, Move: move, RequestTie: r.RequestedTie}, nil
}

func EncodeRecords(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}

func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

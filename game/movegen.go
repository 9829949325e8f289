package game

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type direction struct {
	dx, dy int
}

var directions = [4]direction{
	{-1, -1}, // towards row 0, left
	{1, -1},  // towards row 0, right
	{-1, 1},  // towards row 9, left
	{1, 1},   // towards row 9, right
}

// forwardDirections are the diagonals pointing at the opponent's baseline.
func forwardDirections(player Player) []direction {
	if player == Player0 {
		return directions[0:2]
	}
	return directions[2:4]
}

// Move is the ordered list of squares a piece stops on during one ply. Chained
// captures have one stop per hop; the last stop is where the piece rests.
type Move []Square

func (m Move) Final() Square {
	return m[len(m)-1]
}

func (m Move) Equal(other Move) bool {
	return slices.Equal(m, other)
}

func (m Move) String() string {
	parts := make([]string, len(m))
	for i, sq := range m {
		parts[i] = strconv.Itoa(sq.Number())
	}
	return strings.Join(parts, "-")
}

// PieceMoves groups the legal moves of one piece.
type PieceMoves struct {
	Piece Piece
	Moves []Move
}

// moveNode is one stop in the tree of continuations explored for a single piece.
// The root holds the piece's origin and is not part of any move.
type moveNode struct {
	stop     Square
	children []*moveNode
}

type capture struct {
	jumped   Square
	landings []Square
}

// generator explores the moves of a single piece on a board snapshot. captured
// holds the squares jumped earlier in the current chain; they stay on the board
// until the ply resolves, so they keep blocking other paths.
type generator struct {
	board    *Board
	piece    Piece
	forward  []direction
	captured [NumSquares]bool
}

func newGenerator(board *Board, piece Piece) *generator {
	return &generator{
		board:   board,
		piece:   piece,
		forward: forwardDirections(piece.Owner),
	}
}

func (g *generator) isOpponent(sq Square) bool {
	owner, ok := g.board.OwnerAt(sq)
	return ok && owner != g.piece.Owner && !g.captured[sq.Index()]
}

func (g *generator) isFriendly(sq Square) bool {
	owner, ok := g.board.OwnerAt(sq)
	return ok && owner == g.piece.Owner
}

func (g *generator) tree() *moveNode {
	root := &moveNode{stop: g.piece.Position}
	g.expand(root, true)
	return root
}

func (g *generator) expand(node *moveNode, first bool) {
	var captures []capture
	var steps []Square
	if g.piece.IsKing {
		captures, steps = g.kingOptions(node.stop)
	} else {
		captures, steps = g.manOptions(node.stop)
	}

	if len(captures) == 0 {
		if first {
			for _, sq := range steps {
				node.children = append(node.children, &moveNode{stop: sq})
			}
		}
		return
	}

	for _, c := range captures {
		g.captured[c.jumped.Index()] = true
		for _, landing := range c.landings {
			child := &moveNode{stop: landing}
			g.expand(child, false)
			node.children = append(node.children, child)
		}
		g.captured[c.jumped.Index()] = false
	}
}

func (g *generator) manOptions(from Square) ([]capture, []Square) {
	var captures []capture
	for _, d := range directions {
		adjacent := from.add(d)
		if !g.isOpponent(adjacent) {
			continue
		}
		landing := adjacent.add(d)
		if landing.OnBoard() && !g.board.Occupied(landing) {
			captures = append(captures, capture{jumped: adjacent, landings: []Square{landing}})
		}
	}

	var steps []Square
	for _, d := range g.forward {
		next := from.add(d)
		if next.OnBoard() && !g.board.Occupied(next) {
			steps = append(steps, next)
		}
	}
	return captures, steps
}

func (g *generator) kingOptions(from Square) ([]capture, []Square) {
	var captures []capture
	var steps []Square
	for _, d := range directions {
		sq := from.add(d)
		for sq.OnBoard() {
			if g.captured[sq.Index()] || g.isFriendly(sq) {
				break
			}
			if !g.board.Occupied(sq) {
				steps = append(steps, sq)
				sq = sq.add(d)
				continue
			}

			var landings []Square
			for beyond := sq.add(d); beyond.OnBoard() && !g.board.Occupied(beyond); beyond = beyond.add(d) {
				landings = append(landings, beyond)
			}
			if len(landings) > 0 {
				captures = append(captures, capture{jumped: sq, landings: landings})
			}
			break
		}
	}
	return captures, steps
}

// flatten lists every root-to-leaf path below node.
func flatten(node *moveNode, prefix Move, out []Move) []Move {
	for _, child := range node.children {
		path := append(slices.Clone(prefix), child.stop)
		if len(child.children) == 0 {
			out = append(out, path)
			continue
		}
		out = flatten(child, path, out)
	}
	return out
}

// longest keeps the maximum-length moves, without duplicates, in generation order.
func longest(moves []Move) []Move {
	maxLen := 0
	for _, m := range moves {
		maxLen = max(maxLen, len(m))
	}

	var kept []Move
	for _, m := range moves {
		if len(m) != maxLen {
			continue
		}
		if slices.ContainsFunc(kept, m.Equal) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func pieceMoves(board *Board, piece Piece) []Move {
	root := newGenerator(board, piece).tree()
	return longest(flatten(root, nil, nil))
}

// PieceLegalMoves returns the maximal moves of one piece, ignoring what the
// player's other pieces could capture.
func PieceLegalMoves(piece Piece, state *GameState) []Move {
	actual, ok := state.Board.PieceAt(piece.Position)
	if !ok || actual.Owner != state.CurrentPlayer || actual.IsKing != piece.IsKing {
		return nil
	}
	return pieceMoves(&state.Board, actual)
}

func orientation(from, to Square) direction {
	d := direction{dx: -1, dy: -1}
	if from.X < to.X {
		d.dx = 1
	}
	if from.Y < to.Y {
		d.dy = 1
	}
	return d
}

// CapturedBy walks the path of an already chosen move and collects the opponent
// pieces standing on it. It does not check legality.
func CapturedBy(piece Piece, move Move, opponents []Piece) []Piece {
	remaining := slices.Clone(opponents)
	var captured []Piece

	pos := piece.Position
	for _, stop := range move {
		d := orientation(pos, stop)
		for pos != stop {
			if i := slices.IndexFunc(remaining, func(p Piece) bool { return p.Position == pos }); i >= 0 {
				captured = append(captured, remaining[i])
				remaining = slices.Delete(remaining, i, i+1)
			}
			pos = pos.add(d)
			if !pos.OnBoard() {
				panic(&OutOfBoundsError{Square: pos})
			}
		}
	}
	return captured
}

// LegalMoves lists the active player's legal moves under the mandatory maximum
// capture rule: only the pieces capturing the most opponent pieces may move.
// An empty result means the active player cannot move.
func LegalMoves(state *GameState) []PieceMoves {
	player := state.CurrentPlayer
	opponents := state.Board.PiecesOf(player.Opponent())

	var legal []PieceMoves
	best := 0
	for _, piece := range state.Board.PiecesOf(player) {
		moves := pieceMoves(&state.Board, piece)
		if len(moves) == 0 {
			continue
		}

		captures := 0
		for _, m := range moves {
			captures = max(captures, len(CapturedBy(piece, m, opponents)))
		}

		switch {
		case captures > best:
			best = captures
			legal = []PieceMoves{{Piece: piece, Moves: moves}}
		case captures == best:
			legal = append(legal, PieceMoves{Piece: piece, Moves: moves})
		}
	}
	return legal
}

// IsValid reports whether piece belongs to the active player and move is one of
// its legal moves.
func IsValid(piece Piece, move Move, state *GameState) bool {
	for _, pm := range LegalMoves(state) {
		if !pm.Piece.Same(piece) {
			continue
		}
		return slices.ContainsFunc(pm.Moves, move.Equal)
	}
	return false
}

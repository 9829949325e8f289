package game

import (
	"fmt"
	"strings"
)

const (
	BoardSize  = 10
	NumSquares = BoardSize * BoardSize / 2
)

// Square is a coordinate on the 10x10 grid. Only dark squares, where X+Y is odd,
// are playable.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s Square) OnBoard() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

func (s Square) Playable() bool {
	return s.OnBoard() && (s.X+s.Y)%2 == 1
}

// Index is the 0-based position of the square in the 50-cell array.
func (s Square) Index() int {
	return (BoardSize*s.Y + s.X) / 2
}

// Number returns the standard 1-50 square number used in notation.
func (s Square) Number() int {
	return s.Index() + 1
}

func (s Square) add(d direction) Square {
	return Square{X: s.X + d.dx, Y: s.Y + d.dy}
}

func (s Square) String() string {
	return fmt.Sprintf("%d", s.Number())
}

func SquareFromIndex(index int) Square {
	y := index / (BoardSize / 2)
	x := 2 * (index % (BoardSize / 2))
	if y%2 == 0 {
		x++
	}
	return Square{X: x, Y: y}
}

func SquareFromNumber(number int) (Square, error) {
	if number < 1 || number > NumSquares {
		return Square{}, fmt.Errorf("square number %d out of range 1-%d", number, NumSquares)
	}
	return SquareFromIndex(number - 1), nil
}

// Piece is a man or king owned by one of the players.
type Piece struct {
	Position Square `json:"position"`
	Owner    Player `json:"owner"`
	IsKing   bool   `json:"isKing"`
}

// Same reports whether both pieces stand on the same square with the same rank.
// The owner is implied by the context the pieces come from.
func (p Piece) Same(other Piece) bool {
	return p.Position == other.Position && p.IsKing == other.IsKing
}

// Each cell packs three flags: occupied, crowned and owner.
type cell uint8

const (
	cellOccupied cell = 1 << iota
	cellKing
	cellOwner
)

func newCell(owner Player, isKing bool) cell {
	c := cellOccupied
	if isKing {
		c |= cellKing
	}
	if owner == Player1 {
		c |= cellOwner
	}
	return c
}

func (c cell) occupied() bool { return c&cellOccupied != 0 }
func (c cell) king() bool     { return c&cellKing != 0 }

func (c cell) owner() Player {
	if c&cellOwner != 0 {
		return Player1
	}
	return Player0
}

// Board maps the playable squares to pieces. It is a value type: assignment copies
// it and == compares the full contents.
type Board struct {
	cells [NumSquares]cell
}

// NewBoard returns the initial 20-vs-20 setup. Player 1 occupies squares 1-20 and
// player 0 occupies squares 31-50.
func NewBoard() Board {
	var b Board
	for i := 0; i < 20; i++ {
		b.cells[i] = newCell(Player1, false)
	}
	for i := 30; i < NumSquares; i++ {
		b.cells[i] = newCell(Player0, false)
	}
	return b
}

func EmptyBoard() Board {
	return Board{}
}

func (b *Board) cellAt(sq Square) (cell, bool) {
	if !sq.Playable() {
		return 0, false
	}
	return b.cells[sq.Index()], true
}

// Place puts a piece on its square. It fails if the square is not playable or
// already taken.
func (b *Board) Place(p Piece) bool {
	c, ok := b.cellAt(p.Position)
	if !ok || c.occupied() {
		return false
	}
	b.cells[p.Position.Index()] = newCell(p.Owner, p.IsKing)
	return true
}

// PiecesOf lists the player's pieces in ascending square order.
func (b *Board) PiecesOf(player Player) []Piece {
	pieces := make([]Piece, 0, 20)
	for i, c := range b.cells {
		if c.occupied() && c.owner() == player {
			pieces = append(pieces, Piece{
				Position: SquareFromIndex(i),
				Owner:    player,
				IsKing:   c.king(),
			})
		}
	}
	return pieces
}

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	c, ok := b.cellAt(sq)
	if !ok || !c.occupied() {
		return Piece{}, false
	}
	return Piece{Position: sq, Owner: c.owner(), IsKing: c.king()}, true
}

func (b *Board) Remove(sq Square) bool {
	c, ok := b.cellAt(sq)
	if !ok || !c.occupied() {
		return false
	}
	b.cells[sq.Index()] = 0
	return true
}

// Move relocates a piece. Legality is the caller's concern; it only fails when
// from is empty or to is occupied.
func (b *Board) Move(from, to Square) bool {
	src, ok := b.cellAt(from)
	if !ok || !src.occupied() {
		return false
	}
	dst, ok := b.cellAt(to)
	if !ok || dst.occupied() {
		return false
	}
	b.cells[to.Index()] = src
	b.cells[from.Index()] = 0
	return true
}

func (b *Board) Promote(sq Square) bool {
	c, ok := b.cellAt(sq)
	if !ok || !c.occupied() {
		return false
	}
	b.cells[sq.Index()] = c | cellKing
	return true
}

func (b *Board) OwnerAt(sq Square) (Player, bool) {
	c, ok := b.cellAt(sq)
	if !ok || !c.occupied() {
		return 0, false
	}
	return c.owner(), true
}

// StatusAt reports whether the piece on sq is a king; ok is false for empty squares.
func (b *Board) StatusAt(sq Square) (isKing bool, ok bool) {
	c, valid := b.cellAt(sq)
	if !valid || !c.occupied() {
		return false, false
	}
	return c.king(), true
}

func (b *Board) Occupied(sq Square) bool {
	c, ok := b.cellAt(sq)
	return ok && c.occupied()
}

// Count returns how many pieces, and how many of them kings, the player has.
func (b *Board) Count(player Player) (pieces, kings int) {
	for _, c := range b.cells {
		if c.occupied() && c.owner() == player {
			pieces++
			if c.king() {
				kings++
			}
		}
	}
	return pieces, kings
}

// String draws the board with row 0 on top: w/b for men of player 0/1, W/B for kings.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			sq := Square{X: x, Y: y}
			if !sq.Playable() {
				sb.WriteByte(' ')
				continue
			}
			c := b.cells[sq.Index()]
			switch {
			case !c.occupied():
				sb.WriteByte('.')
			case c.owner() == Player0 && c.king():
				sb.WriteByte('W')
			case c.owner() == Player0:
				sb.WriteByte('w')
			case c.king():
				sb.WriteByte('B')
			default:
				sb.WriteByte('b')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

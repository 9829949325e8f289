package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove            = errors.New("invalid move")
	ErrPrematureTieRequest    = errors.New("tie requested before the allowed turn")
	ErrPrematureTieAcceptance = errors.New("tie accepted before the allowed turn or without a pending request")
	ErrGameOver               = errors.New("game is over - no moves allowed")
)

// OutOfBoundsError reports a capture walk leaving the grid. It only happens when a
// move that never passed validation reaches CapturedBy.
type OutOfBoundsError struct {
	Square Square
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("capture path left the board at (%d,%d)", e.Square.X, e.Square.Y)
}

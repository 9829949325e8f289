package game

import "fmt"

// Player identifies a side. Player 0 moves first and starts on squares 31-50.
type Player int

const (
	Player0 Player = 0
	Player1 Player = 1
)

// NoWinner marks a drawn or unfinished game.
const NoWinner Player = -1

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == NoWinner {
		return "none"
	}
	return fmt.Sprintf("Player%d", int(p))
}

// backRank is the row that crowns the player's men.
func (p Player) backRank() int {
	if p == Player0 {
		return 0
	}
	return BoardSize - 1
}

type StateHash uint64

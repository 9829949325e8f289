package experiments

// Bye marks the empty seat added when the number of players is odd.
const Bye = -1

// Pairing is one scheduled match between two player indices. Player0 moves first.
type Pairing struct {
	Player0 int
	Player1 int
}

func (p Pairing) IsBye() bool {
	return p.Player0 == Bye || p.Player1 == Bye
}

// RoundRobinSchedule builds a double round robin for n players using the circle
// method: the first seat stays fixed while the others rotate. Colors alternate
// between rounds and the second half replays the first with colors reversed.
// Byes are included so every round has the same number of pairings.
func RoundRobinSchedule(n int) []Pairing {
	if n < 2 {
		return nil
	}

	seats := make([]int, n, n+1)
	for i := range seats {
		seats[i] = i
	}
	if n%2 == 1 {
		seats = append(seats, Bye)
	}

	m := len(seats)
	mid := m / 2
	var schedule []Pairing
	for round := 0; round < m-1; round++ {
		for k := 0; k < mid; k++ {
			left, right := seats[k], seats[m-1-k]
			if round%2 == 1 {
				schedule = append(schedule, Pairing{Player0: left, Player1: right})
			} else {
				schedule = append(schedule, Pairing{Player0: right, Player1: left})
			}
		}

		last := seats[m-1]
		copy(seats[2:], seats[1:m-1])
		seats[1] = last
	}

	firstHalf := len(schedule)
	for _, p := range schedule[:firstHalf] {
		schedule = append(schedule, Pairing{Player0: p.Player1, Player1: p.Player0})
	}
	return schedule
}

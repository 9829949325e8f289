package game

func sq(number int) Square {
	s, err := SquareFromNumber(number)
	if err != nil {
		panic(err)
	}
	return s
}

func man(owner Player, number int) Piece {
	return Piece{Position: sq(number), Owner: owner}
}

func king(owner Player, number int) Piece {
	return Piece{Position: sq(number), Owner: owner, IsKing: true}
}

func move(numbers ...int) Move {
	m := make(Move, len(numbers))
	for i, n := range numbers {
		m[i] = sq(n)
	}
	return m
}

func boardWith(pieces ...Piece) Board {
	b := EmptyBoard()
	for _, p := range pieces {
		if !b.Place(p) {
			panic("cannot place piece")
		}
	}
	return b
}

func stateWith(player Player, pieces ...Piece) *GameState {
	return NewGameStateFrom(boardWith(pieces...), 1, player)
}

func movesOf(legal []PieceMoves, piece Piece) []Move {
	for _, pm := range legal {
		if pm.Piece.Same(piece) {
			return pm.Moves
		}
	}
	return nil
}

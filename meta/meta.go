// meta/meta.go
package meta

// TIE_REQUEST_TURN is the first turn on which a draw may be offered or accepted.
const TIE_REQUEST_TURN = 40

// MAX_PLIES stops a match that somehow never reaches a result.
const MAX_PLIES = 2000

// Draw thresholds.
const (
	KingVsManPlusOneLimit     = 10 // two pieces including a king against a lone king
	KingVsManPlusTwoLimit     = 32 // three pieces against a lone king
	ConsecutiveKingMovesLimit = 50
	RepetitionLimit           = 3
)

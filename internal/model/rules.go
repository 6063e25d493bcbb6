package model

var (
	rookDirs   = []Position{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	bishopDirs = []Position{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	knightDirs = []Position{{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1}, {File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2}}
	kingDirs   = append(append([]Position{}, rookDirs...), bishopDirs...)
)

// reachableSquares returns the geometrically legal destinations for the
// piece on from, ignoring whose turn it is. Atomic chess has no check, so
// there is no further filtering step.
func reachableSquares(b *Board, from Position, piece *Piece) []Position {
	switch piece.Kind {
	case Pawn:
		return pawnMoves(b, from, piece.Color)
	case Knight:
		return stepMoves(b, from, piece.Color, knightDirs)
	case Bishop:
		return slideMoves(b, from, piece.Color, bishopDirs)
	case Rook:
		return slideMoves(b, from, piece.Color, rookDirs)
	case Queen:
		// queens slide along the union of rook and bishop directions, which
		// is the same 8-direction table the king steps through
		return slideMoves(b, from, piece.Color, kingDirs)
	case King:
		return stepMoves(b, from, piece.Color, kingDirs)
	}
	return nil
}

func pawnMoves(b *Board, from Position, color Color) []Position {
	moves := []Position{}
	dir := 1
	startRank := 1
	if color == Black {
		dir = -1
		startRank = 6
	}
	// forward one to an empty square, forward two from the starting rank if
	// both squares are empty
	one := Position{File: from.File, Rank: from.Rank + dir}
	if one.inBounds() && b.Get(one) == nil {
		moves = append(moves, one)
		two := Position{File: from.File, Rank: from.Rank + 2*dir}
		if from.Rank == startRank && b.Get(two) == nil {
			moves = append(moves, two)
		}
	}
	// diagonal steps are capture-only
	for _, df := range []int{-1, 1} {
		diag := Position{File: from.File + df, Rank: from.Rank + dir}
		if target := b.Get(diag); target != nil && target.Color != color {
			moves = append(moves, diag)
		}
	}
	return moves
}

func stepMoves(b *Board, from Position, color Color, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := Position{File: from.File + dir.File, Rank: from.Rank + dir.Rank}
		if !target.inBounds() {
			continue
		}
		if occupant := b.Get(target); occupant == nil || occupant.Color != color {
			moves = append(moves, target)
		}
	}
	return moves
}

func slideMoves(b *Board, from Position, color Color, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := Position{File: from.File + dir.File, Rank: from.Rank + dir.Rank}
		for target.inBounds() {
			occupant := b.Get(target)
			if occupant == nil {
				moves = append(moves, target)
			} else {
				if occupant.Color != color {
					moves = append(moves, target)
				}
				break
			}
			target = Position{File: target.File + dir.File, Rank: target.Rank + dir.Rank}
		}
	}
	return moves
}

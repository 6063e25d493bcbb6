package model

// blastRemovals computes the full removal set for a capture on to by the
// piece standing on from: the captured square, the capturer's own square,
// and every non-pawn occupant of the 8-neighborhood of to. The set is
// computed in full before anything is removed, so the sweep cannot depend
// on removal order; explosions never chain beyond the one ring.
func blastRemovals(b *Board, from, to Position) []Position {
	removals := []Position{to, from}
	for _, sq := range b.SquaresInRadius(to) {
		if sq == from {
			continue
		}
		if p := b.Get(sq); p != nil && p.Kind != Pawn {
			removals = append(removals, sq)
		}
	}
	return removals
}

// blastHitsKing reports whether the removal set would clear a king of the
// given color.
func blastHitsKing(b *Board, removals []Position, color Color) bool {
	for _, sq := range removals {
		if p := b.Get(sq); p != nil && p.Kind == King && p.Color == color {
			return true
		}
	}
	return false
}

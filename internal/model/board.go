package model

import (
	"errors"
	"fmt"
)

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) notation() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is an immutable (kind, color) value. Pieces are never mutated in
// place; moving a piece is a Remove followed by a Place.
type Piece struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
}

// Position addresses a board square. File 0 is the a-file, rank 0 is rank 1
// (white's home rank), so "e2" is {File: 4, Rank: 1}.
type Position struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

var ErrInvalidNotation = errors.New("invalid square notation")

// ParsePosition converts algebraic notation ("a1".."h8") to a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Position{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+p.File, p.Rank+1)
}

func (p Position) inBounds() bool {
	return p.File >= 0 && p.File < 8 && p.Rank >= 0 && p.Rank < 8
}

// Board is an 8x8 grid of optional pieces, indexed [rank][file]. It owns
// piece placement only; it has no knowledge of the movement rules.
type Board struct {
	squares [8][8]*Piece
}

// NewBoard returns a board with the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.squares[0][file] = &Piece{Kind: kind, Color: White}
		b.squares[7][file] = &Piece{Kind: kind, Color: Black}
	}
	for file := 0; file < 8; file++ {
		b.squares[1][file] = &Piece{Kind: Pawn, Color: White}
		b.squares[6][file] = &Piece{Kind: Pawn, Color: Black}
	}
	return b
}

// Get returns the piece on the square, or nil if the square is empty or out
// of bounds.
func (b *Board) Get(pos Position) *Piece {
	if !pos.inBounds() {
		return nil
	}
	return b.squares[pos.Rank][pos.File]
}

// Place puts a piece on the square, overwriting whatever was there.
func (b *Board) Place(pos Position, piece *Piece) {
	if !pos.inBounds() {
		return
	}
	b.squares[pos.Rank][pos.File] = piece
}

// Remove clears the square; a no-op if it is already empty.
func (b *Board) Remove(pos Position) {
	if !pos.inBounds() {
		return
	}
	b.squares[pos.Rank][pos.File] = nil
}

// SquaresInRadius returns the up-to-8 in-bounds neighbors of the square.
func (b *Board) SquaresInRadius(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			n := Position{File: pos.File + df, Rank: pos.Rank + dr}
			if n.inBounds() {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// Snapshot returns a copy of the grid for rendering. The pieces themselves
// are immutable, so sharing the pointers is safe.
func (b *Board) Snapshot() [8][8]*Piece {
	return b.squares
}

// findKing returns the square holding the given color's king, if present.
func (b *Board) findKing(color Color) (Position, bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.squares[rank][file]
			if p != nil && p.Kind == King && p.Color == color {
				return Position{File: file, Rank: rank}, true
			}
		}
	}
	return Position{}, false
}

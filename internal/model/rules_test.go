package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// placement pairs a square with the piece standing on it, for building test
// positions.
type placement struct {
	square string
	piece  Piece
}

func buildBoard(t *testing.T, placements []placement) *Board {
	t.Helper()
	b := &Board{}
	for _, pl := range placements {
		p := pl.piece
		b.Place(mustParse(t, pl.square), &p)
	}
	return b
}

func TestReachableSquares(t *testing.T) {
	tests := []struct {
		name   string
		pieces []placement
		from   string
		want   []string
	}{
		{
			name: "pawn single and double step from starting rank",
			pieces: []placement{
				{"e2", Piece{Kind: Pawn, Color: White}},
			},
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "pawn single step only once off the starting rank",
			pieces: []placement{
				{"e3", Piece{Kind: Pawn, Color: White}},
			},
			from: "e3",
			want: []string{"e4"},
		},
		{
			name: "pawn fully blocked",
			pieces: []placement{
				{"e2", Piece{Kind: Pawn, Color: White}},
				{"e3", Piece{Kind: Knight, Color: Black}},
			},
			from: "e2",
			want: []string{},
		},
		{
			name: "pawn double step blocked on the far square",
			pieces: []placement{
				{"e2", Piece{Kind: Pawn, Color: White}},
				{"e4", Piece{Kind: Knight, Color: Black}},
			},
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "pawn diagonal is capture only",
			pieces: []placement{
				{"e4", Piece{Kind: Pawn, Color: White}},
				{"d5", Piece{Kind: Pawn, Color: Black}},
				{"f5", Piece{Kind: Pawn, Color: White}},
			},
			from: "e4",
			want: []string{"d5", "e5"},
		},
		{
			name: "black pawn moves toward rank 1",
			pieces: []placement{
				{"d7", Piece{Kind: Pawn, Color: Black}},
				{"c6", Piece{Kind: Knight, Color: White}},
			},
			from: "d7",
			want: []string{"c6", "d5", "d6"},
		},
		{
			name: "knight ignores blockers and skips friendly targets",
			pieces: []placement{
				{"g1", Piece{Kind: Knight, Color: White}},
				{"e2", Piece{Kind: Pawn, Color: White}},
				{"f3", Piece{Kind: Pawn, Color: Black}},
			},
			from: "g1",
			want: []string{"f3", "h3"},
		},
		{
			name: "rook slides until blocked, capture square inclusive",
			pieces: []placement{
				{"a1", Piece{Kind: Rook, Color: White}},
				{"a5", Piece{Kind: Pawn, Color: Black}},
				{"d1", Piece{Kind: Bishop, Color: White}},
			},
			from: "a1",
			want: []string{"a2", "a3", "a4", "a5", "b1", "c1"},
		},
		{
			name: "bishop slides diagonally",
			pieces: []placement{
				{"c1", Piece{Kind: Bishop, Color: White}},
				{"e3", Piece{Kind: Pawn, Color: Black}},
			},
			from: "c1",
			want: []string{"a3", "b2", "d2", "e3"},
		},
		{
			name: "queen is the union of rook and bishop moves",
			pieces: []placement{
				{"h1", Piece{Kind: Queen, Color: White}},
				{"h4", Piece{Kind: Pawn, Color: Black}},
				{"e1", Piece{Kind: Rook, Color: White}},
				{"f3", Piece{Kind: Pawn, Color: White}},
			},
			from: "h1",
			want: []string{"f1", "g1", "g2", "h2", "h3", "h4"},
		},
		{
			name: "king steps one square, friendly squares excluded",
			pieces: []placement{
				{"e1", Piece{Kind: King, Color: White}},
				{"e2", Piece{Kind: Pawn, Color: White}},
				{"d2", Piece{Kind: Knight, Color: Black}},
			},
			from: "e1",
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "king in the corner",
			pieces: []placement{
				{"a1", Piece{Kind: King, Color: Black}},
			},
			from: "a1",
			want: []string{"a2", "b1", "b2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildBoard(t, tt.pieces)
			from := mustParse(t, tt.from)
			piece := b.Get(from)
			if piece == nil {
				t.Fatalf("no piece at %s", tt.from)
			}
			got := squareNames(reachableSquares(b, from, piece))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("reachableSquares(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

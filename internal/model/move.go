package model

// MoveKind distinguishes a relocation to an empty square from a capture,
// which is what decides whether an explosion follows.
type MoveKind string

const (
	MoveQuiet   MoveKind = "quiet"
	MoveCapture MoveKind = "capture"
)

// Move is a (source, destination) request as handed in by the I/O layer.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// LastMove is the most recent executed move, annotated for rendering.
type LastMove struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Notation string   `json:"notation"`
}

// MoveOutcome reports what a successful move did to the board.
type MoveOutcome struct {
	Kind MoveKind `json:"kind"`
	// Destroyed lists every square cleared by the explosion, in board order:
	// the captured square, the capturing piece's square, then the swept
	// neighbors. Empty for a quiet move.
	Destroyed []Position `json:"destroyed,omitempty"`
	Phase     Phase      `json:"phase"`
}

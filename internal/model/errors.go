package model

import "errors"

// Move rejections are returned as values, never panics. A rejected move
// leaves the board and the turn untouched.
var (
	ErrGameOver            = errors.New("game is already over")
	ErrNoPieceOrWrongColor = errors.New("no piece at source square or piece belongs to opponent")
	ErrIllegalGeometry     = errors.New("destination not reachable by that piece")
	ErrFriendlyCapture     = errors.New("destination holds a friendly piece")
	ErrKingCannotCapture   = errors.New("kings can neither capture nor be captured")
	ErrOwnKingInBlast      = errors.New("capture would blow up own king")
)

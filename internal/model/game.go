package model

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/annakaza/atomic-chess/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Phase is the lifecycle state of a game. Once a king explodes the phase is
// terminal and every further move attempt is rejected.
type Phase string

const (
	PhaseUnfinished Phase = "UNFINISHED"
	PhaseWhiteWon   Phase = "WHITE_WON"
	PhaseBlackWon   Phase = "BLACK_WON"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is a single atomic-chess session: the board, whose turn it is, the
// phase, and the observers watching it. All rule enforcement happens here.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	turn        Color
	phase       Phase
	sound       string
	lastMove    *LastMove
	destroyed   DestroyedPieces
	players     Players
	connections *GameConnections
}

// DestroyedPieces lists the pieces each color has lost, in removal order.
type DestroyedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// ClientState is the JSON-facing snapshot sent to renderers after every
// call; it carries everything needed to redraw without further queries.
type ClientState struct {
	Board     [8][8]*Piece    `json:"board"`
	ToMove    Color           `json:"toMove"`
	Phase     Phase           `json:"phase"`
	Sound     string          `json:"sound"`
	LastMove  *LastMove       `json:"lastMove"`
	Destroyed DestroyedPieces `json:"destroyedPieces"`
	Players   Players         `json:"players"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		board:       NewBoard(),
		turn:        White,
		phase:       PhaseUnfinished,
		connections: NewGameConnections(),
	}
}

func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: White}
		return White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: Black}
		return Black, nil
	}
	return "", errors.New("game is full")
}

// GetState returns a renderable snapshot of the session.
func (g *Game) GetState() ClientState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.clientState()
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.phase
}

// Turn returns the color whose move is next.
func (g *Game) Turn() Color {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.turn
}

// Snapshot returns a read-only copy of the board grid.
func (g *Game) Snapshot() [8][8]*Piece {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Snapshot()
}

func (g *Game) clientState() ClientState {
	return ClientState{
		Board:     g.board.Snapshot(),
		ToMove:    g.turn,
		Phase:     g.phase,
		Sound:     g.sound,
		LastMove:  g.lastMove,
		Destroyed: g.destroyed,
		Players:   g.players,
	}
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.players.White.ID != "" && g.players.White.ID == playerID {
		return true
	}
	if g.players.Black.ID != "" && g.players.Black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// MakeMove validates and executes one move. On any rejection the board and
// the turn are left exactly as they were; on success the move is fully
// applied (including the explosion) before the method returns.
func (g *Game) MakeMove(from, to Position) (MoveOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	outcome, err := g.makeMove(from, to)
	if err != nil {
		return MoveOutcome{}, err
	}

	state := g.clientState()
	go g.connections.broadcast(state)

	return outcome, nil
}

// MakeMoveNotation is the string-based convenience entry point; it accepts
// algebraic coordinates like "e2" and "e4".
func (g *Game) MakeMoveNotation(from, to string) (MoveOutcome, error) {
	fromPos, err := ParsePosition(from)
	if err != nil {
		return MoveOutcome{}, err
	}
	toPos, err := ParsePosition(to)
	if err != nil {
		return MoveOutcome{}, err
	}
	return g.MakeMove(fromPos, toPos)
}

func (g *Game) makeMove(from, to Position) (MoveOutcome, error) {
	kind, err := g.validateMove(from, to)
	if err != nil {
		return MoveOutcome{}, err
	}

	notation := g.notation(from, to)
	piece := g.board.Get(from)

	var destroyed []Position
	opponentKingDies := false
	if kind == MoveCapture {
		destroyed = blastRemovals(g.board, from, to)
		opponentKingDies = blastHitsKing(g.board, destroyed, g.turn.Opponent())
		g.recordDestroyed(destroyed)
		for _, sq := range destroyed {
			g.board.Remove(sq)
		}
		g.sound = "explosion"
	} else {
		g.board.Remove(from)
		g.board.Place(to, piece)
		g.sound = "move"
	}

	g.lastMove = &LastMove{From: from, To: to, Notation: notation}

	// a king destroyed by the sweep ends the game in the mover's favor; the
	// turn only flips while the game is still open
	if opponentKingDies {
		if g.turn == White {
			g.phase = PhaseWhiteWon
		} else {
			g.phase = PhaseBlackWon
		}
	} else {
		g.switchTurn()
	}

	return MoveOutcome{Kind: kind, Destroyed: destroyed, Phase: g.phase}, nil
}

// validateMove runs the legality checks in order, stopping at the first
// failure. It reads the board but never writes it.
func (g *Game) validateMove(from, to Position) (MoveKind, error) {
	if g.phase != PhaseUnfinished {
		return "", ErrGameOver
	}
	piece := g.board.Get(from)
	if piece == nil || piece.Color != g.turn {
		return "", ErrNoPieceOrWrongColor
	}
	if !containsPosition(reachableSquares(g.board, from, piece), to) {
		return "", ErrIllegalGeometry
	}
	target := g.board.Get(to)
	if target != nil && target.Color == piece.Color {
		return "", ErrFriendlyCapture
	}
	if target != nil && (piece.Kind == King || target.Kind == King) {
		// kings never capture and are never the directly captured piece;
		// a king can only die to the adjacency sweep
		return "", ErrKingCannotCapture
	}
	if target == nil {
		return MoveQuiet, nil
	}
	if blastHitsKing(g.board, blastRemovals(g.board, from, to), g.turn) {
		return "", ErrOwnKingInBlast
	}
	return MoveCapture, nil
}

func (g *Game) recordDestroyed(removals []Position) {
	for _, sq := range removals {
		p := g.board.Get(sq)
		if p == nil {
			continue
		}
		switch p.Color {
		case White:
			g.destroyed.White = append(g.destroyed.White, *p)
		case Black:
			g.destroyed.Black = append(g.destroyed.Black, *p)
		}
	}
}

// notation renders a move in the usual short algebraic style, e.g. "e4",
// "Nxd5", "exd6". Called before the board is mutated.
func (g *Game) notation(from, to Position) string {
	piece := g.board.Get(from)
	if piece == nil {
		return ""
	}
	capture := ""
	pawnFile := ""
	if g.board.Get(to) != nil {
		capture = "x"
		if piece.Kind == Pawn {
			pawnFile = fmt.Sprintf("%c", 'a'+from.File)
		}
	}
	return fmt.Sprintf("%s%s%s%s", piece.Kind.notation(), pawnFile, capture, to)
}

func (g *Game) switchTurn() {
	if g.turn == White {
		g.turn = Black
	} else {
		g.turn = White
	}
}

func containsPosition(positions []Position, pos Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	state := g.clientState()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// keep the healthy connection and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil // not an error, just a duplicate connection
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	// send the initial state to the new connection
	go g.connections.broadcast(state)
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

// broadcast pushes a state snapshot to every registered connection,
// dropping connections that fail to accept the write.
func (gc *GameConnections) broadcast(state ClientState) {
	gc.mu.RLock()
	activeConnections := make(map[string]*websocket.Conn, len(gc.connections))
	for playerID, conn := range gc.connections {
		activeConnections[playerID] = conn
	}
	gc.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: ws.MustPayload(state),
		}); err != nil {
			log.Printf("failed to send state to player %s: %v", playerID, err)
			gc.mu.Lock()
			delete(gc.connections, playerID)
			gc.mu.Unlock()
		}
	}
}

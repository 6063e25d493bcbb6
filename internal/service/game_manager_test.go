package service

import (
	"errors"
	"testing"

	"github.com/annakaza/atomic-chess/internal/model"
)

func TestCreateAndPlayGame(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if gameID == "" {
		t.Fatalf("CreateGame returned an empty ID")
	}

	color, err := gs.JoinGame(gameID, "alice")
	if err != nil || color != model.White {
		t.Fatalf("first join = (%v, %v), want white", color, err)
	}
	color, err = gs.JoinGame(gameID, "bob")
	if err != nil || color != model.Black {
		t.Fatalf("second join = (%v, %v), want black", color, err)
	}
	if _, err := gs.JoinGame(gameID, "carol"); err == nil {
		t.Fatalf("third join should fail, game is full")
	}

	outcome, err := gs.HandleMove(gameID, "e2", "e4")
	if err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if outcome.Kind != model.MoveQuiet {
		t.Fatalf("outcome kind = %v, want %v", outcome.Kind, model.MoveQuiet)
	}

	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.ToMove != model.Black {
		t.Fatalf("toMove = %v, want %v", state.ToMove, model.Black)
	}
	if state.Phase != model.PhaseUnfinished {
		t.Fatalf("phase = %v, want %v", state.Phase, model.PhaseUnfinished)
	}
}

func TestUnknownGameID(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	if _, err := gs.GetGameState("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("GetGameState err = %v, want ErrGameNotFound", err)
	}
	if _, err := gs.HandleMove("nope", "e2", "e4"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("HandleMove err = %v, want ErrGameNotFound", err)
	}
	if _, err := gs.JoinGame("nope", "alice"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("JoinGame err = %v, want ErrGameNotFound", err)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	first, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	second, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if first == second {
		t.Fatalf("both games got ID %s", first)
	}

	if _, err := gs.HandleMove(first, "e2", "e4"); err != nil {
		t.Fatalf("move in first game: %v", err)
	}

	state, err := gs.GetGameState(second)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.ToMove != model.White {
		t.Fatalf("second game toMove = %v, want %v", state.ToMove, model.White)
	}
	if state.LastMove != nil {
		t.Fatalf("second game saw a move from the first: %+v", state.LastMove)
	}
}

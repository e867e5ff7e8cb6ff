package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestEvaluateStartposBalanced(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if got := Evaluate(&board); got != 0 {
		t.Fatalf("starting position evaluates to %d", got)
	}
}

func TestEvaluateMaterialEdge(t *testing.T) {
	up := dragontoothmg.ParseFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if got := Evaluate(&up); got <= 0 {
		t.Fatalf("queen-up position evaluates to %d for white", got)
	}
	down := dragontoothmg.ParseFen("3qk3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := Evaluate(&down); got >= 0 {
		t.Fatalf("queen-down position evaluates to %d for white", got)
	}
}

func TestBestMovePrefersCapture(t *testing.T) {
	// White queen can take the undefended black queen on d8.
	board := dragontoothmg.ParseFen("3qk3/8/8/8/8/8/8/3QK3 w - - 0 1")
	Threads.Set(1)
	if got := BestMove(&board); got != "d1d8" {
		t.Fatalf("best move = %q, want d1d8", got)
	}
}

func TestBestMoveMultiThreadedMatchesSingle(t *testing.T) {
	board := dragontoothmg.ParseFen("3qk3/8/8/8/8/8/8/3QK3 w - - 0 1")
	Threads.Set(4)
	if got := BestMove(&board); got != "d1d8" {
		t.Fatalf("best move with 4 workers = %q, want d1d8", got)
	}
}

func TestBestMoveForBlack(t *testing.T) {
	// Black to move with a hanging white queen.
	board := dragontoothmg.ParseFen("3qk3/8/8/8/8/8/8/3QK3 b - - 0 1")
	Threads.Set(1)
	if got := BestMove(&board); got != "d8d1" {
		t.Fatalf("best move for black = %q, want d8d1", got)
	}
}

func TestBestMovePrefersMateOverMaterial(t *testing.T) {
	// Re8 is mate; Bxa5 wins the queen but only scores material.
	board := dragontoothmg.ParseFen("6k1/5ppp/8/q7/8/8/3B4/4R1K1 w - - 0 1")
	Threads.Set(1)
	if got := BestMove(&board); got != "e1e8" {
		t.Fatalf("best move = %q, want mating e1e8", got)
	}
}

func TestBestMoveAvoidsStalemate(t *testing.T) {
	// Kg6 stalemates the cornered king; every queen-keeping move scores
	// better than the draw.
	board := dragontoothmg.ParseFen("7k/5Q2/8/6K1/8/8/8/8 w - - 0 1")
	Threads.Set(1)
	if got := BestMove(&board); got == "g5g6" {
		t.Fatal("best move walks into stalemate")
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	// Stalemate: black king cornered by queen, black to move.
	board := dragontoothmg.ParseFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if got := BestMove(&board); got != "(none)" {
		t.Fatalf("best move in stalemate = %q", got)
	}
}

func TestBestMoveFeedsTT(t *testing.T) {
	board := dragontoothmg.ParseFen("3qk3/8/8/8/8/8/8/3QK3 w - - 0 1")
	Threads.Set(1)
	Clear()
	BestMove(&board)
	if _, found := TT.Probe(board.Hash()); !found {
		t.Fatal("root position not stored in the TT")
	}
	Clear()
	if _, found := TT.Probe(board.Hash()); found {
		t.Fatal("Clear left the root entry behind")
	}
}

func TestSetPieceValuesAppliesTunables(t *testing.T) {
	oldQueen := QueenValueMG
	defer func() {
		QueenValueMG = oldQueen
		SetPieceValues()
	}()

	QueenValueMG = 1234
	SetPieceValues()
	if PieceValueMG[dragontoothmg.Queen] != 1234 {
		t.Fatalf("queen value table = %d, want 1234", PieceValueMG[dragontoothmg.Queen])
	}
}

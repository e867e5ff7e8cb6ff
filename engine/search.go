package engine

import (
	"math/bits"
	"sync"

	"github.com/dylhunn/dragontoothmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

var TT TransTable
var Threads ThreadPool
var Book PolyBook
var Logger DebugLogger
var Syzygy Tablebases

var GlobalStop = false

// Clear resets the accumulated search state. Wired to the "Clear Hash"
// button.
func Clear() {
	TT.Clear()
	GlobalStop = false
}

const totalPhase = 24

func piecePhase(bb *dragontoothmg.Bitboards) int {
	return bits.OnesCount64(bb.Knights) +
		bits.OnesCount64(bb.Bishops) +
		2*bits.OnesCount64(bb.Rooks) +
		4*bits.OnesCount64(bb.Queens)
}

func materialFor(bb *dragontoothmg.Bitboards, values *[7]int) int32 {
	score := bits.OnesCount64(bb.Pawns)*values[dragontoothmg.Pawn] +
		bits.OnesCount64(bb.Knights)*values[dragontoothmg.Knight] +
		bits.OnesCount64(bb.Bishops)*values[dragontoothmg.Bishop] +
		bits.OnesCount64(bb.Rooks)*values[dragontoothmg.Rook] +
		bits.OnesCount64(bb.Queens)*values[dragontoothmg.Queen]
	return int32(score)
}

// Evaluate scores the position from White's point of view: tapered material
// plus the bishop-pair bonus.
func Evaluate(b *dragontoothmg.Board) int32 {
	mg := materialFor(&b.White, &PieceValueMG) - materialFor(&b.Black, &PieceValueMG)
	eg := materialFor(&b.White, &PieceValueEG) - materialFor(&b.Black, &PieceValueEG)

	if bits.OnesCount64(b.White.Bishops) >= 2 {
		mg += int32(BishopPairBonus.Mg)
		eg += int32(BishopPairBonus.Eg)
	}
	if bits.OnesCount64(b.Black.Bishops) >= 2 {
		mg -= int32(BishopPairBonus.Mg)
		eg -= int32(BishopPairBonus.Eg)
	}

	phase := piecePhase(&b.White) + piecePhase(&b.Black)
	if phase > totalPhase {
		phase = totalPhase
	}
	return (mg*int32(phase) + eg*int32(totalPhase-phase)) / totalPhase
}

// BestMove picks the root move with the best static evaluation after one ply,
// scoring mating moves as Checkmate and stalemating moves as DrawScore. Root
// moves are split across the thread pool and the stop flag aborts workers
// between moves. The full iterative search the engine normally runs sits
// behind this same interface; option plumbing only needs a collaborator that
// honors Threads and feeds the TT.
func BestMove(board *dragontoothmg.Board) string {
	GlobalStop = false
	if !TT.isInitialized {
		TT.Resize(16)
	}

	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		return "(none)"
	}

	type rootScore struct {
		move  dragontoothmg.Move
		score int32
	}

	nWorkers := Min(Threads.Size(), len(moves))
	results := make([]rootScore, len(moves))
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			b := *board
			for i := w; i < len(moves); i += nWorkers {
				if GlobalStop {
					break
				}
				unapply := b.Apply(moves[i])
				var score int32
				if len(b.GenerateLegalMoves()) == 0 {
					// Checkmate/stalemate check
					if b.OurKingInCheck() {
						score = Checkmate
					} else {
						score = DrawScore
					}
				} else {
					score = Evaluate(&b)
					if !board.Wtomove {
						score = -score
					}
				}
				unapply()
				results[i] = rootScore{moves[i], score}
			}
		}(w)
	}
	wg.Wait()

	// A stopped worker leaves null moves behind; skip them.
	best := rootScore{move: moves[0], score: -MaxScore}
	for _, r := range results {
		if r.move == 0 {
			continue
		}
		if r.score > best.score {
			best = r
		}
	}
	TT.Store(board.Hash(), 1, best.move, int16(Clamp(int(best.score), int(-MaxScore), int(MaxScore))), ExactFlag)
	return best.move.String()
}

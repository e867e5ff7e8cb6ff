package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// Value is a centipawn score. Score bundles the midgame/endgame pair that
// tapered evaluation interpolates between.
type Value int32

type Score struct {
	Mg, Eg Value
}

func MakeScore(mg, eg int) Score { return Score{Value(mg), Value(eg)} }

// =============================================================================
// TUNABLE PARAMETERS
// =============================================================================
// These are the knobs the tuning framework rebinds at runtime. Piece values
// feed the PieceValueMG/EG lookup tables through SetPieceValues.

var PawnValueMG = 100
var PawnValueEG = 120
var KnightValueMG = 320
var KnightValueEG = 330
var BishopValueMG = 330
var BishopValueEG = 350
var RookValueMG = 500
var RookValueEG = 520
var QueenValueMG = 900
var QueenValueEG = 950

var DeltaMargin Value = 200
var AspirationWindow Value = 35

var BishopPairBonus = MakeScore(25, 45)

var PieceValueMG [7]int
var PieceValueEG [7]int

var pieceList = [5]dragontoothmg.Piece{
	dragontoothmg.Pawn,
	dragontoothmg.Knight,
	dragontoothmg.Bishop,
	dragontoothmg.Rook,
	dragontoothmg.Queen,
}

// SetPieceValues copies the tunable piece values into the lookup tables.
func SetPieceValues() {
	for _, pieceType := range pieceList {
		switch pieceType {
		case dragontoothmg.Pawn:
			PieceValueMG[pieceType] = PawnValueMG
			PieceValueEG[pieceType] = PawnValueEG
		case dragontoothmg.Knight:
			PieceValueMG[pieceType] = KnightValueMG
			PieceValueEG[pieceType] = KnightValueEG
		case dragontoothmg.Bishop:
			PieceValueMG[pieceType] = BishopValueMG
			PieceValueEG[pieceType] = BishopValueEG
		case dragontoothmg.Rook:
			PieceValueMG[pieceType] = RookValueMG
			PieceValueEG[pieceType] = RookValueEG
		case dragontoothmg.Queen:
			PieceValueMG[pieceType] = QueenValueMG
			PieceValueEG[pieceType] = QueenValueEG
		}
	}
}

func init() {
	SetPieceValues()
}

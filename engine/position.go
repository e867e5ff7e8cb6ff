package engine

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// ApplyUCIMoves replays a list of coordinate moves on the board. Each move is
// matched against the legal moves first; parsing is the contingency path for
// moves whose printed form differs (promotion casing and the like).
func ApplyUCIMoves(board *dragontoothmg.Board, moves []string) error {
	for _, moveStr := range moves {
		moveStr = strings.ToLower(moveStr)
		legalMoves := board.GenerateLegalMoves()
		var nextMove dragontoothmg.Move
		found := false
		for _, mv := range legalMoves {
			if mv.String() == moveStr {
				nextMove = mv
				found = true
				break
			}
		}
		if !found {
			parsed, err := dragontoothmg.ParseMove(moveStr)
			if err != nil {
				return fmt.Errorf("cannot parse move %s: %v", moveStr, err)
			}
			for _, mv := range legalMoves {
				if mv.From() == parsed.From() && mv.To() == parsed.To() &&
					mv.Promote() == parsed.Promote() {
					nextMove = mv
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("move %s not legal in position %s", moveStr, board.ToFen())
			}
		}
		board.Apply(nextMove)
	}
	return nil
}

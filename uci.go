package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/OhJayGee/SugaR/engine"
	"github.com/OhJayGee/SugaR/tuner"
	"github.com/OhJayGee/SugaR/uci"
)

func main() {
	options := uci.NewOptionsMap()
	uci.Init(options)
	uciLoop(os.Stdin, os.Stdout, options)
}

func uciLoop(in io.Reader, out io.Writer, options *uci.OptionsMap) {
	scanner := bufio.NewScanner(in)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	var played []string
	var tune *tuner.Tune

	reply := func(s string) {
		fmt.Fprintln(out, s)
		engine.Logger.Print("<<", s)
	}

	for scanner.Scan() {
		line := scanner.Text()
		engine.Logger.Print(">>", line)
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			reply("id name SugaR")
			reply("id author the SugaR developers")
			reply(strings.TrimPrefix(options.String(), "\n"))
			reply("uciok")
		case "isready":
			reply("readyok")
		case "setoption":
			name, value := parseSetOption(tokens[1:])
			if o := options.Get(name); o != nil {
				o.Set(value)
			} else {
				reply("info string No such option: " + name)
			}
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
			played = nil
			if !options.Get("NeverClearHash").Bool() {
				engine.Clear()
			}
		case "position":
			newBoard, newPlayed, err := parsePosition(tokens[1:])
			if err != nil {
				reply("info string " + err.Error())
				continue
			}
			board, played = newBoard, newPlayed
		case "go":
			reply("bestmove " + bestMove(&board, played))
		case "stop":
			engine.GlobalStop = true
		case "tune":
			if tune == nil {
				tune = registerTunables(options, out)
			}
		case "quit":
			return
		default:
			reply("info string Unknown command: " + line)
		}
	}
}

// parseSetOption splits "name <tokens> value <tokens>" after the setoption
// keyword. Option names and values may both contain spaces.
func parseSetOption(tokens []string) (name, value string) {
	if len(tokens) == 0 || strings.ToLower(tokens[0]) != "name" {
		return "", ""
	}
	tokens = tokens[1:]
	var nameTokens, valueTokens []string
	inValue := false
	for _, tok := range tokens {
		if !inValue && strings.ToLower(tok) == "value" {
			inValue = true
			continue
		}
		if inValue {
			valueTokens = append(valueTokens, tok)
		} else {
			nameTokens = append(nameTokens, tok)
		}
	}
	return strings.Join(nameTokens, " "), strings.Join(valueTokens, " ")
}

func parsePosition(tokens []string) (dragontoothmg.Board, []string, error) {
	var board dragontoothmg.Board
	if len(tokens) == 0 {
		return board, nil, fmt.Errorf("Malformed position command")
	}

	movesAt := len(tokens)
	for i, tok := range tokens {
		if strings.ToLower(tok) == "moves" {
			movesAt = i
			break
		}
	}

	switch strings.ToLower(tokens[0]) {
	case "startpos":
		board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	case "fen":
		fen := strings.Join(tokens[1:movesAt], " ")
		if fen == "" {
			return board, nil, fmt.Errorf("Invalid fen position")
		}
		board = dragontoothmg.ParseFen(fen)
	default:
		return board, nil, fmt.Errorf("Invalid position subcommand")
	}

	var played []string
	if movesAt < len(tokens) {
		played = append(played, tokens[movesAt+1:]...)
		if err := engine.ApplyUCIMoves(&board, played); err != nil {
			return board, nil, err
		}
	}
	return board, played, nil
}

// bestMove answers "go": a book move while the book applies, otherwise the
// engine's pick.
func bestMove(board *dragontoothmg.Board, played []string) string {
	if engine.Book.Loaded() {
		if mv, ok := engine.Book.Probe(played); ok {
			for _, legal := range board.GenerateLegalMoves() {
				if legal.String() == mv {
					return mv
				}
			}
		}
	}
	return engine.BestMove(board)
}

// registerTunables exposes the engine's search and evaluation parameters as
// spin options and prints the harness parameter lines.
func registerTunables(options *uci.OptionsMap, out io.Writer) *tuner.Tune {
	t := tuner.New(options)
	t.SetOutput(out)
	t.Register("DeltaMargin, AspirationWindow",
		tuner.Int(&engine.DeltaMargin, tuner.DefaultRange),
		tuner.Int(&engine.AspirationWindow, tuner.DefaultRange))
	t.Register("PawnValueMG, KnightValueMG, BishopValueMG, RookValueMG, QueenValueMG",
		tuner.Int(&engine.PawnValueMG, tuner.DefaultRange),
		tuner.Int(&engine.KnightValueMG, tuner.DefaultRange),
		tuner.Int(&engine.BishopValueMG, tuner.DefaultRange),
		tuner.Int(&engine.RookValueMG, tuner.DefaultRange),
		tuner.Int(&engine.QueenValueMG, tuner.DefaultRange))
	t.Register("BishopPairBonus", tuner.Score(&engine.BishopPairBonus, tuner.Range(0, 100)))
	t.Register("SetPieceValues()", tuner.PostUpdate(engine.SetPieceValues))
	t.Init()
	return t
}
